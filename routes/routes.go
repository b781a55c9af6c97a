package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Govind-619/PaymentRecords/controllers"
	"github.com/Govind-619/PaymentRecords/utils"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(pc *controllers.PaymentController) *gin.Engine {
	router := gin.New()

	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   utils.AppName,
			"timestamp": time.Now().UTC(),
		})
	})

	api := router.Group("/" + utils.APIVersion)
	{
		initPaymentSessionRoutes(api, pc)
		initChildSessionRoutes(api, pc)
	}

	return router
}
