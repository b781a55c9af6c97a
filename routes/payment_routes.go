package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Govind-619/PaymentRecords/controllers"
)

// initPaymentSessionRoutes registers payment session and configuration routes
func initPaymentSessionRoutes(router *gin.RouterGroup, pc *controllers.PaymentController) {
	sessions := router.Group("/payment-sessions")
	{
		sessions.POST("", pc.CreatePaymentSession)
		sessions.GET("", pc.GetPaymentSessions)
		sessions.GET("/export.xlsx", pc.DownloadRecentSessionsExcel)
		sessions.GET("/:id", pc.GetPaymentSession)
		sessions.GET("/:id/receipt.pdf", pc.DownloadPaymentSessionPDF)
		sessions.PATCH("/:id/status", pc.UpdatePaymentSessionStatus)

		sessions.GET("/:id/configuration", pc.GetConfiguration)
		sessions.PUT("/:id/configuration", pc.GetOrCreateConfiguration)
	}
}

// initChildSessionRoutes registers refund, capture and void routes
func initChildSessionRoutes(router *gin.RouterGroup, pc *controllers.PaymentController) {
	refunds := router.Group("/refund-sessions")
	{
		refunds.POST("", pc.CreateRefundSession)
		refunds.PATCH("/:id/status", pc.UpdateRefundSessionStatus)
	}

	captures := router.Group("/capture-sessions")
	{
		captures.POST("", pc.CreateCaptureSession)
		captures.PATCH("/:id/status", pc.UpdateCaptureSessionStatus)
	}

	voids := router.Group("/void-sessions")
	{
		voids.POST("", pc.CreateVoidSession)
		voids.PATCH("/:id/status", pc.UpdateVoidSessionStatus)
	}
}
