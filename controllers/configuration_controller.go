package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Govind-619/PaymentRecords/utils"
)

// GET /v1/payment-sessions/:id/configuration
func (pc *PaymentController) GetConfiguration(c *gin.Context) {
	sessionID := c.Param("id")
	configuration, err := pc.store.GetConfiguration(c.Request.Context(), sessionID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if configuration == nil {
		utils.Success(c, utils.MsgNoContent, nil)
		return
	}
	utils.Success(c, utils.MsgFetchSuccess, configuration)
}

// PUT /v1/payment-sessions/:id/configuration
// The body is a JSON object of settings; it is only used when no configuration exists yet.
func (pc *PaymentController) GetOrCreateConfiguration(c *gin.Context) {
	sessionID := c.Param("id")

	var settings map[string]interface{}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&settings); err != nil {
			utils.RespondError(c, utils.BadRequestError("Invalid configuration body", err))
			return
		}
	}

	configuration, err := pc.store.GetOrCreateConfiguration(c.Request.Context(), sessionID, settings)
	if err != nil {
		utils.LogError("Failed to get or create configuration for %s: %v", sessionID, err)
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgFetchSuccess, configuration)
}
