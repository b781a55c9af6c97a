package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Govind-619/PaymentRecords/models"
	"github.com/Govind-619/PaymentRecords/utils"
)

// POST /v1/void-sessions
func (pc *PaymentController) CreateVoidSession(c *gin.Context) {
	var req models.VoidSession
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("Invalid request body", err))
		return
	}

	void, err := pc.store.CreateVoidSession(c.Request.Context(), req)
	if err != nil {
		utils.LogError("Failed to create void session for payment %s: %v", req.PaymentID, err)
		utils.RespondError(c, err)
		return
	}
	utils.Created(c, utils.MsgCreateSuccess, void)
}

// PATCH /v1/void-sessions/:id/status
func (pc *PaymentController) UpdateVoidSessionStatus(c *gin.Context) {
	id := c.Param("id")
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("Invalid request body", err))
		return
	}

	void, err := pc.store.UpdateVoidSessionStatus(c.Request.Context(), id, req.Status)
	respondStatusUpdate(c, "void session", id, void == nil, void, err)
}
