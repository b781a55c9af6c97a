package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Govind-619/PaymentRecords/models"
	"github.com/Govind-619/PaymentRecords/utils"
)

// POST /v1/refund-sessions
func (pc *PaymentController) CreateRefundSession(c *gin.Context) {
	var req models.RefundSessionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("Invalid request body", err))
		return
	}

	refund, err := pc.store.CreateRefundSession(c.Request.Context(), req)
	if err != nil {
		utils.LogError("Failed to create refund session for payment %s: %v", req.PaymentID, err)
		utils.RespondError(c, err)
		return
	}
	utils.Created(c, utils.MsgCreateSuccess, refund)
}

// PATCH /v1/refund-sessions/:id/status
func (pc *PaymentController) UpdateRefundSessionStatus(c *gin.Context) {
	id := c.Param("id")
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("Invalid request body", err))
		return
	}

	refund, err := pc.store.UpdateRefundSessionStatus(c.Request.Context(), id, req.Status)
	respondStatusUpdate(c, "refund session", id, refund == nil, refund, err)
}
