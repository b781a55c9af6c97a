package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Govind-619/PaymentRecords/models"
	"github.com/Govind-619/PaymentRecords/utils"
)

// POST /v1/capture-sessions
func (pc *PaymentController) CreateCaptureSession(c *gin.Context) {
	var req models.CaptureSessionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("Invalid request body", err))
		return
	}

	capture, err := pc.store.CreateCaptureSession(c.Request.Context(), req)
	if err != nil {
		utils.LogError("Failed to create capture session for payment %s: %v", req.PaymentID, err)
		utils.RespondError(c, err)
		return
	}
	utils.Created(c, utils.MsgCreateSuccess, capture)
}

// PATCH /v1/capture-sessions/:id/status
func (pc *PaymentController) UpdateCaptureSessionStatus(c *gin.Context) {
	id := c.Param("id")
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("Invalid request body", err))
		return
	}

	capture, err := pc.store.UpdateCaptureSessionStatus(c.Request.Context(), id, req.Status)
	respondStatusUpdate(c, "capture session", id, capture == nil, capture, err)
}
