package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Govind-619/PaymentRecords/models"
	"github.com/Govind-619/PaymentRecords/repository"
	"github.com/Govind-619/PaymentRecords/utils"
)

// PaymentController exposes the payment record store over HTTP. Every handler
// calls exactly one store operation.
type PaymentController struct {
	store repository.PaymentRecords
}

// NewPaymentController returns a controller backed by store.
func NewPaymentController(store repository.PaymentRecords) *PaymentController {
	return &PaymentController{store: store}
}

type statusRequest struct {
	Status models.SessionStatus `json:"status"`
}

// POST /v1/payment-sessions
func (pc *PaymentController) CreatePaymentSession(c *gin.Context) {
	utils.LogInfo("CreatePaymentSession called")

	var req models.PaymentSessionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid payment session request: %v", err)
		utils.RespondError(c, utils.BadRequestError("Invalid request body", err))
		return
	}

	session, err := pc.store.CreatePaymentSession(c.Request.Context(), req)
	if err != nil {
		utils.LogError("Failed to create payment session %s: %v", req.ID, err)
		utils.RespondError(c, err)
		return
	}

	utils.LogInfo("Created payment session %s", session.ID)
	utils.Created(c, utils.MsgCreateSuccess, session)
}

// GET /v1/payment-sessions
func (pc *PaymentController) GetPaymentSessions(c *gin.Context) {
	sessions, err := pc.store.GetPaymentSessions(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgFetchSuccess, sessions)
}

// GET /v1/payment-sessions/:id
func (pc *PaymentController) GetPaymentSession(c *gin.Context) {
	id := c.Param("id")
	session, err := pc.store.GetPaymentSession(c.Request.Context(), id)
	if err != nil {
		utils.LogError("Failed to get payment session %s: %v", id, err)
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgFetchSuccess, session)
}

// PATCH /v1/payment-sessions/:id/status
func (pc *PaymentController) UpdatePaymentSessionStatus(c *gin.Context) {
	id := c.Param("id")
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestError("Invalid request body", err))
		return
	}

	session, err := pc.store.UpdatePaymentSessionStatus(c.Request.Context(), id, req.Status)
	respondStatusUpdate(c, "payment session", id, session == nil, session, err)
}

// respondStatusUpdate writes the outcome of a status update. A nil record with no
// error means the status was ignored.
func respondStatusUpdate(c *gin.Context, entity, id string, ignored bool, record interface{}, err error) {
	if err != nil {
		if utils.IsAppError(err) {
			utils.LogInfo("Rejected %s %s status update: %v", entity, id, err)
		} else {
			utils.LogError("Failed to update %s %s status: %v", entity, id, err)
		}
		utils.RespondError(c, err)
		return
	}
	if ignored {
		utils.LogInfo("Ignored status update for %s %s", entity, id)
		utils.Success(c, utils.MsgStatusIgnored, nil)
		return
	}
	utils.LogInfo("Updated %s %s status", entity, id)
	utils.Success(c, utils.MsgUpdateSuccess, record)
}
