package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Govind-619/PaymentRecords/models"
	"github.com/Govind-619/PaymentRecords/utils"
)

// PaymentRecords is the data-access surface for payment, refund, capture and void
// sessions and their per-session configuration.
//
// Status updates with a status outside pending, resolve and reject return (nil, nil)
// and leave the record untouched.
type PaymentRecords interface {
	CreatePaymentSession(ctx context.Context, input models.PaymentSessionInput) (*models.PaymentSession, error)
	UpdatePaymentSessionStatus(ctx context.Context, id string, status models.SessionStatus) (*models.PaymentSession, error)
	GetPaymentSession(ctx context.Context, id string) (*models.PaymentSession, error)
	GetPaymentSessions(ctx context.Context) ([]models.PaymentSession, error)

	CreateRefundSession(ctx context.Context, input models.RefundSessionInput) (*models.RefundSession, error)
	UpdateRefundSessionStatus(ctx context.Context, id string, status models.SessionStatus) (*models.RefundSession, error)

	CreateCaptureSession(ctx context.Context, input models.CaptureSessionInput) (*models.CaptureSession, error)
	UpdateCaptureSessionStatus(ctx context.Context, id string, status models.SessionStatus) (*models.CaptureSession, error)

	CreateVoidSession(ctx context.Context, void models.VoidSession) (*models.VoidSession, error)
	UpdateVoidSessionStatus(ctx context.Context, id string, status models.SessionStatus) (*models.VoidSession, error)

	GetConfiguration(ctx context.Context, sessionID string) (*models.Configuration, error)
	GetOrCreateConfiguration(ctx context.Context, sessionID string, settings map[string]interface{}) (*models.Configuration, error)
}

// PaymentRecordStore implements PaymentRecords on top of gorm.
type PaymentRecordStore struct {
	db *gorm.DB
}

var _ PaymentRecords = (*PaymentRecordStore)(nil)

// NewPaymentRecordStore returns a store using db. The schema must already be migrated.
func NewPaymentRecordStore(db *gorm.DB) *PaymentRecordStore {
	return &PaymentRecordStore{db: db}
}

// CreatePaymentSession inserts a payment session, parsing Amount and serializing
// PaymentMethod and Customer to JSON text.
func (s *PaymentRecordStore) CreatePaymentSession(ctx context.Context, input models.PaymentSessionInput) (*models.PaymentSession, error) {
	amount, err := utils.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := utils.SerializeJSON("payment_method", input.PaymentMethod)
	if err != nil {
		return nil, err
	}
	customer, err := utils.SerializeJSON("customer", input.Customer)
	if err != nil {
		return nil, err
	}
	status, err := initialStatus(input.Status)
	if err != nil {
		return nil, err
	}

	session := models.PaymentSession{
		ID:            idOrNew(input.ID),
		Gid:           input.Gid,
		Amount:        amount,
		Currency:      input.Currency,
		Test:          input.Test,
		Kind:          input.Kind,
		CancelURL:     input.CancelURL,
		PaymentMethod: paymentMethod,
		Customer:      customer,
		Status:        status,
		ProposedAt:    timeOrNow(input.ProposedAt),
	}

	utils.LogStore("INSERT", "payment_session", session.ID, "creating")
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, createError("payment_session", session.ID, err)
	}
	utils.LogStore("SUCCESS", "payment_session", session.ID, "created")
	return &session, nil
}

// UpdatePaymentSessionStatus sets the status of a payment session.
func (s *PaymentRecordStore) UpdatePaymentSessionStatus(ctx context.Context, id string, status models.SessionStatus) (*models.PaymentSession, error) {
	var session models.PaymentSession
	updated, err := s.updateStatus(ctx, &session, "payment_session", id, status)
	if err != nil || !updated {
		return nil, err
	}
	return &session, nil
}

// GetPaymentSession returns a payment session with its refunds, captures and void.
func (s *PaymentRecordStore) GetPaymentSession(ctx context.Context, id string) (*models.PaymentSession, error) {
	var session models.PaymentSession
	utils.LogStore("SELECT", "payment_session", id, "fetching")
	err := s.withRelations(ctx).Where("id = ?", id).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogStore("NOT_FOUND", "payment_session", id, "no such record")
			return nil, utils.NotFoundError("Payment session not found", err)
		}
		utils.LogError("Failed to fetch payment_session %s: %v", id, err)
		return nil, utils.WrapError(err, "failed to get payment session")
	}
	return &session, nil
}

// GetPaymentSessions returns the most recently proposed payment sessions, newest first,
// with relations loaded.
func (s *PaymentRecordStore) GetPaymentSessions(ctx context.Context) ([]models.PaymentSession, error) {
	var sessions []models.PaymentSession
	err := s.withRelations(ctx).
		Order("proposed_at DESC").
		Limit(utils.RecentSessionsLimit).
		Find(&sessions).Error
	if err != nil {
		utils.LogError("Failed to list payment sessions: %v", err)
		return nil, utils.WrapError(err, "failed to list payment sessions")
	}
	utils.LogStore("SELECT", "payment_session", "*", fmt.Sprintf("listed %d", len(sessions)))
	return sessions, nil
}

// CreateRefundSession inserts a refund session against an existing payment session.
func (s *PaymentRecordStore) CreateRefundSession(ctx context.Context, input models.RefundSessionInput) (*models.RefundSession, error) {
	amount, err := utils.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	status, err := initialStatus(input.Status)
	if err != nil {
		return nil, err
	}
	if err := s.requirePaymentSession(ctx, input.PaymentID); err != nil {
		return nil, err
	}

	refund := models.RefundSession{
		ID:         idOrNew(input.ID),
		Gid:        input.Gid,
		PaymentID:  input.PaymentID,
		Amount:     amount,
		Currency:   input.Currency,
		Status:     status,
		ProposedAt: timeOrNow(input.ProposedAt),
	}

	utils.LogStore("INSERT", "refund_session", refund.ID, "creating for payment "+refund.PaymentID)
	if err := s.db.WithContext(ctx).Create(&refund).Error; err != nil {
		return nil, createError("refund_session", refund.ID, err)
	}
	return &refund, nil
}

// UpdateRefundSessionStatus sets the status of a refund session.
func (s *PaymentRecordStore) UpdateRefundSessionStatus(ctx context.Context, id string, status models.SessionStatus) (*models.RefundSession, error) {
	var refund models.RefundSession
	updated, err := s.updateStatus(ctx, &refund, "refund_session", id, status)
	if err != nil || !updated {
		return nil, err
	}
	return &refund, nil
}

// CreateCaptureSession inserts a capture session against an existing payment session.
func (s *PaymentRecordStore) CreateCaptureSession(ctx context.Context, input models.CaptureSessionInput) (*models.CaptureSession, error) {
	amount, err := utils.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	status, err := initialStatus(input.Status)
	if err != nil {
		return nil, err
	}
	if err := s.requirePaymentSession(ctx, input.PaymentID); err != nil {
		return nil, err
	}

	capture := models.CaptureSession{
		ID:         idOrNew(input.ID),
		Gid:        input.Gid,
		PaymentID:  input.PaymentID,
		Amount:     amount,
		Currency:   input.Currency,
		Status:     status,
		ProposedAt: timeOrNow(input.ProposedAt),
	}

	utils.LogStore("INSERT", "capture_session", capture.ID, "creating for payment "+capture.PaymentID)
	if err := s.db.WithContext(ctx).Create(&capture).Error; err != nil {
		return nil, createError("capture_session", capture.ID, err)
	}
	return &capture, nil
}

// UpdateCaptureSessionStatus sets the status of a capture session.
func (s *PaymentRecordStore) UpdateCaptureSessionStatus(ctx context.Context, id string, status models.SessionStatus) (*models.CaptureSession, error) {
	var capture models.CaptureSession
	updated, err := s.updateStatus(ctx, &capture, "capture_session", id, status)
	if err != nil || !updated {
		return nil, err
	}
	return &capture, nil
}

// CreateVoidSession inserts void as given. A payment session has at most one void,
// so a second void for the same payment is a conflict.
func (s *PaymentRecordStore) CreateVoidSession(ctx context.Context, void models.VoidSession) (*models.VoidSession, error) {
	status, err := initialStatus(void.Status)
	if err != nil {
		return nil, err
	}
	if err := s.requirePaymentSession(ctx, void.PaymentID); err != nil {
		return nil, err
	}

	void.ID = idOrNew(void.ID)
	void.Status = status
	void.ProposedAt = timeOrNow(void.ProposedAt)
	void.Payment = nil

	utils.LogStore("INSERT", "void_session", void.ID, "creating for payment "+void.PaymentID)
	if err := s.db.WithContext(ctx).Create(&void).Error; err != nil {
		return nil, createError("void_session", void.ID, err)
	}
	return &void, nil
}

// UpdateVoidSessionStatus sets the status of a void session.
func (s *PaymentRecordStore) UpdateVoidSessionStatus(ctx context.Context, id string, status models.SessionStatus) (*models.VoidSession, error) {
	var void models.VoidSession
	updated, err := s.updateStatus(ctx, &void, "void_session", id, status)
	if err != nil || !updated {
		return nil, err
	}
	return &void, nil
}

// GetConfiguration returns the configuration for sessionID, or nil when there is none.
func (s *PaymentRecordStore) GetConfiguration(ctx context.Context, sessionID string) (*models.Configuration, error) {
	var configuration models.Configuration
	err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).Take(&configuration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogStore("NOT_FOUND", "configuration", sessionID, "absent")
			return nil, nil
		}
		utils.LogError("Failed to fetch configuration for %s: %v", sessionID, err)
		return nil, utils.WrapError(err, "failed to get configuration")
	}
	return &configuration, nil
}

// GetOrCreateConfiguration returns the configuration for sessionID, creating it from
// settings when none exists. An existing configuration is returned unchanged.
func (s *PaymentRecordStore) GetOrCreateConfiguration(ctx context.Context, sessionID string, settings map[string]interface{}) (*models.Configuration, error) {
	if err := s.requirePaymentSession(ctx, sessionID); err != nil {
		return nil, err
	}

	candidate := models.Configuration{SessionID: sessionID, Settings: settings}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "session_id"}}, DoNothing: true}).
		Create(&candidate).Error
	if err != nil {
		utils.LogError("Failed to upsert configuration for %s: %v", sessionID, err)
		return nil, utils.WrapError(err, "failed to upsert configuration")
	}

	var configuration models.Configuration
	if err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).Take(&configuration).Error; err != nil {
		return nil, utils.WrapError(err, "failed to read configuration")
	}
	utils.LogStore("UPSERT", "configuration", sessionID, fmt.Sprintf("configuration %d", configuration.ID))
	return &configuration, nil
}

func (s *PaymentRecordStore) withRelations(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Refunds").
		Preload("Captures").
		Preload("Void")
}

// updateStatus loads the record with id into dest and sets its status. It reports
// false without touching the database when status is not a known value.
func (s *PaymentRecordStore) updateStatus(ctx context.Context, dest interface{}, entity, id string, status models.SessionStatus) (bool, error) {
	if !status.IsValid() {
		utils.LogDebug("Store: IGNORED %s %s - status %q", entity, id, status)
		return false, nil
	}

	tx := s.db.WithContext(ctx)
	if err := tx.Where("id = ?", id).Take(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogStore("NOT_FOUND", entity, id, "status update target missing")
			return false, utils.NotFoundError(utils.ErrRecordNotFound, err)
		}
		return false, fmt.Errorf("failed to load %s: %w", entity, err)
	}
	if err := tx.Model(dest).Update("status", status).Error; err != nil {
		utils.LogError("Failed to update %s %s: %v", entity, id, err)
		return false, fmt.Errorf("failed to update %s status: %w", entity, err)
	}
	utils.LogStore("UPDATE", entity, id, "status "+string(status))
	return true, nil
}

func (s *PaymentRecordStore) requirePaymentSession(ctx context.Context, paymentID string) error {
	if paymentID == "" {
		return utils.ValidationErr("Invalid payment reference", utils.FieldValidationError{Field: "payment_id", Message: "is required"})
	}
	var count int64
	err := s.db.WithContext(ctx).Model(&models.PaymentSession{}).Where("id = ?", paymentID).Count(&count).Error
	if err != nil {
		return utils.WrapError(err, "failed to look up payment session")
	}
	if count == 0 {
		utils.LogStore("NOT_FOUND", "payment_session", paymentID, "referenced record missing")
		return utils.NotFoundError("Payment session not found", gorm.ErrRecordNotFound)
	}
	return nil
}

func createError(entity, id string, err error) error {
	if isUniqueViolation(err) {
		utils.LogStore("CONFLICT", entity, id, "already exists")
		return utils.ConflictError(utils.ErrDuplicateEntry, err)
	}
	utils.LogError("Failed to create %s %s: %v", entity, id, err)
	return fmt.Errorf("failed to create %s: %w", entity, err)
}

// isUniqueViolation relies on TranslateError: both the postgres and sqlite dialectors
// map unique constraint failures to gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func initialStatus(status models.SessionStatus) (models.SessionStatus, error) {
	if status == "" {
		return models.StatusPending, nil
	}
	if !status.IsValid() {
		return "", utils.ValidationErr(utils.ErrInvalidStatus, utils.FieldValidationError{Field: "status", Message: string(status)})
	}
	return status, nil
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func timeOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
