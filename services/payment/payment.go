package payment

import (
	"context"
	"fmt"
	"time"

	"connectplatform/config"
	paymentRepo "connectplatform/database/repository/payment"
	"connectplatform/models"
	"connectplatform/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitializeResult is what the checkout page needs to open the gateway
// widget: the order plus the publishable key.
type InitializeResult struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

// PaymentService handles gateway orders, verification, and key config.
type PaymentService interface {
	Initialize(ctx context.Context, input *models.InitializePaymentInput) (*InitializeResult, error)
	Verify(ctx context.Context, input *models.VerifyPaymentInput) (*models.Payment, error)
	History(ctx context.Context, studentID, teacherID string) ([]models.Payment, error)

	GetConfig(ctx context.Context) (*models.GatewayConfig, error)
	PutConfig(ctx context.Context, cfg *models.GatewayConfig) error
}

// GatewayFactory builds an order client for a key pair. Indirected so tests
// can swap the real Razorpay client out.
type GatewayFactory func(keyID, keySecret string) OrderCreator

// DefaultPaymentService implements PaymentService on MongoDB and Razorpay.
type DefaultPaymentService struct {
	Repo       paymentRepo.PaymentRepository
	NewGateway GatewayFactory
}

// keys returns the active gateway key pair: the stored admin config when
// present, otherwise the environment configuration.
func (s *DefaultPaymentService) keys(ctx context.Context) (string, string, error) {
	stored, err := s.Repo.GetConfig(ctx)
	if err != nil {
		return "", "", utils.InternalError("Error loading payment configuration", err)
	}
	if stored != nil && stored.KeyID != "" && stored.KeySecret != "" {
		return stored.KeyID, stored.KeySecret, nil
	}

	cfg := config.AppConfig
	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		return "", "", utils.InternalError("Payment gateway is not configured", nil)
	}
	return cfg.RazorpayKeyID, cfg.RazorpayKeySecret, nil
}

// Initialize creates a gateway order and records the payment as initiated.
func (s *DefaultPaymentService) Initialize(ctx context.Context, input *models.InitializePaymentInput) (*InitializeResult, error) {
	logger := utils.GetLogger()

	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	if input.Currency == "" {
		input.Currency = "INR"
	}

	keyID, keySecret, err := s.keys(ctx)
	if err != nil {
		return nil, err
	}

	receipt := fmt.Sprintf("rcpt-%s", uuid.New().String()[:13])
	orderID, err := s.NewGateway(keyID, keySecret).CreateOrder(input.Amount, input.Currency, receipt)
	if err != nil {
		logger.Error("Gateway order creation failed", zap.Error(err))
		return nil, utils.InternalError("Error initializing payment", err)
	}

	payment := &models.Payment{
		PaymentID:      fmt.Sprintf("payment-%s", uuid.New().String()),
		OrderID:        orderID,
		Amount:         input.Amount,
		Currency:       input.Currency,
		StudentID:      input.StudentID,
		TeacherID:      input.TeacherID,
		BookingID:      input.BookingID,
		AvailabilityID: input.AvailabilityID,
		Topic:          input.Topic,
		Status:         models.PaymentStatusInitiated,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, payment); err != nil {
		return nil, utils.InternalError("Error recording payment", err)
	}

	logger.Info("Payment initialized",
		zap.String("orderID", orderID),
		zap.String("studentID", input.StudentID),
		zap.Int64("amount", input.Amount))

	return &InitializeResult{
		OrderID:  orderID,
		Amount:   payment.Amount,
		Currency: payment.Currency,
		KeyID:    keyID,
	}, nil
}

// Verify checks the checkout signature and completes the payment.
func (s *DefaultPaymentService) Verify(ctx context.Context, input *models.VerifyPaymentInput) (*models.Payment, error) {
	logger := utils.GetLogger()

	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	payment, err := s.Repo.GetByOrderID(ctx, input.OrderID)
	if err != nil {
		return nil, utils.InternalError("Error fetching payment", err)
	}
	if payment == nil {
		return nil, utils.NotFoundError("Payment not found for this order")
	}

	_, keySecret, err := s.keys(ctx)
	if err != nil {
		return nil, err
	}
	if !VerifySignature(input.OrderID, input.PaymentID, keySecret, input.Signature) {
		logger.Warn("Payment signature mismatch", zap.String("orderID", input.OrderID))
		return nil, utils.ValidationError("Payment signature verification failed")
	}

	completed, err := s.Repo.MarkCompleted(ctx, input.OrderID, input.PaymentID, input.Signature)
	if err != nil {
		return nil, utils.InternalError("Error completing payment", err)
	}
	if completed == nil {
		return nil, utils.NotFoundError("Payment not found for this order")
	}

	logger.Info("Payment verified",
		zap.String("orderID", input.OrderID),
		zap.String("paymentID", input.PaymentID))
	return completed, nil
}

// History lists recorded payments, optionally filtered by party.
func (s *DefaultPaymentService) History(ctx context.Context, studentID, teacherID string) ([]models.Payment, error) {
	payments, err := s.Repo.List(ctx, studentID, teacherID)
	if err != nil {
		return nil, utils.InternalError("Error listing payments", err)
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return payments, nil
}

// GetConfig returns the stored gateway config with the secret masked.
func (s *DefaultPaymentService) GetConfig(ctx context.Context) (*models.GatewayConfig, error) {
	stored, err := s.Repo.GetConfig(ctx)
	if err != nil {
		return nil, utils.InternalError("Error loading payment configuration", err)
	}
	if stored == nil {
		return nil, utils.NotFoundError("Payment configuration not found")
	}
	stored.KeySecret = ""
	return stored, nil
}

// PutConfig stores a new gateway key pair.
func (s *DefaultPaymentService) PutConfig(ctx context.Context, cfg *models.GatewayConfig) error {
	if err := utils.ValidateStruct(cfg); err != nil {
		return err
	}
	if err := s.Repo.PutConfig(ctx, cfg); err != nil {
		return utils.InternalError("Error storing payment configuration", err)
	}
	utils.GetLogger().Info("Payment gateway configuration updated",
		zap.String("keyID", cfg.KeyID))
	return nil
}
