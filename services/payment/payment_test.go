package payment

import (
	"context"
	"testing"

	"connectplatform/models"
	"connectplatform/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPaymentRepo is a mock implementation of paymentRepo.PaymentRepository
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Insert(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentRepo) MarkCompleted(ctx context.Context, orderID, gatewayPaymentID, signature string) (*models.Payment, error) {
	args := m.Called(ctx, orderID, gatewayPaymentID, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentRepo) List(ctx context.Context, studentID, teacherID string) ([]models.Payment, error) {
	args := m.Called(ctx, studentID, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentRepo) GetConfig(ctx context.Context) (*models.GatewayConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GatewayConfig), args.Error(1)
}

func (m *MockPaymentRepo) PutConfig(ctx context.Context, cfg *models.GatewayConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

// fakeGateway returns a canned order id instead of hitting Razorpay.
type fakeGateway struct {
	orderID string
	amount  int64
}

func (g *fakeGateway) CreateOrder(amount int64, currency, receipt string) (string, error) {
	g.amount = amount
	return g.orderID, nil
}

func storedKeys() *models.GatewayConfig {
	return &models.GatewayConfig{KeyID: "rzp_test_key", KeySecret: "rzp_test_secret"}
}

func TestInitialize_defaultsCurrencyAndRecordsPayment(t *testing.T) {
	repo := &MockPaymentRepo{}
	gw := &fakeGateway{orderID: "order_100"}
	svc := &DefaultPaymentService{
		Repo:       repo,
		NewGateway: func(keyID, keySecret string) OrderCreator { return gw },
	}

	repo.On("GetConfig", mock.Anything).Return(storedKeys(), nil)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
		return p.OrderID == "order_100" &&
			p.Status == models.PaymentStatusInitiated &&
			p.Currency == "INR"
	})).Return(nil)

	result, err := svc.Initialize(context.Background(), &models.InitializePaymentInput{
		Amount:    50000,
		StudentID: "student-1",
		TeacherID: "teacher-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "order_100", result.OrderID)
	assert.Equal(t, "rzp_test_key", result.KeyID)
	assert.Equal(t, int64(50000), gw.amount)
	repo.AssertExpectations(t)
}

func TestInitialize_rejectsNonPositiveAmount(t *testing.T) {
	svc := &DefaultPaymentService{}

	_, err := svc.Initialize(context.Background(), &models.InitializePaymentInput{
		Amount:    0,
		StudentID: "student-1",
		TeacherID: "teacher-1",
	})
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.CodeValidation, appErr.Code)
}

func TestVerify_goodSignatureCompletes(t *testing.T) {
	repo := &MockPaymentRepo{}
	svc := &DefaultPaymentService{Repo: repo}

	sig := ComputeSignature("order_100", "pay_200", "rzp_test_secret")
	initiated := &models.Payment{OrderID: "order_100", Status: models.PaymentStatusInitiated}
	completed := &models.Payment{OrderID: "order_100", PaymentID: "pay_200", Status: models.PaymentStatusCompleted}

	repo.On("GetByOrderID", mock.Anything, "order_100").Return(initiated, nil)
	repo.On("GetConfig", mock.Anything).Return(storedKeys(), nil)
	repo.On("MarkCompleted", mock.Anything, "order_100", "pay_200", sig).Return(completed, nil)

	result, err := svc.Verify(context.Background(), &models.VerifyPaymentInput{
		OrderID:   "order_100",
		PaymentID: "pay_200",
		Signature: sig,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, result.Status)
	repo.AssertExpectations(t)
}

func TestVerify_badSignatureRejected(t *testing.T) {
	repo := &MockPaymentRepo{}
	svc := &DefaultPaymentService{Repo: repo}

	repo.On("GetByOrderID", mock.Anything, "order_100").Return(&models.Payment{OrderID: "order_100"}, nil)
	repo.On("GetConfig", mock.Anything).Return(storedKeys(), nil)

	_, err := svc.Verify(context.Background(), &models.VerifyPaymentInput{
		OrderID:   "order_100",
		PaymentID: "pay_200",
		Signature: "forged",
	})
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.CodeValidation, appErr.Code)
	repo.AssertNotCalled(t, "MarkCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerify_unknownOrder(t *testing.T) {
	repo := &MockPaymentRepo{}
	svc := &DefaultPaymentService{Repo: repo}

	repo.On("GetByOrderID", mock.Anything, "order_unknown").Return(nil, nil)

	_, err := svc.Verify(context.Background(), &models.VerifyPaymentInput{
		OrderID:   "order_unknown",
		PaymentID: "pay_200",
		Signature: "anything",
	})
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.CodeNotFound, appErr.Code)
}

func TestGetConfig_masksSecret(t *testing.T) {
	repo := &MockPaymentRepo{}
	svc := &DefaultPaymentService{Repo: repo}

	repo.On("GetConfig", mock.Anything).Return(storedKeys(), nil)

	cfg, err := svc.GetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rzp_test_key", cfg.KeyID)
	assert.Empty(t, cfg.KeySecret)
}
