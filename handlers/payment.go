package handlers

import (
	"net/http"

	"connectplatform/models"
	paymentSvc "connectplatform/services/payment"
	"connectplatform/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes gateway payments and the admin key config.
type PaymentHandler struct {
	Payments paymentSvc.PaymentService
}

// InitializePaymentHandler handles POST /payments/initialize.
func (h *PaymentHandler) InitializePaymentHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.InitializePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid payment payload", zap.Error(err))
		utils.RespondError(c, utils.ValidationError("Invalid JSON payload"))
		return
	}

	result, err := h.Payments.Initialize(c.Request.Context(), &input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// VerifyPaymentHandler handles POST /payments/verify.
func (h *PaymentHandler) VerifyPaymentHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid verification payload", zap.Error(err))
		utils.RespondError(c, utils.ValidationError("Invalid JSON payload"))
		return
	}

	payment, err := h.Payments.Verify(c.Request.Context(), &input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment verified",
		"payment": payment,
	})
}

// PaymentHistoryHandler handles GET /payments?student_id=... or ?teacher_id=...
func (h *PaymentHandler) PaymentHistoryHandler(c *gin.Context) {
	payments, err := h.Payments.History(c.Request.Context(), c.Query("student_id"), c.Query("teacher_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
		"count":    len(payments),
	})
}

// GetPaymentConfigHandler handles GET /admin/payment-config. The secret is
// never echoed back.
func (h *PaymentHandler) GetPaymentConfigHandler(c *gin.Context) {
	cfg, err := h.Payments.GetConfig(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// PutPaymentConfigHandler handles PUT /admin/payment-config.
func (h *PaymentHandler) PutPaymentConfigHandler(c *gin.Context) {
	logger := getLogger(c)

	var cfg models.GatewayConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		logger.Error("Invalid payment config payload", zap.Error(err))
		utils.RespondError(c, utils.ValidationError("Invalid JSON payload"))
		return
	}

	if err := h.Payments.PutConfig(c.Request.Context(), &cfg); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment configuration saved"})
}
