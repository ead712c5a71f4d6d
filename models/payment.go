package models

import "time"

// Payment statuses. A payment reaches "completed" only after its gateway
// signature verifies.
const (
	PaymentStatusInitiated = "initiated"
	PaymentStatusCompleted = "completed"
)

// Payment tracks a gateway order through checkout and verification.
type Payment struct {
	PaymentID      string    `bson:"payment_id" json:"payment_id"`
	OrderID        string    `bson:"order_id" json:"order_id"`
	Amount         int64     `bson:"amount" json:"amount"` // minor currency units
	Currency       string    `bson:"currency" json:"currency"`
	StudentID      string    `bson:"student_id" json:"student_id"`
	TeacherID      string    `bson:"teacher_id" json:"teacher_id"`
	BookingID      string    `bson:"booking_id,omitempty" json:"booking_id,omitempty"`
	AvailabilityID string    `bson:"availability_id,omitempty" json:"availability_id,omitempty"`
	Topic          string    `bson:"topic,omitempty" json:"topic,omitempty"`
	Status         string    `bson:"status" json:"status"`
	Signature      string    `bson:"signature,omitempty" json:"signature,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// InitializePaymentInput is the request payload for creating a gateway order.
type InitializePaymentInput struct {
	Amount         int64  `json:"amount" validate:"required,gt=0"`
	Currency       string `json:"currency"`
	StudentID      string `json:"student_id" validate:"required"`
	TeacherID      string `json:"teacher_id" validate:"required"`
	BookingID      string `json:"booking_id,omitempty"`
	AvailabilityID string `json:"availability_id,omitempty"`
	Topic          string `json:"topic,omitempty"`
}

// VerifyPaymentInput carries the checkout result to be signature-checked.
type VerifyPaymentInput struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

// GatewayConfig is the persisted RazorPay key pair, editable by admins.
type GatewayConfig struct {
	KeyID     string    `bson:"key_id" json:"key_id" validate:"required"`
	KeySecret string    `bson:"key_secret" json:"key_secret,omitempty" validate:"required"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
