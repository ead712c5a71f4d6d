package models

import "time"

// Booking represents a confirmed reservation of an availability slot.
// Teacher, time window and topic are copied from the slot at booking time;
// later slot edits never reach the booking.
type Booking struct {
	BookingID      string         `bson:"booking_id" json:"booking_id"`
	StudentID      string         `bson:"student_id" json:"student_id"`
	TeacherID      string         `bson:"teacher_id" json:"teacher_id"`
	AvailabilityID string         `bson:"availability_id" json:"availability_id"`
	StartTime      string         `bson:"start_time" json:"start_time"`
	EndTime        string         `bson:"end_time" json:"end_time"`
	Topic          string         `bson:"topic" json:"topic"`
	Status         string         `bson:"status" json:"status"`
	PaymentID      string         `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	Extra          map[string]any `bson:"extra,omitempty" json:"extra,omitempty"`
	CreatedAt      time.Time      `bson:"created_at" json:"created_at"`
}

// CreateBookingInput is the request payload for the reservation transaction.
type CreateBookingInput struct {
	StudentID      string         `json:"student_id" validate:"required"`
	AvailabilityID string         `json:"availability_id" validate:"required"`
	Extra          map[string]any `json:"extra,omitempty"`
}
