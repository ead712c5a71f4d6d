package models

import "time"

// AvailabilitySlot statuses. A slot never leaves "booked".
const (
	SlotStatusAvailable = "available"
	SlotStatusBooked    = "booked"
)

// AvailabilitySlot is a teacher-declared bookable time window.
type AvailabilitySlot struct {
	AvailabilityID string         `bson:"availability_id" json:"availability_id"`
	TeacherID      string         `bson:"teacher_id" json:"teacher_id" validate:"required"`
	StartTime      string         `bson:"start_time" json:"start_time" validate:"required"`
	EndTime        string         `bson:"end_time" json:"end_time" validate:"required"`
	Topic          string         `bson:"topic" json:"topic"`
	Description    string         `bson:"description,omitempty" json:"description,omitempty"`
	Status         string         `bson:"status" json:"status"`
	Price          float64        `bson:"price,omitempty" json:"price,omitempty"`
	Currency       string         `bson:"currency,omitempty" json:"currency,omitempty"`
	Extra          map[string]any `bson:"extra,omitempty" json:"extra,omitempty"`
	CreatedAt      time.Time      `bson:"created_at" json:"created_at"`
}
