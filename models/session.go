package models

import "time"

// Session statuses.
const (
	SessionStatusActive = "active"
	SessionStatusEnded  = "ended"
)

// SessionNote is an append-only note on a session.
type SessionNote struct {
	Text      string    `bson:"text" json:"text"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// SessionDocument is an append-only shared document reference.
type SessionDocument struct {
	URL       string    `bson:"url" json:"url"`
	Name      string    `bson:"name" json:"name"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Session is a virtual tutoring session created for a booking. The system
// allows a booking to exist without a session and does not prevent multiple
// sessions per booking.
type Session struct {
	SessionID       string            `bson:"session_id" json:"session_id"`
	BookingID       string            `bson:"booking_id" json:"booking_id" validate:"required"`
	TeacherID       string            `bson:"teacher_id" json:"teacher_id" validate:"required"`
	StudentID       string            `bson:"student_id" json:"student_id" validate:"required"`
	StartTime       string            `bson:"start_time" json:"start_time"`
	Status          string            `bson:"status" json:"status"`
	RecordingURL    string            `bson:"recording_url" json:"recording_url"`
	Notes           []SessionNote     `bson:"notes" json:"notes"`
	SharedDocuments []SessionDocument `bson:"shared_documents" json:"shared_documents"`
	ChimeMeetingID  string            `bson:"chime_meeting_id,omitempty" json:"chime_meeting_id,omitempty"`
	Meeting         *MeetingInfo      `bson:"chime_meeting_data,omitempty" json:"chime_meeting_data,omitempty"`
	Extra           map[string]any    `bson:"extra,omitempty" json:"extra,omitempty"`
	CreatedAt       time.Time         `bson:"created_at" json:"created_at"`
}

// SessionUpdateInput carries a partial session update. Appends and field
// replacements may be combined; the store applies them in a single call.
type SessionUpdateInput struct {
	Note         string  `json:"note,omitempty"`
	Document     string  `json:"document,omitempty"`
	DocumentName string  `json:"document_name,omitempty"`
	AuthorID     string  `json:"author_id,omitempty"`
	RecordingURL *string `json:"recording_url,omitempty"`
	Status       *string `json:"status,omitempty"`
}

// Empty reports whether the update carries no changes at all.
func (u SessionUpdateInput) Empty() bool {
	return u.Note == "" && u.Document == "" && u.RecordingURL == nil && u.Status == nil
}
