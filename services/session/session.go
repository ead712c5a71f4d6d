package session

import (
	"context"
	"fmt"
	"time"

	sessionRepo "connectplatform/database/repository/session"
	"connectplatform/models"
	"connectplatform/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService manages virtual tutoring sessions.
type SessionService interface {
	Create(ctx context.Context, session models.Session) (*models.Session, error)
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	// Update applies a partial session update: note/document appends and
	// status/recording replacements, combined into one store call.
	Update(ctx context.Context, sessionID string, input models.SessionUpdateInput) (*models.Session, error)
}

// DefaultSessionService is the production SessionService.
type DefaultSessionService struct {
	Repo sessionRepo.SessionRepository
}

// Create stores a new active session for a booking. Bookings may accumulate
// more than one session; the store does not prevent it.
func (s *DefaultSessionService) Create(ctx context.Context, session models.Session) (*models.Session, error) {
	if err := utils.ValidateStruct(session); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session.SessionID = fmt.Sprintf("session-%s", uuid.New().String())
	session.Status = models.SessionStatusActive
	session.RecordingURL = ""
	session.Notes = []models.SessionNote{}
	session.SharedDocuments = []models.SessionDocument{}
	session.CreatedAt = now
	if session.StartTime == "" {
		session.StartTime = now.Format(time.RFC3339)
	}

	if err := s.Repo.Insert(ctx, &session); err != nil {
		return nil, utils.InternalError("Error creating session", err)
	}

	utils.GetLogger().Info("Session created",
		zap.String("sessionID", session.SessionID),
		zap.String("bookingID", session.BookingID))
	return &session, nil
}

// Get fetches a session by id.
func (s *DefaultSessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.Repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, utils.InternalError("Error fetching session", err)
	}
	if session == nil {
		return nil, utils.NotFoundError("Session not found")
	}
	return session, nil
}

// Update applies the combined partial update and returns the new document.
func (s *DefaultSessionService) Update(ctx context.Context, sessionID string, input models.SessionUpdateInput) (*models.Session, error) {
	if input.Empty() {
		return nil, utils.ValidationError("No updates provided")
	}

	update := BuildUpdate(input, time.Now().UTC())
	session, err := s.Repo.ApplyUpdate(ctx, sessionID, update)
	if err != nil {
		return nil, utils.InternalError("Error updating session", err)
	}
	if session == nil {
		return nil, utils.NotFoundError("Session not found")
	}
	return session, nil
}
