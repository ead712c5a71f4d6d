package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"connectplatform/database"
	"connectplatform/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SessionRepository persists virtual sessions. Updates combine list appends
// (notes, shared documents) and field replacements (status, recording_url)
// in a single store call.
type SessionRepository interface {
	Insert(ctx context.Context, session *models.Session) error
	// GetByID returns nil, nil when the session does not exist.
	GetByID(ctx context.Context, sessionID string) (*models.Session, error)
	// FindByBookingID returns the first session for a booking, nil when none
	// exists yet. The system tolerates multiple sessions per booking.
	FindByBookingID(ctx context.Context, bookingID string) (*models.Session, error)
	// ApplyUpdate applies a combined update document and returns the updated
	// session; nil, nil when the session does not exist.
	ApplyUpdate(ctx context.Context, sessionID string, update bson.M) (*models.Session, error)
	// SetMeeting persists the provisioned meeting on the session.
	SetMeeting(ctx context.Context, sessionID, meetingID string, info *models.MeetingInfo) error
	// ClearMeeting removes meeting fields; clearing an already clear session
	// is not an error.
	ClearMeeting(ctx context.Context, sessionID string) error
}

// MongoSessionRepo implements SessionRepository using MongoDB.
type MongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo creates a new SessionRepository backed by MongoDB.
func NewMongoSessionRepo() SessionRepository {
	coll := database.DB().Collection("sessions")
	repo := &MongoSessionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoSessionRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "session_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
