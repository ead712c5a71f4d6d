package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"connectplatform/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Insert stores a new session.
func (r *MongoSessionRepo) Insert(ctx context.Context, session *models.Session) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("failed to create session %s: %w", session.SessionID, err)
	}
	return nil
}

// GetByID fetches a session by its id.
func (r *MongoSessionRepo) GetByID(ctx context.Context, sessionID string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.Session
	err := r.coll.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session %s: %w", sessionID, err)
	}
	return &session, nil
}

// FindByBookingID scans for a session linked to the booking.
func (r *MongoSessionRepo) FindByBookingID(ctx context.Context, bookingID string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.Session
	err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find session for booking %s: %w", bookingID, err)
	}
	return &session, nil
}

// ApplyUpdate runs one combined update and returns the new document.
func (r *MongoSessionRepo) ApplyUpdate(ctx context.Context, sessionID string, update bson.M) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var session models.Session
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"session_id": sessionID}, update, opts).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update session %s: %w", sessionID, err)
	}
	return &session, nil
}

// SetMeeting links the provisioned meeting to the session.
func (r *MongoSessionRepo) SetMeeting(ctx context.Context, sessionID, meetingID string, info *models.MeetingInfo) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"chime_meeting_id":   meetingID,
		"chime_meeting_data": info,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"session_id": sessionID}, update)
	if err != nil {
		return fmt.Errorf("failed to link meeting to session %s: %w", sessionID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("session %s not found", sessionID)
	}
	return nil
}

// ClearMeeting unlinks any meeting from the session.
func (r *MongoSessionRepo) ClearMeeting(ctx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$unset": bson.M{
		"chime_meeting_id":   "",
		"chime_meeting_data": "",
	}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"session_id": sessionID}, update); err != nil {
		return fmt.Errorf("failed to clear meeting on session %s: %w", sessionID, err)
	}
	return nil
}
