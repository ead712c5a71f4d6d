package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"connectplatform/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Insert stores a new availability slot.
func (r *MongoAvailabilityRepo) Insert(ctx context.Context, slot *models.AvailabilitySlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("failed to create availability slot %s: %w", slot.AvailabilityID, err)
	}
	return nil
}

// GetByID fetches a slot by its id.
func (r *MongoAvailabilityRepo) GetByID(ctx context.Context, availabilityID string) (*models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.AvailabilitySlot
	err := r.coll.FindOne(ctx, bson.M{"availability_id": availabilityID}).Decode(&slot)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability slot %s: %w", availabilityID, err)
	}
	return &slot, nil
}

// List scans slots, filtered by teacher or by open status.
func (r *MongoAvailabilityRepo) List(ctx context.Context, teacherID string) ([]models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"status": models.SlotStatusAvailable}
	if teacherID != "" {
		// Teachers see their whole schedule, booked slots included.
		filter = bson.M{"teacher_id": teacherID}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding availability slots: %w", err)
	}
	return slots, nil
}

// DeleteAvailable deletes the slot only if it has not been booked. The status
// guard lives in the filter so a concurrent booking cannot slip in between a
// read and the delete.
func (r *MongoAvailabilityRepo) DeleteAvailable(ctx context.Context, availabilityID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{
		"availability_id": availabilityID,
		"status":          models.SlotStatusAvailable,
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete availability slot %s: %w", availabilityID, err)
	}
	return res.DeletedCount > 0, nil
}

// Book performs the conditional status flip. MatchedCount==0 means the
// precondition (status == available) no longer holds; exactly one of any
// number of concurrent callers can match.
func (r *MongoAvailabilityRepo) Book(ctx context.Context, availabilityID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{
			"availability_id": availabilityID,
			"status":          models.SlotStatusAvailable,
		},
		bson.M{"$set": bson.M{"status": models.SlotStatusBooked}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to book availability slot %s: %w", availabilityID, err)
	}
	return res.MatchedCount > 0, nil
}
