package availabilityRepo

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

// AvailabilityRepository persists teacher availability slots.
type AvailabilityRepository interface {
	Insert(ctx context.Context, slot *models.AvailabilitySlot) error
	// GetByID returns nil, nil when the slot does not exist.
	GetByID(ctx context.Context, availabilityID string) (*models.AvailabilitySlot, error)
	// List returns a teacher's slots when teacherID is set, otherwise all
	// slots still open for booking.
	List(ctx context.Context, teacherID string) ([]models.AvailabilitySlot, error)
	// DeleteAvailable removes the slot only while its status is still
	// "available". Returns false when nothing matched.
	DeleteAvailable(ctx context.Context, availabilityID string) (bool, error)
	// Book atomically flips the slot from "available" to "booked".
	// Returns false when the slot is missing or no longer available; the
	// caller distinguishes the two. This conditional update is the only
	// concurrency gate in the system.
	Book(ctx context.Context, availabilityID string) (bool, error)
}

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new AvailabilityRepository backed by MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.DB().Collection("availability")
	repo := &MongoAvailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "availability_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "teacher_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
