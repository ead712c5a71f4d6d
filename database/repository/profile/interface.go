package profileRepo

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

// ProfileRepository persists user profiles.
type ProfileRepository interface {
	// GetByID returns nil, nil when no profile exists for the user.
	GetByID(ctx context.Context, userID string) (*models.Profile, error)
	// Upsert creates or updates a profile. The original created_at is
	// preserved across updates; updated_at is refreshed.
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	// ListTeachers returns all profiles with the teacher role.
	ListTeachers(ctx context.Context) ([]models.Profile, error)
}

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a new ProfileRepository backed by MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	coll := database.DB().Collection("profiles")
	repo := &MongoProfileRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
