package catalogRepo

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

// CatalogRepository persists the append-only service catalog.
type CatalogRepository interface {
	Insert(ctx context.Context, offering *models.ServiceOffering) error
	List(ctx context.Context) ([]models.ServiceOffering, error)
}

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates a new CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	coll := database.DB().Collection("services")
	repo := &MongoCatalogRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "service_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert appends a new offering to the catalog.
func (r *MongoCatalogRepo) Insert(ctx context.Context, offering *models.ServiceOffering) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, offering); err != nil {
		return fmt.Errorf("failed to create service %s: %w", offering.ServiceID, err)
	}
	return nil
}

// List scans the full catalog. Acceptable while the catalog stays small.
func (r *MongoCatalogRepo) List(ctx context.Context) ([]models.ServiceOffering, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var offerings []models.ServiceOffering
	if err := cursor.All(ctx, &offerings); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return offerings, nil
}
