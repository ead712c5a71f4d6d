package profileRepo

import (
	"context"
	"fmt"
	"time"

	"connectplatform/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID fetches a profile by user id.
func (r *MongoProfileRepo) GetByID(ctx context.Context, userID string) (*models.Profile, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var profile models.Profile
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile %s: %w", userID, err)
	}
	return &profile, nil
}

// Upsert writes the profile, keeping created_at stable on updates.
func (r *MongoProfileRepo) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	set := bson.M{
		"user_id":    profile.UserID,
		"updated_at": now,
	}
	if profile.Role != "" {
		set["role"] = profile.Role
	}
	if profile.Name != "" {
		set["name"] = profile.Name
	}
	if profile.Email != "" {
		set["email"] = profile.Email
	}
	if profile.Bio != "" {
		set["bio"] = profile.Bio
	}
	if profile.PhotoURL != "" {
		set["photo_url"] = profile.PhotoURL
	}
	if profile.Topics != nil {
		set["topics"] = profile.Topics
	}
	if profile.Extra != nil {
		set["extra"] = profile.Extra
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": now},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.Profile
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"user_id": profile.UserID}, update, opts).Decode(&stored)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile %s: %w", profile.UserID, err)
	}
	return &stored, nil
}

// ListTeachers scans all teacher profiles for search.
func (r *MongoProfileRepo) ListTeachers(ctx context.Context) ([]models.Profile, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"role": models.RoleTeacher})
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	defer cursor.Close(ctx)

	var teachers []models.Profile
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, fmt.Errorf("error decoding teacher profiles: %w", err)
	}
	return teachers, nil
}
