package profile

import (
	"context"
	"strings"

	profileRepo "connectplatform/database/repository/profile"
	"connectplatform/models"
	"connectplatform/utils"
)

// ProfileService manages user profiles and teacher search.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	// Upsert creates or updates a profile, preserving the original created_at.
	Upsert(ctx context.Context, profile models.Profile) (*models.Profile, error)
	// SearchTeachers matches teacher profiles by topic and/or name substring.
	// searchType is one of "topic", "name" or "both" (the default).
	SearchTeachers(ctx context.Context, query, searchType string) ([]models.Profile, error)
}

// DefaultProfileService is the production ProfileService.
type DefaultProfileService struct {
	Repo profileRepo.ProfileRepository
}

// Get fetches a profile by user id.
func (s *DefaultProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	if userID == "" {
		return nil, utils.ValidationError("user_id is required to fetch the profile")
	}
	p, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.InternalError("Error fetching profile", err)
	}
	if p == nil {
		return nil, utils.NotFoundError("User profile not found")
	}
	return p, nil
}

// Upsert writes the profile through the repository's created_at-preserving
// upsert.
func (s *DefaultProfileService) Upsert(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	if err := utils.ValidateStruct(profile); err != nil {
		return nil, err
	}
	stored, err := s.Repo.Upsert(ctx, &profile)
	if err != nil {
		return nil, utils.InternalError("Error saving profile", err)
	}
	return stored, nil
}

// SearchTeachers scans teacher profiles and matches the query against topics
// and/or names, case-insensitively.
func (s *DefaultProfileService) SearchTeachers(ctx context.Context, query, searchType string) ([]models.Profile, error) {
	if query == "" {
		return nil, utils.ValidationError("Missing search query")
	}
	switch searchType {
	case "topic", "name":
	default:
		searchType = "both"
	}

	teachers, err := s.Repo.ListTeachers(ctx)
	if err != nil {
		return nil, utils.InternalError("Error searching for teachers", err)
	}

	query = strings.ToLower(query)
	matched := make([]models.Profile, 0)
	for _, t := range teachers {
		if matchesTeacher(t, query, searchType) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func matchesTeacher(t models.Profile, query, searchType string) bool {
	if searchType == "topic" || searchType == "both" {
		for _, topic := range t.Topics {
			if strings.Contains(strings.ToLower(topic), query) {
				return true
			}
		}
	}
	if searchType == "name" || searchType == "both" {
		if t.Name != "" && strings.Contains(strings.ToLower(t.Name), query) {
			return true
		}
	}
	return false
}
