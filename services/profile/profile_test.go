package profile

import (
	"context"
	"testing"

	"connectplatform/models"
	"connectplatform/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProfileRepo is a mock implementation of profileRepo.ProfileRepository
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByID(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepo) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepo) ListTeachers(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Profile), args.Error(1)
}

func teacherPool() []models.Profile {
	return []models.Profile{
		{UserID: "t1", Role: models.RoleTeacher, Name: "Asha Rao", Topics: []string{"Algebra", "Calculus"}},
		{UserID: "t2", Role: models.RoleTeacher, Name: "Dev Algar", Topics: []string{"Physics"}},
		{UserID: "t3", Role: models.RoleTeacher, Name: "Lee Chen", Topics: []string{"Chemistry"}},
	}
}

func TestSearchTeachers_byTopic(t *testing.T) {
	repo := &MockProfileRepo{}
	svc := &DefaultProfileService{Repo: repo}

	repo.On("ListTeachers", mock.Anything).Return(teacherPool(), nil)

	results, err := svc.SearchTeachers(context.Background(), "ALGEBRA", "topic")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "t1", results[0].UserID)
}

func TestSearchTeachers_defaultMatchesBoth(t *testing.T) {
	repo := &MockProfileRepo{}
	svc := &DefaultProfileService{Repo: repo}

	repo.On("ListTeachers", mock.Anything).Return(teacherPool(), nil)

	// "alga" hits t2 by name; "algebra" would hit t1 by topic. An unknown
	// search_type falls back to matching both fields.
	results, err := svc.SearchTeachers(context.Background(), "alga", "bogus")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "t2", results[0].UserID)
}

func TestSearchTeachers_missingQuery(t *testing.T) {
	svc := &DefaultProfileService{}

	_, err := svc.SearchTeachers(context.Background(), "", "topic")
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.CodeValidation, appErr.Code)
}

func TestSearchTeachers_noMatchesIsEmptyNotNil(t *testing.T) {
	repo := &MockProfileRepo{}
	svc := &DefaultProfileService{Repo: repo}

	repo.On("ListTeachers", mock.Anything).Return(teacherPool(), nil)

	results, err := svc.SearchTeachers(context.Background(), "sanskrit", "topic")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestGet_missingProfile(t *testing.T) {
	repo := &MockProfileRepo{}
	svc := &DefaultProfileService{Repo: repo}

	repo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.Get(context.Background(), "ghost")
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.CodeNotFound, appErr.Code)
}
