package catalog

import (
	"context"
	"testing"

	"connectplatform/models"
	"connectplatform/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogRepo is a mock implementation of catalogRepo.CatalogRepository
type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) Insert(ctx context.Context, offering *models.ServiceOffering) error {
	args := m.Called(ctx, offering)
	return args.Error(0)
}

func (m *MockCatalogRepo) List(ctx context.Context) ([]models.ServiceOffering, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceOffering), args.Error(1)
}

func TestCreate_derivesServiceID(t *testing.T) {
	repo := &MockCatalogRepo{}
	svc := &DefaultCatalogService{Repo: repo}

	repo.On("Insert", mock.Anything, mock.AnythingOfType("*models.ServiceOffering")).Return(nil)

	created, err := svc.Create(context.Background(), models.ServiceOffering{
		ExpertID: "teacher-1",
		Title:    "1:1 Calculus",
		Price:    750,
		Currency: "INR",
	})
	require.NoError(t, err)
	// Service id is the expert id plus the creation timestamp.
	assert.Regexp(t, `^teacher-1-\d+$`, created.ServiceID)
	assert.False(t, created.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestCreate_missingExpertID(t *testing.T) {
	svc := &DefaultCatalogService{}

	_, err := svc.Create(context.Background(), models.ServiceOffering{Title: "No owner"})
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.CodeValidation, appErr.Code)
}

func TestList_fallsBackToRepoWithoutCache(t *testing.T) {
	repo := &MockCatalogRepo{}
	svc := &DefaultCatalogService{Repo: repo}

	offerings := []models.ServiceOffering{{ServiceID: "teacher-1-1756000000", ExpertID: "teacher-1"}}
	repo.On("List", mock.Anything).Return(offerings, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, offerings, got)
}
