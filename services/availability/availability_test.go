package availability

import (
	"context"
	"testing"

	"connectplatform/models"
	"connectplatform/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAvailabilityRepo is a mock implementation of availabilityRepo.AvailabilityRepository
type MockAvailabilityRepo struct {
	mock.Mock
}

func (m *MockAvailabilityRepo) Insert(ctx context.Context, slot *models.AvailabilitySlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockAvailabilityRepo) GetByID(ctx context.Context, availabilityID string) (*models.AvailabilitySlot, error) {
	args := m.Called(ctx, availabilityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AvailabilitySlot), args.Error(1)
}

func (m *MockAvailabilityRepo) List(ctx context.Context, teacherID string) ([]models.AvailabilitySlot, error) {
	args := m.Called(ctx, teacherID)
	return args.Get(0).([]models.AvailabilitySlot), args.Error(1)
}

func (m *MockAvailabilityRepo) DeleteAvailable(ctx context.Context, availabilityID string) (bool, error) {
	args := m.Called(ctx, availabilityID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAvailabilityRepo) Book(ctx context.Context, availabilityID string) (bool, error) {
	args := m.Called(ctx, availabilityID)
	return args.Bool(0), args.Error(1)
}

func TestCreate_assignsIDAndStatus(t *testing.T) {
	repo := &MockAvailabilityRepo{}
	svc := &DefaultAvailabilityService{Repo: repo}

	repo.On("Insert", mock.Anything, mock.AnythingOfType("*models.AvailabilitySlot")).Return(nil)

	slot, err := svc.Create(context.Background(), models.AvailabilitySlot{
		TeacherID: "teacher-1",
		StartTime: "2026-09-01T10:00:00Z",
		EndTime:   "2026-09-01T11:00:00Z",
		Topic:     "Geometry",
	})
	require.NoError(t, err)
	assert.Contains(t, slot.AvailabilityID, "avail-")
	assert.Equal(t, models.SlotStatusAvailable, slot.Status)
	assert.False(t, slot.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestCreate_missingFields(t *testing.T) {
	svc := &DefaultAvailabilityService{}

	_, err := svc.Create(context.Background(), models.AvailabilitySlot{TeacherID: "teacher-1"})
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.CodeValidation, appErr.Code)
}

func TestDelete_bookedSlotRefused(t *testing.T) {
	repo := &MockAvailabilityRepo{}
	svc := &DefaultAvailabilityService{Repo: repo}

	repo.On("GetByID", mock.Anything, "avail-1").Return(&models.AvailabilitySlot{
		AvailabilityID: "avail-1",
		Status:         models.SlotStatusBooked,
	}, nil)

	err := svc.Delete(context.Background(), "avail-1")
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.CodeConflict, appErr.Code)
	repo.AssertNotCalled(t, "DeleteAvailable", mock.Anything, mock.Anything)
}

func TestDelete_missingSlot(t *testing.T) {
	repo := &MockAvailabilityRepo{}
	svc := &DefaultAvailabilityService{Repo: repo}

	repo.On("GetByID", mock.Anything, "avail-missing").Return(nil, nil)

	err := svc.Delete(context.Background(), "avail-missing")
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.CodeNotFound, appErr.Code)
}

func TestDelete_raceWithBooking(t *testing.T) {
	repo := &MockAvailabilityRepo{}
	svc := &DefaultAvailabilityService{Repo: repo}

	// The read sees an open slot, but the conditional delete matches
	// nothing because a booking claimed it in between.
	repo.On("GetByID", mock.Anything, "avail-1").Return(&models.AvailabilitySlot{
		AvailabilityID: "avail-1",
		Status:         models.SlotStatusAvailable,
	}, nil)
	repo.On("DeleteAvailable", mock.Anything, "avail-1").Return(false, nil)

	err := svc.Delete(context.Background(), "avail-1")
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.CodeConflict, appErr.Code)
}
