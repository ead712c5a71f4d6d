package availability

import (
	"context"
	"fmt"
	"time"

	availabilityRepo "connectplatform/database/repository/availability"
	"connectplatform/models"
	"connectplatform/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AvailabilityService manages teacher availability slots.
type AvailabilityService interface {
	Create(ctx context.Context, slot models.AvailabilitySlot) (*models.AvailabilitySlot, error)
	List(ctx context.Context, teacherID string) ([]models.AvailabilitySlot, error)
	// Delete removes a slot; booked slots are immutable history and refuse
	// deletion.
	Delete(ctx context.Context, availabilityID string) error
}

// DefaultAvailabilityService is the production AvailabilityService.
type DefaultAvailabilityService struct {
	Repo availabilityRepo.AvailabilityRepository
}

// Create stores a new slot with a server-assigned id and timestamp.
func (s *DefaultAvailabilityService) Create(ctx context.Context, slot models.AvailabilitySlot) (*models.AvailabilitySlot, error) {
	if err := utils.ValidateStruct(slot); err != nil {
		return nil, err
	}

	slot.AvailabilityID = fmt.Sprintf("avail-%s", uuid.New().String())
	slot.Status = models.SlotStatusAvailable
	slot.CreatedAt = time.Now().UTC()

	if err := s.Repo.Insert(ctx, &slot); err != nil {
		return nil, utils.InternalError("Error creating availability slot", err)
	}

	utils.GetLogger().Info("Availability slot created",
		zap.String("availabilityID", slot.AvailabilityID),
		zap.String("teacherID", slot.TeacherID))
	return &slot, nil
}

// List returns a teacher's slots, or all open slots for student search.
func (s *DefaultAvailabilityService) List(ctx context.Context, teacherID string) ([]models.AvailabilitySlot, error) {
	slots, err := s.Repo.List(ctx, teacherID)
	if err != nil {
		return nil, utils.InternalError("Error fetching availability slots", err)
	}
	return slots, nil
}

// Delete removes the slot while it is still available. The status guard is
// part of the delete itself, so a slot booked concurrently is refused too.
func (s *DefaultAvailabilityService) Delete(ctx context.Context, availabilityID string) error {
	slot, err := s.Repo.GetByID(ctx, availabilityID)
	if err != nil {
		return utils.InternalError("Error fetching availability slot", err)
	}
	if slot == nil {
		return utils.NotFoundError("Availability slot not found")
	}
	if slot.Status != models.SlotStatusAvailable {
		return utils.ConflictError("Cannot delete a booked availability slot")
	}

	deleted, err := s.Repo.DeleteAvailable(ctx, availabilityID)
	if err != nil {
		return utils.InternalError("Error deleting availability slot", err)
	}
	if !deleted {
		// Booked (or removed) between the read and the conditional delete.
		return utils.ConflictError("Cannot delete a booked availability slot")
	}
	return nil
}
