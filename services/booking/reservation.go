package booking

import (
	"context"
	"fmt"
	"time"

	"connectplatform/models"
	"connectplatform/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reserve implements the reservation transaction. The slot's conditional
// status flip is the authoritative gate: it happens before the booking write,
// so two concurrent requests can never both produce a booking, and a failed
// booking write can never leave an orphaned booking behind.
func (s *DefaultBookingService) Reserve(ctx context.Context, input models.CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	// Existence first, so callers can tell a bad id (hard error) from a
	// slot lost to contention (retry with a new search).
	slot, err := s.Availability.GetByID(ctx, input.AvailabilityID)
	if err != nil {
		return nil, utils.InternalError("Error fetching availability slot", err)
	}
	if slot == nil {
		return nil, utils.NotFoundError("Availability slot not found")
	}
	if slot.Status != models.SlotStatusAvailable {
		return nil, utils.ConflictError("This time slot is no longer available")
	}

	// The gate. Only one concurrent caller can match status == available.
	won, err := s.Availability.Book(ctx, input.AvailabilityID)
	if err != nil {
		return nil, utils.InternalError("Error reserving availability slot", err)
	}
	if !won {
		// Lost the race between our read and the conditional update, or the
		// slot was deleted in between. Re-check to report the right error.
		current, err := s.Availability.GetByID(ctx, input.AvailabilityID)
		if err != nil {
			return nil, utils.InternalError("Error fetching availability slot", err)
		}
		if current == nil {
			return nil, utils.NotFoundError("Availability slot not found")
		}
		return nil, utils.ConflictError("This time slot is no longer available")
	}

	// Snapshot semantics: teacher, window and topic are copied from the slot
	// as it was at reservation time.
	now := time.Now().UTC()
	newBooking := &models.Booking{
		BookingID:      fmt.Sprintf("booking-%s", uuid.New().String()),
		StudentID:      input.StudentID,
		TeacherID:      slot.TeacherID,
		AvailabilityID: slot.AvailabilityID,
		StartTime:      slot.StartTime,
		EndTime:        slot.EndTime,
		Topic:          slot.Topic,
		Status:         models.SlotStatusBooked,
		Extra:          input.Extra,
		CreatedAt:      now,
	}

	if err := s.Bookings.Insert(ctx, newBooking); err != nil {
		// The gate already flipped; the slot stays booked. Flag it loudly so
		// the record can be reconciled.
		logger.Error("Booking write failed after slot was gated",
			zap.String("availabilityID", input.AvailabilityID),
			zap.String("bookingID", newBooking.BookingID),
			zap.Error(err))
		return nil, utils.InternalError("Error creating booking", err)
	}

	logger.Info("Booking created",
		zap.String("bookingID", newBooking.BookingID),
		zap.String("availabilityID", slot.AvailabilityID),
		zap.String("studentID", input.StudentID))
	return newBooking, nil
}

// List returns bookings, optionally scoped to a student or teacher.
func (s *DefaultBookingService) List(ctx context.Context, studentID, teacherID string) ([]models.Booking, error) {
	bookings, err := s.Bookings.List(ctx, studentID, teacherID)
	if err != nil {
		return nil, utils.InternalError("Error fetching bookings", err)
	}
	return bookings, nil
}

// SessionFor looks up the session created for a booking, if any.
func (s *DefaultBookingService) SessionFor(ctx context.Context, bookingID string) (*models.Session, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, utils.InternalError("Error fetching booking", err)
	}
	if b == nil {
		return nil, utils.NotFoundError("Booking not found")
	}

	session, err := s.Sessions.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, utils.InternalError("Error fetching booking session", err)
	}
	return session, nil
}
