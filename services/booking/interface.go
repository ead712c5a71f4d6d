package booking

import (
	"context"

	availabilityRepo "connectplatform/database/repository/availability"
	bookingRepo "connectplatform/database/repository/booking"
	sessionRepo "connectplatform/database/repository/session"
	"connectplatform/models"
)

// BookingService runs the reservation transaction and booking lookups.
type BookingService interface {
	// Reserve converts an available slot into a booking. Exactly one of any
	// number of concurrent callers for the same slot succeeds; the rest see
	// a conflict error.
	Reserve(ctx context.Context, input models.CreateBookingInput) (*models.Booking, error)
	List(ctx context.Context, studentID, teacherID string) ([]models.Booking, error)
	// SessionFor returns the session linked to a booking, or nil when the
	// booking exists but no session has been created yet.
	SessionFor(ctx context.Context, bookingID string) (*models.Session, error)
}

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Availability availabilityRepo.AvailabilityRepository
	Bookings     bookingRepo.BookingRepository
	Sessions     sessionRepo.SessionRepository
}
