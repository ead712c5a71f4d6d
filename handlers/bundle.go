package handlers

import (
	availabilitySvc "connectplatform/services/availability"
	bookingSvc "connectplatform/services/booking"
	catalogSvc "connectplatform/services/catalog"
	meetingSvc "connectplatform/services/meeting"
	paymentSvc "connectplatform/services/payment"
	profileSvc "connectplatform/services/profile"
	sessionSvc "connectplatform/services/session"
	uploadSvc "connectplatform/services/upload"
)

// HandlerBundle groups all endpoint handlers into one struct for the route
// table.
type HandlerBundle struct {
	Profile      *ProfileHandler
	Catalog      *CatalogHandler
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Session      *SessionHandler
	Meeting      *MeetingHandler
	Payment      *PaymentHandler
	Upload       *UploadHandler
}

// NewHandlerBundle wires the handlers to their services.
func NewHandlerBundle(
	profiles profileSvc.ProfileService,
	catalog catalogSvc.CatalogService,
	availability availabilitySvc.AvailabilityService,
	bookings bookingSvc.BookingService,
	sessions sessionSvc.SessionService,
	meetings meetingSvc.MeetingService,
	payments paymentSvc.PaymentService,
	uploads uploadSvc.UploadService,
) *HandlerBundle {
	return &HandlerBundle{
		Profile:      &ProfileHandler{Profiles: profiles},
		Catalog:      &CatalogHandler{Catalog: catalog},
		Availability: &AvailabilityHandler{Availability: availability},
		Booking:      &BookingHandler{Bookings: bookings},
		Session:      &SessionHandler{Sessions: sessions},
		Meeting:      &MeetingHandler{Meetings: meetings},
		Payment:      &PaymentHandler{Payments: payments},
		Upload:       &UploadHandler{Uploads: uploads},
	}
}
