package service

import (
	"context"
	"errors"
	"time"

	"github.com/archerhq/rangebook/internal/backend"
	"github.com/archerhq/rangebook/internal/domain/model"
)

// ErrNotImplemented marks an operation the remote backend does not expose.
// Callers surface it as an explicit notice rather than a silent success.
var ErrNotImplemented = errors.New("not implemented by the booking backend")

// ErrCancelWindowClosed is returned when a user tries to cancel a booking
// that starts within the cancellation cutoff.
var ErrCancelWindowClosed = errors.New("bookings cannot be cancelled within 12 hours of start time")

// ErrBookingNotFound is returned when a cancellation targets a booking the
// user does not hold.
var ErrBookingNotFound = errors.New("booking not found")

// BookingBackend is the slice of the backend client used for slot and
// booking operations.
type BookingBackend interface {
	Availability(ctx context.Context, filter model.AvailabilityFilter) ([]model.TimeSlot, backend.Result)
	AllSlots(ctx context.Context, userID string, filter model.AvailabilityFilter) ([]model.TimeSlot, backend.Result)
	AllBookings(ctx context.Context, userID string) ([]model.Booking, backend.Result)
	MyBookings(ctx context.Context, userID string) ([]model.Booking, backend.Result)
	Book(ctx context.Context, userID, timeSlotID string) (backend.Confirmation, backend.Result)
	BookGuest(ctx context.Context, req model.GuestBookingRequest) (backend.Confirmation, backend.Result)
	Cancel(ctx context.Context, userID, bookingID string) backend.Result
	AddSlot(ctx context.Context, userID string, req model.AddSlotRequest) (string, backend.Result)
}

// BookingServiceOptions groups dependencies for BookingService.
type BookingServiceOptions struct {
	Backend BookingBackend
	Now     func() time.Time
}

// BookingService fronts the remote booking backend: it validates input
// client-side where the contract asks for it, enforces the user-level
// cancellation window, and reduces backend failures to user-facing errors.
// It holds no state; every read is a fresh fetch.
type BookingService struct {
	backend BookingBackend
	now     func() time.Time
}

// NewBookingService constructs a new BookingService.
func NewBookingService(opts BookingServiceOptions) *BookingService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &BookingService{backend: opts.Backend, now: now}
}

// failure converts a failed result envelope into a user-facing error.
func failure(res backend.Result, fallback string) error {
	return errors.New(res.FailureText(fallback))
}

// Availability lists open slots matching the filter. Empty filter fields mean
// no filter; the backend interprets the wildcard.
func (s *BookingService) Availability(ctx context.Context, filter model.AvailabilityFilter) ([]model.TimeSlot, error) {
	slots, res := s.backend.Availability(ctx, filter)
	if !res.Success {
		return nil, failure(res, "Failed to load availability")
	}
	return slots, nil
}

// AllSlots lists every slot, booked and available, for the admin view.
func (s *BookingService) AllSlots(ctx context.Context, userID string, filter model.AvailabilityFilter) ([]model.TimeSlot, error) {
	slots, res := s.backend.AllSlots(ctx, userID, filter)
	if !res.Success {
		return nil, failure(res, "Failed to load slots")
	}
	return slots, nil
}

// AllBookings lists every active booking for the admin view.
func (s *BookingService) AllBookings(ctx context.Context, userID string) ([]model.Booking, error) {
	bookings, res := s.backend.AllBookings(ctx, userID)
	if !res.Success {
		return nil, failure(res, "Failed to load bookings")
	}
	return bookings, nil
}

// MyBookings lists the user's own bookings.
func (s *BookingService) MyBookings(ctx context.Context, userID string) ([]model.Booking, error) {
	bookings, res := s.backend.MyBookings(ctx, userID)
	if !res.Success {
		return nil, failure(res, "Failed to load bookings")
	}
	return bookings, nil
}

// Book reserves a slot for a signed-in user and returns the issued booking
// ID and lane code.
func (s *BookingService) Book(ctx context.Context, userID, timeSlotID string) (backend.Confirmation, error) {
	if timeSlotID == "" {
		return backend.Confirmation{}, errors.New("no slot selected")
	}
	conf, res := s.backend.Book(ctx, userID, timeSlotID)
	if !res.Success {
		return backend.Confirmation{}, failure(res, "Booking failed")
	}
	return conf, nil
}

// BookGuest reserves a slot for an unauthenticated visitor. Validation runs
// before any network call: an incomplete request never reaches the backend.
func (s *BookingService) BookGuest(ctx context.Context, req model.GuestBookingRequest) (backend.Confirmation, error) {
	if err := req.Validate(); err != nil {
		return backend.Confirmation{}, err
	}
	conf, res := s.backend.BookGuest(ctx, req)
	if !res.Success {
		return backend.Confirmation{}, failure(res, "Guest booking failed")
	}
	return conf, nil
}

// CancelOwn cancels one of the user's own bookings, re-checking the
// cancellation window server-side. The UI already withholds the control for
// ineligible bookings; this guards against stale or forged submissions.
func (s *BookingService) CancelOwn(ctx context.Context, userID, bookingID string) error {
	bookings, res := s.backend.MyBookings(ctx, userID)
	if !res.Success {
		return failure(res, "Cancellation failed")
	}

	var target *model.Booking
	for i := range bookings {
		if bookings[i].BookingID == bookingID {
			target = &bookings[i]
			break
		}
	}
	if target == nil {
		return ErrBookingNotFound
	}
	if !model.CanCancel(*target, s.now()) {
		return ErrCancelWindowClosed
	}

	if res := s.backend.Cancel(ctx, userID, bookingID); !res.Success {
		return failure(res, "Cancellation failed")
	}
	return nil
}

// AdminCancel cancels any booking on behalf of an admin. The cancellation
// window does not apply; the admin submits their own user ID with the target
// booking and the backend enforces whatever authorization it has.
func (s *BookingService) AdminCancel(ctx context.Context, adminUserID, bookingID string) error {
	if bookingID == "" {
		return ErrBookingNotFound
	}
	if res := s.backend.Cancel(ctx, adminUserID, bookingID); !res.Success {
		return failure(res, "Cancellation failed")
	}
	return nil
}

// AddSlot creates a new bookable slot. Only field presence is validated
// here; time ordering belongs to the backend.
func (s *BookingService) AddSlot(ctx context.Context, userID string, req model.AddSlotRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	id, res := s.backend.AddSlot(ctx, userID, req)
	if !res.Success {
		return "", failure(res, "Failed to add slot")
	}
	return id, nil
}

// DeleteSlot has no corresponding backend action. It always reports
// ErrNotImplemented and never issues a call.
func (s *BookingService) DeleteSlot(_ context.Context, _ string) error {
	return ErrNotImplemented
}
