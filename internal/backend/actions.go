package backend

import (
	"context"

	"github.com/archerhq/rangebook/internal/domain/model"
)

// Action names understood by the booking backend. The names and field shapes
// are an implicit contract with the deployed script; change them together.
const (
	actionLogin           = "login"
	actionGetAvailability = "getAvailability"
	actionGetAllSlots     = "getAllSlots"
	actionGetAllBookings  = "getAllBookings"
	actionGetMyBookings   = "getMyBookings"
	actionBook            = "book"
	actionBookGuest       = "bookGuest"
	actionCancel          = "cancel"
	actionAddSlot         = "addSlot"
)

// LoginResult carries the identity fields of a successful login.
type LoginResult struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	Name   string `json:"name"`
}

// Confirmation carries the credentials issued for a successful booking.
type Confirmation struct {
	BookingID string `json:"bookingId"`
	LaneCode  string `json:"laneCode"`
}

// Login authenticates a user against the backend's user sheet.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, Result) {
	res := c.Call(ctx, actionLogin, map[string]any{
		"email":    email,
		"password": password,
	})
	var out LoginResult
	if !res.Success {
		return out, res
	}
	if err := res.Decode(&out); err != nil {
		return LoginResult{}, networkFailure()
	}
	return out, res
}

// Availability lists open slots. Empty filter fields are forwarded as empty
// strings; the backend treats them as wildcards.
func (c *Client) Availability(ctx context.Context, filter model.AvailabilityFilter) ([]model.TimeSlot, Result) {
	res := c.Call(ctx, actionGetAvailability, map[string]any{
		"rangeTypeId": filter.RangeTypeID,
		"date":        filter.Date,
	})
	return decodeSlots(res)
}

// AllSlots lists every slot, booked or not, for the admin view.
func (c *Client) AllSlots(ctx context.Context, userID string, filter model.AvailabilityFilter) ([]model.TimeSlot, Result) {
	res := c.Call(ctx, actionGetAllSlots, map[string]any{
		"userId":      userID,
		"rangeTypeId": filter.RangeTypeID,
		"date":        filter.Date,
	})
	return decodeSlots(res)
}

// AllBookings lists every active booking for the admin view.
func (c *Client) AllBookings(ctx context.Context, userID string) ([]model.Booking, Result) {
	res := c.Call(ctx, actionGetAllBookings, map[string]any{"userId": userID})
	return decodeBookings(res)
}

// MyBookings lists the caller's own bookings.
func (c *Client) MyBookings(ctx context.Context, userID string) ([]model.Booking, Result) {
	res := c.Call(ctx, actionGetMyBookings, map[string]any{"userId": userID})
	return decodeBookings(res)
}

// Book reserves a slot for a signed-in user.
func (c *Client) Book(ctx context.Context, userID, timeSlotID string) (Confirmation, Result) {
	res := c.Call(ctx, actionBook, map[string]any{
		"userId":     userID,
		"timeSlotId": timeSlotID,
	})
	return decodeConfirmation(res)
}

// BookGuest reserves a slot for an unauthenticated visitor identified only
// by name and email.
func (c *Client) BookGuest(ctx context.Context, req model.GuestBookingRequest) (Confirmation, Result) {
	res := c.Call(ctx, actionBookGuest, map[string]any{
		"name":       req.Name,
		"email":      req.Email,
		"timeSlotId": req.TimeSlotID,
	})
	return decodeConfirmation(res)
}

// Cancel cancels a booking. The backend decides whether userID is allowed to
// cancel bookingID; admins submit their own userID for any booking.
func (c *Client) Cancel(ctx context.Context, userID, bookingID string) Result {
	return c.Call(ctx, actionCancel, map[string]any{
		"userId":    userID,
		"bookingId": bookingID,
	})
}

// AddSlot creates a new slot and returns its ID.
func (c *Client) AddSlot(ctx context.Context, userID string, req model.AddSlotRequest) (string, Result) {
	res := c.Call(ctx, actionAddSlot, map[string]any{
		"userId":      userID,
		"rangeTypeId": req.RangeTypeID,
		"date":        req.Date,
		"startTime":   req.StartTime,
		"endTime":     req.EndTime,
	})
	if !res.Success {
		return "", res
	}
	var out struct {
		TimeSlotID string `json:"timeSlotId"`
	}
	if err := res.Decode(&out); err != nil {
		return "", networkFailure()
	}
	return out.TimeSlotID, res
}

func decodeSlots(res Result) ([]model.TimeSlot, Result) {
	if !res.Success {
		return nil, res
	}
	var out struct {
		Slots []model.TimeSlot `json:"slots"`
	}
	if err := res.Decode(&out); err != nil {
		return nil, networkFailure()
	}
	return out.Slots, res
}

func decodeBookings(res Result) ([]model.Booking, Result) {
	if !res.Success {
		return nil, res
	}
	var out struct {
		Bookings []model.Booking `json:"bookings"`
	}
	if err := res.Decode(&out); err != nil {
		return nil, networkFailure()
	}
	return out.Bookings, res
}

func decodeConfirmation(res Result) (Confirmation, Result) {
	if !res.Success {
		return Confirmation{}, res
	}
	var out Confirmation
	if err := res.Decode(&out); err != nil {
		return Confirmation{}, networkFailure()
	}
	return out, res
}
