package model

import (
	"errors"
	"strings"
)

// TimeSlot is the client-side projection of a bookable time window as
// returned by the booking backend. It is fetched fresh per view render and
// never mutated locally; every mutation is followed by a re-fetch.
type TimeSlot struct {
	TimeSlotID  string `json:"timeSlotId"`
	RangeTypeID string `json:"rangeTypeId"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsBooked    bool   `json:"isBooked,omitempty"`
	Customer    string `json:"customer,omitempty"`
	BookingID   string `json:"bookingId,omitempty"`
	LaneCode    string `json:"laneCode,omitempty"`
}

// AvailabilityFilter narrows an availability query. Empty fields mean
// "no filter" and are passed through to the backend unchanged; the backend
// interprets the wildcard.
type AvailabilityFilter struct {
	RangeTypeID string
	Date        string
}

// AddSlotRequest carries the fields for creating a new time slot.
type AddSlotRequest struct {
	RangeTypeID string
	Date        string
	StartTime   string
	EndTime     string
}

// ErrMissingSlotFields is returned when a required add-slot field is absent.
var ErrMissingSlotFields = errors.New("range type, date, start time and end time are required")

// Validate checks required fields for presence only. Time ordering and
// overlap checks belong to the backend, which owns the slot sheet.
func (r AddSlotRequest) Validate() error {
	if strings.TrimSpace(r.RangeTypeID) == "" ||
		strings.TrimSpace(r.Date) == "" ||
		strings.TrimSpace(r.StartTime) == "" ||
		strings.TrimSpace(r.EndTime) == "" {
		return ErrMissingSlotFields
	}
	return nil
}

// GuestBookingRequest carries the fields for an unauthenticated booking.
type GuestBookingRequest struct {
	Name       string
	Email      string
	TimeSlotID string
}

// ErrIncompleteGuestBooking is returned when a guest booking is missing the
// name, email, or a selected slot. The check runs before any network call.
var ErrIncompleteGuestBooking = errors.New("please fill in all fields and select a time slot")

// Validate checks the guest booking for completeness.
func (r GuestBookingRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" ||
		strings.TrimSpace(r.Email) == "" ||
		strings.TrimSpace(r.TimeSlotID) == "" {
		return ErrIncompleteGuestBooking
	}
	return nil
}
