package viewmodel

import (
	"time"

	"github.com/archerhq/rangebook/internal/domain/model"
	"github.com/archerhq/rangebook/internal/util"
)

// CancelWarningText explains a withheld cancel control.
const CancelWarningText = "Cannot cancel within 12 hours of start time"

// BookingCard is the display projection of one booking. CanCancel decides
// whether the cancel control is offered at all; an ineligible booking renders
// a disabled control with the warning instead.
type BookingCard struct {
	BookingID  string
	RangeType  string
	DateText   string
	TimeText   string
	LaneCode   string
	BookedText string
	Status     string
	UserName   string
	UserEmail  string
	CanCancel  bool
}

// CancelWarning returns the warning text for bookings inside the cutoff.
func (b BookingCard) CancelWarning() string {
	if b.CanCancel {
		return ""
	}
	return CancelWarningText
}

// BuildBookingCards projects bookings into display cards, computing
// cancellation eligibility against the given instant.
func BuildBookingCards(bookings []model.Booking, now time.Time) []BookingCard {
	cards := make([]BookingCard, 0, len(bookings))
	for _, b := range bookings {
		laneCode := b.LaneCode
		if laneCode == "" {
			laneCode = "N/A"
		}
		cards = append(cards, BookingCard{
			BookingID:  b.BookingID,
			RangeType:  b.RangeTypeID,
			DateText:   util.FormatDate(b.Date),
			TimeText:   util.FormatTime(b.StartTime) + " - " + util.FormatTime(b.EndTime),
			LaneCode:   laneCode,
			BookedText: util.FormatDate(b.BookingTime),
			Status:     b.Status,
			UserName:   b.UserName,
			UserEmail:  b.UserEmail,
			CanCancel:  model.CanCancel(b, now),
		})
	}
	return cards
}
