package viewmodel

import (
	"github.com/archerhq/rangebook/internal/domain/model"
	"github.com/archerhq/rangebook/internal/util"
)

// SlotCard is the display projection of one time slot.
type SlotCard struct {
	TimeSlotID string
	RangeType  string
	DateText   string
	TimeText   string
	IsBooked   bool
	Customer   string
	BookingID  string
	LaneCode   string
	Selected   bool

	// Raw fields round-trip through the guest confirm form so the selected
	// slot snapshot survives without re-fetching.
	RawDate      string
	RawStartTime string
	RawEndTime   string
}

// BuildSlotCards projects backend slots into display cards. selectedID marks
// the guest flow's selected slot; pass an empty string when selection does
// not apply.
func BuildSlotCards(slots []model.TimeSlot, selectedID string) []SlotCard {
	cards := make([]SlotCard, 0, len(slots))
	for _, s := range slots {
		cards = append(cards, SlotCard{
			TimeSlotID:   s.TimeSlotID,
			RangeType:    s.RangeTypeID,
			DateText:     util.FormatDate(s.Date),
			TimeText:     util.FormatTime(s.StartTime) + " - " + util.FormatTime(s.EndTime),
			IsBooked:     s.IsBooked,
			Customer:     s.Customer,
			BookingID:    s.BookingID,
			LaneCode:     s.LaneCode,
			Selected:     selectedID != "" && s.TimeSlotID == selectedID,
			RawDate:      s.Date,
			RawStartTime: s.StartTime,
			RawEndTime:   s.EndTime,
		})
	}
	return cards
}

// SlotSummary counts booked versus available slots for the admin header.
type SlotSummary struct {
	Total     int
	Booked    int
	Available int
}

// SummarizeSlots tallies the booked/available split of the given slots.
func SummarizeSlots(slots []model.TimeSlot) SlotSummary {
	sum := SlotSummary{Total: len(slots)}
	for _, s := range slots {
		if s.IsBooked {
			sum.Booked++
		} else {
			sum.Available++
		}
	}
	return sum
}

// SelectedSlot is the guest flow's in-memory snapshot between "select" and
// "confirm booking". It is rebuilt from form fields on every request, so a
// browser refresh keeps the selection without any server-side state.
type SelectedSlot struct {
	TimeSlotID string
	RangeType  string
	Date       string
	StartTime  string
	EndTime    string
}

// IsSet reports whether a slot has been selected.
func (s SelectedSlot) IsSet() bool { return s.TimeSlotID != "" }

// DateText renders the selection's date for display.
func (s SelectedSlot) DateText() string { return util.FormatDate(s.Date) }

// TimeText renders the selection's time window for display.
func (s SelectedSlot) TimeText() string {
	return util.FormatTime(s.StartTime) + " - " + util.FormatTime(s.EndTime)
}
