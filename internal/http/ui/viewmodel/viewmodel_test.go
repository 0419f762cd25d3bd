package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archerhq/rangebook/internal/domain/model"
)

func TestBuildSlotCards(t *testing.T) {
	slots := []model.TimeSlot{
		{TimeSlotID: "t1", RangeTypeID: "indoor-18m", Date: "2026-03-20", StartTime: "10:00", EndTime: "11:00"},
		{TimeSlotID: "t2", RangeTypeID: "outdoor-50m", Date: "2026-03-21", StartTime: "09:00", EndTime: "10:30", IsBooked: true, Customer: "Robin"},
	}

	cards := BuildSlotCards(slots, "t2")
	require.Len(t, cards, 2)

	assert.Equal(t, "Mar 20, 2026", cards[0].DateText)
	assert.Equal(t, "10:00 - 11:00", cards[0].TimeText)
	assert.False(t, cards[0].Selected)
	assert.Equal(t, "2026-03-20", cards[0].RawDate)

	assert.True(t, cards[1].Selected)
	assert.True(t, cards[1].IsBooked)
	assert.Equal(t, "Robin", cards[1].Customer)
}

func TestBuildSlotCards_NoSelection(t *testing.T) {
	cards := BuildSlotCards([]model.TimeSlot{{TimeSlotID: "t1"}}, "")
	require.Len(t, cards, 1)
	assert.False(t, cards[0].Selected)
}

func TestSummarizeSlots(t *testing.T) {
	sum := SummarizeSlots([]model.TimeSlot{
		{TimeSlotID: "t1", IsBooked: true},
		{TimeSlotID: "t2"},
		{TimeSlotID: "t3"},
	})
	assert.Equal(t, SlotSummary{Total: 3, Booked: 1, Available: 2}, sum)

	assert.Equal(t, SlotSummary{}, SummarizeSlots(nil))
}

func TestBuildBookingCards_CancelEligibility(t *testing.T) {
	now := time.Date(2026, 3, 14, 8, 0, 0, 0, time.Local)
	farOut := now.Add(48 * time.Hour)
	tooClose := now.Add(3 * time.Hour)

	cards := BuildBookingCards([]model.Booking{
		{
			BookingID: "b1",
			Date:      farOut.Format("2006-01-02"),
			StartTime: farOut.Format("15:04"),
			LaneCode:  "L-7741",
		},
		{
			BookingID: "b2",
			Date:      tooClose.Format("2006-01-02"),
			StartTime: tooClose.Format("15:04"),
		},
	}, now)
	require.Len(t, cards, 2)

	assert.True(t, cards[0].CanCancel)
	assert.Empty(t, cards[0].CancelWarning())
	assert.Equal(t, "L-7741", cards[0].LaneCode)

	assert.False(t, cards[1].CanCancel)
	assert.Equal(t, CancelWarningText, cards[1].CancelWarning())
	assert.Equal(t, "N/A", cards[1].LaneCode, "missing lane code renders as N/A")
}

func TestLayoutWelcomeText(t *testing.T) {
	assert.Empty(t, Layout{}.WelcomeText())
	assert.Equal(t, "Welcome, Robin",
		Layout{User: &User{Name: "Robin"}}.WelcomeText())
	assert.Equal(t, "Admin: Sam",
		Layout{IsAdmin: true, User: &User{Name: "Sam"}}.WelcomeText())
}

func TestSelectedSlot(t *testing.T) {
	assert.False(t, SelectedSlot{}.IsSet())

	sel := SelectedSlot{
		TimeSlotID: "t1",
		RangeType:  "indoor-18m",
		Date:       "2026-03-20",
		StartTime:  "10:00",
		EndTime:    "11:00",
	}
	assert.True(t, sel.IsSet())
	assert.Equal(t, "Mar 20, 2026", sel.DateText())
	assert.Equal(t, "10:00 - 11:00", sel.TimeText())
}
