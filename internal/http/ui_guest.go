package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/archerhq/rangebook/internal/domain/model"
	"github.com/archerhq/rangebook/internal/http/ui/viewmodel"
)

type guestPage struct {
	viewmodel.Layout
	Filter   model.AvailabilityFilter
	Slots    []viewmodel.SlotCard
	Selected viewmodel.SelectedSlot
	Form     guestForm
}

type guestForm struct {
	Name  string
	Email string
}

// GuestPage renders the public booking page: available slots under the
// current filter, and the contact form once a slot is selected.
func (h *UIHandlers) GuestPage(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	slots, err := h.Bookings.Availability(r.Context(), filter)

	data := guestPage{
		Layout: h.layout(w, r, pageMeta{
			Title:       "Book a Lane",
			PageTitle:   "Archery Range Booking",
			CurrentPage: PageGuest,
		}),
		Filter: filter,
	}
	if err != nil {
		h.logger().Error("guest availability fetch failed", "error", err)
		if data.Error == "" {
			data.Error = err.Error()
		}
		h.T.Render(w, PageGuest, data)
		return
	}

	q := r.URL.Query()
	data.Form = guestForm{Name: q.Get("name"), Email: q.Get("email")}
	selectedID := q.Get("selected")
	data.Slots = viewmodel.BuildSlotCards(slots, selectedID)
	for _, slot := range slots {
		if selectedID != "" && slot.TimeSlotID == selectedID && !slot.IsBooked {
			data.Selected = viewmodel.SelectedSlot{
				TimeSlotID: slot.TimeSlotID,
				RangeType:  slot.RangeTypeID,
				Date:       slot.Date,
				StartTime:  slot.StartTime,
				EndTime:    slot.EndTime,
			}
			break
		}
	}
	h.T.Render(w, PageGuest, data)
}

// GuestBook handles the guest booking form post. Contact details are
// validated before anything goes over the wire.
func (h *UIHandlers) GuestBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		SetFlash(w, Flash{Error: "Invalid form submission"})
		http.Redirect(w, r, GuestPath, http.StatusSeeOther)
		return
	}

	req := model.GuestBookingRequest{
		TimeSlotID: r.FormValue("timeSlotId"),
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
	}

	conf, err := h.Bookings.BookGuest(r.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrIncompleteGuestBooking) {
			SetFlash(w, Flash{Error: "Please select a time slot and fill in all fields"})
		} else {
			SetFlash(w, Flash{Error: err.Error()})
		}
		h.redirectGuestSelected(w, r, req.TimeSlotID)
		return
	}

	h.logger().Info("guest booking confirmed",
		"booking_id", conf.BookingID, "time_slot_id", req.TimeSlotID)
	SetFlash(w, Flash{Notice: fmt.Sprintf(
		"Booking confirmed! Booking ID: %s. Your lane code is %s.",
		conf.BookingID, conf.LaneCode)})
	http.Redirect(w, r, GuestPath, http.StatusSeeOther)
}

// redirectGuestSelected sends the guest back to the booking page with their
// slot selection, filter, and entered contact details preserved, so a failed
// submit keeps the form open and populated.
func (h *UIHandlers) redirectGuestSelected(w http.ResponseWriter, r *http.Request, selectedID string) {
	q := url.Values{}
	for _, field := range []string{"rangeTypeId", "date", "name", "email"} {
		if v := r.FormValue(field); v != "" {
			q.Set(field, v)
		}
	}
	if selectedID != "" {
		q.Set("selected", selectedID)
	}
	target := GuestPath
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
