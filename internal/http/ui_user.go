package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/archerhq/rangebook/internal/domain/model"
	"github.com/archerhq/rangebook/internal/http/ui/viewmodel"
	"github.com/archerhq/rangebook/internal/service"
)

type dashboardPage struct {
	viewmodel.Layout
	Filter   model.AvailabilityFilter
	Slots    []viewmodel.SlotCard
	Bookings []viewmodel.BookingCard
}

// DashboardPage renders the signed-in user's view: bookable slots plus the
// user's own bookings. The two fetches are independent, so they run
// concurrently.
func (h *UIHandlers) DashboardPage(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		redirectToLogin(w, r)
		return
	}

	filter := filterFromQuery(r)
	var (
		slots    []model.TimeSlot
		bookings []model.Booking
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		slots, err = h.Bookings.Availability(ctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = h.Bookings.MyBookings(ctx, session.UserID)
		return err
	})

	data := dashboardPage{
		Layout: h.layout(w, r, pageMeta{
			Title:       "My Dashboard",
			PageTitle:   "My Dashboard",
			CurrentPage: PageDashboard,
		}),
		Filter: filter,
	}
	if err := g.Wait(); err != nil {
		h.logger().Error("dashboard fetch failed", "user_id", session.UserID, "error", err)
		if data.Error == "" {
			data.Error = err.Error()
		}
		h.T.Render(w, PageDashboard, data)
		return
	}

	data.Slots = viewmodel.BuildSlotCards(slots, "")
	data.Bookings = viewmodel.BuildBookingCards(bookings, h.now())
	h.T.Render(w, PageDashboard, data)
}

// Book handles the signed-in booking form post.
func (h *UIHandlers) Book(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		redirectToLogin(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		SetFlash(w, Flash{Error: "Invalid form submission"})
		http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
		return
	}

	timeSlotID := r.FormValue("timeSlotId")
	if timeSlotID == "" {
		SetFlash(w, Flash{Error: "Please select a time slot"})
		redirectWithFilter(w, r, DashboardPath)
		return
	}

	conf, err := h.Bookings.Book(r.Context(), session.UserID, timeSlotID)
	if err != nil {
		SetFlash(w, Flash{Error: err.Error()})
		redirectWithFilter(w, r, DashboardPath)
		return
	}

	h.logger().Info("booking confirmed",
		"user_id", session.UserID, "booking_id", conf.BookingID, "time_slot_id", timeSlotID)
	SetFlash(w, Flash{Notice: fmt.Sprintf(
		"Booking confirmed! Booking ID: %s. Your lane code is %s.",
		conf.BookingID, conf.LaneCode)})
	redirectWithFilter(w, r, DashboardPath)
}

// Cancel handles the signed-in cancellation form post. Eligibility is
// enforced server-side even though ineligible bookings never show the
// cancel control.
func (h *UIHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		redirectToLogin(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		SetFlash(w, Flash{Error: "Invalid form submission"})
		http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
		return
	}

	bookingID := r.FormValue("bookingId")
	err := h.Bookings.CancelOwn(r.Context(), session.UserID, bookingID)
	switch {
	case err == nil:
		h.logger().Info("booking cancelled", "user_id", session.UserID, "booking_id", bookingID)
		SetFlash(w, Flash{Notice: "Booking cancelled successfully"})
	case errors.Is(err, service.ErrCancelWindowClosed):
		SetFlash(w, Flash{Error: viewmodel.CancelWarningText})
	case errors.Is(err, service.ErrBookingNotFound):
		SetFlash(w, Flash{Error: "Booking not found"})
	default:
		SetFlash(w, Flash{Error: err.Error()})
	}
	http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
}
