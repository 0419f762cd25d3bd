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

type adminPage struct {
	viewmodel.Layout
	Filter   model.AvailabilityFilter
	Slots    []viewmodel.SlotCard
	Summary  viewmodel.SlotSummary
	Bookings []viewmodel.BookingCard
	AddSlot  addSlotForm
}

type addSlotForm struct {
	RangeTypeID string
	Date        string
	StartTime   string
	EndTime     string
}

// AdminPage renders the admin panel: the full slot catalog with a
// booked/open summary, every booking in the system, and the add-slot form.
func (h *UIHandlers) AdminPage(w http.ResponseWriter, r *http.Request) {
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
		slots, err = h.Bookings.AllSlots(ctx, session.UserID, filter)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = h.Bookings.AllBookings(ctx, session.UserID)
		return err
	})

	data := adminPage{
		Layout: h.layout(w, r, pageMeta{
			Title:       "Admin Panel",
			PageTitle:   "Range Administration",
			CurrentPage: PageAdmin,
		}),
		Filter: filter,
	}
	if err := g.Wait(); err != nil {
		h.logger().Error("admin fetch failed", "user_id", session.UserID, "error", err)
		if data.Error == "" {
			data.Error = err.Error()
		}
		h.T.Render(w, PageAdmin, data)
		return
	}

	data.Slots = viewmodel.BuildSlotCards(slots, "")
	data.Summary = viewmodel.SummarizeSlots(slots)
	data.Bookings = viewmodel.BuildBookingCards(bookings, h.now())
	h.T.Render(w, PageAdmin, data)
}

// AdminAddSlot handles the add-slot form post.
func (h *UIHandlers) AdminAddSlot(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		redirectToLogin(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		SetFlash(w, Flash{Error: "Invalid form submission"})
		http.Redirect(w, r, AdminPath, http.StatusSeeOther)
		return
	}

	req := model.AddSlotRequest{
		RangeTypeID: r.FormValue("rangeTypeId"),
		Date:        r.FormValue("date"),
		StartTime:   r.FormValue("startTime"),
		EndTime:     r.FormValue("endTime"),
	}

	slotID, err := h.Bookings.AddSlot(r.Context(), session.UserID, req)
	if err != nil {
		SetFlash(w, Flash{Error: err.Error()})
		http.Redirect(w, r, AdminPath, http.StatusSeeOther)
		return
	}

	h.logger().Info("slot added", "user_id", session.UserID, "time_slot_id", slotID)
	SetFlash(w, Flash{Notice: fmt.Sprintf("Slot added successfully! Slot ID: %s", slotID)})
	http.Redirect(w, r, AdminPath, http.StatusSeeOther)
}

// AdminCancel handles an admin cancelling any booking. No cutoff applies.
func (h *UIHandlers) AdminCancel(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		redirectToLogin(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		SetFlash(w, Flash{Error: "Invalid form submission"})
		http.Redirect(w, r, AdminPath, http.StatusSeeOther)
		return
	}

	bookingID := r.FormValue("bookingId")
	if err := h.Bookings.AdminCancel(r.Context(), session.UserID, bookingID); err != nil {
		SetFlash(w, Flash{Error: err.Error()})
		http.Redirect(w, r, AdminPath, http.StatusSeeOther)
		return
	}

	h.logger().Info("booking cancelled by admin",
		"admin_user_id", session.UserID, "booking_id", bookingID)
	SetFlash(w, Flash{Notice: "Booking cancelled successfully"})
	http.Redirect(w, r, AdminPath, http.StatusSeeOther)
}

// AdminDeleteSlot handles the delete-slot form post. The backend exposes no
// slot deletion yet, so this always reports that.
func (h *UIHandlers) AdminDeleteSlot(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		SetFlash(w, Flash{Error: "Invalid form submission"})
		http.Redirect(w, r, AdminPath, http.StatusSeeOther)
		return
	}

	err := h.Bookings.DeleteSlot(r.Context(), r.FormValue("timeSlotId"))
	switch {
	case err == nil:
		SetFlash(w, Flash{Notice: "Slot deleted successfully"})
	case errors.Is(err, service.ErrNotImplemented):
		SetFlash(w, Flash{Error: "Delete functionality not implemented yet"})
	default:
		SetFlash(w, Flash{Error: err.Error()})
	}
	redirectWithFilter(w, r, AdminPath)
}
