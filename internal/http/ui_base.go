package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/archerhq/rangebook/internal/backend"
	"github.com/archerhq/rangebook/internal/domain/model"
	"github.com/archerhq/rangebook/internal/http/ui/viewmodel"
)

// BookingsService is the interface the view controllers need from the
// booking service.
type BookingsService interface {
	Availability(ctx context.Context, filter model.AvailabilityFilter) ([]model.TimeSlot, error)
	AllSlots(ctx context.Context, userID string, filter model.AvailabilityFilter) ([]model.TimeSlot, error)
	AllBookings(ctx context.Context, userID string) ([]model.Booking, error)
	MyBookings(ctx context.Context, userID string) ([]model.Booking, error)
	Book(ctx context.Context, userID, timeSlotID string) (backend.Confirmation, error)
	BookGuest(ctx context.Context, req model.GuestBookingRequest) (backend.Confirmation, error)
	CancelOwn(ctx context.Context, userID, bookingID string) error
	AdminCancel(ctx context.Context, adminUserID, bookingID string) error
	AddSlot(ctx context.Context, userID string, req model.AddSlotRequest) (string, error)
	DeleteSlot(ctx context.Context, timeSlotID string) error
}

// UIHandlers provides the server-rendered view controllers: guest booking,
// user dashboard, and admin panel.
type UIHandlers struct {
	T        *TemplateRenderer
	Bookings BookingsService
	Now      func() time.Time // injected clock for cancellation eligibility
	Logger   *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *UIHandlers) now() time.Time {
	if h != nil && h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// pageMeta identifies a page's chrome: document title, header, nav state.
type pageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// layout assembles the shared chrome for a render: session identity, CSRF
// token, and the pending flash message (popped here, so each notice shows
// exactly once).
func (h *UIHandlers) layout(w http.ResponseWriter, r *http.Request, meta pageMeta) viewmodel.Layout {
	l := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		CSRFToken:   CSRFTokenFromContext(r.Context()),
	}

	if session, ok := SessionFromContext(r.Context()); ok {
		l.IsAuthenticated = true
		l.IsAdmin = session.IsAdmin()
		l.User = &viewmodel.User{
			Name:  session.Name,
			Email: session.Email,
			Role:  string(session.Role),
		}
	}

	flash := PopFlash(w, r)
	l.Notice = flash.Notice
	l.Error = flash.Error
	return l
}

// filterFromQuery reads the availability filter from the query string.
// Absent parameters stay empty strings: the backend owns the wildcard
// interpretation, so the values pass through untouched.
func filterFromQuery(r *http.Request) model.AvailabilityFilter {
	q := r.URL.Query()
	return model.AvailabilityFilter{
		RangeTypeID: q.Get("rangeTypeId"),
		Date:        q.Get("date"),
	}
}

// redirectWithFilter redirects back to basePath, carrying the submitting
// form's filter fields so the refreshed view keeps its narrowing.
func redirectWithFilter(w http.ResponseWriter, r *http.Request, basePath string) {
	q := url.Values{}
	if v := r.FormValue("rangeTypeId"); v != "" {
		q.Set("rangeTypeId", v)
	}
	if v := r.FormValue("date"); v != "" {
		q.Set("date", v)
	}
	target := basePath
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
