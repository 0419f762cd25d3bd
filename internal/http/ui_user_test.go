package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archerhq/rangebook/internal/backend"
	"github.com/archerhq/rangebook/internal/domain/model"
	"github.com/archerhq/rangebook/internal/service"
)

func postFormWithSession(handler http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withSession(req, testUserSession())
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestDashboardPage_RendersSlotsAndBookings(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	bookings := &mockBookingsService{
		availabilityFunc: func(ctx context.Context, filter model.AvailabilityFilter) ([]model.TimeSlot, error) {
			return []model.TimeSlot{
				{TimeSlotID: "ts-1", Date: "2026-09-02", StartTime: "09:00", EndTime: "10:00"},
			}, nil
		},
		myBookingsFunc: func(ctx context.Context, userID string) ([]model.Booking, error) {
			assert.Equal(t, "user-1", userID)
			return []model.Booking{
				// Starts in over 12h, eligible to cancel.
				{BookingID: "bk-1", Date: "2026-09-02", StartTime: "09:00", EndTime: "10:00"},
				// Starts in 2h, not eligible.
				{BookingID: "bk-2", Date: "2026-09-01", StartTime: "10:00", EndTime: "11:00"},
			}, nil
		},
	}
	h := newTestUIHandlers(t, bookings)
	h.Now = func() time.Time { return now }

	req := withSession(httptest.NewRequest(http.MethodGet, DashboardPath, nil), testUserSession())
	rec := httptest.NewRecorder()
	h.DashboardPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Sep 2, 2026")
	assert.Contains(t, body, `bk-1<button>Cancel</button>`)
	assert.Contains(t, body, "bk-2</div>", "cancel withheld inside the cutoff")
}

func TestDashboardPage_FetchFailureShowsMessage(t *testing.T) {
	bookings := &mockBookingsService{
		myBookingsFunc: func(ctx context.Context, userID string) ([]model.Booking, error) {
			return nil, errors.New("Network error")
		},
	}
	h := newTestUIHandlers(t, bookings)

	req := withSession(httptest.NewRequest(http.MethodGet, DashboardPath, nil), testUserSession())
	rec := httptest.NewRecorder()
	h.DashboardPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Network error")
}

func TestBook_Success(t *testing.T) {
	bookings := &mockBookingsService{
		bookFunc: func(ctx context.Context, userID, timeSlotID string) (backend.Confirmation, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "ts-1", timeSlotID)
			return backend.Confirmation{BookingID: "bk-9", LaneCode: "3141"}, nil
		},
	}
	h := newTestUIHandlers(t, bookings)

	rec := postFormWithSession(h.Book, DashboardPath+"/book", url.Values{
		"timeSlotId": {"ts-1"},
		"date":       {"2026-09-02"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, DashboardPath, loc.Path)
	assert.Equal(t, "2026-09-02", loc.Query().Get("date"), "filter survives the refresh")

	flash := decodeFlash(t, rec.Result())
	assert.Contains(t, flash.Notice, "bk-9")
	assert.Contains(t, flash.Notice, "3141")
}

func TestBook_MissingSlot(t *testing.T) {
	h := newTestUIHandlers(t, &mockBookingsService{})

	rec := postFormWithSession(h.Book, DashboardPath+"/book", url.Values{})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	flash := decodeFlash(t, rec.Result())
	assert.Equal(t, "Please select a time slot", flash.Error)
}

func TestCancel_Success(t *testing.T) {
	var cancelled string
	bookings := &mockBookingsService{
		cancelOwnFunc: func(ctx context.Context, userID, bookingID string) error {
			cancelled = bookingID
			return nil
		},
	}
	h := newTestUIHandlers(t, bookings)

	rec := postFormWithSession(h.Cancel, DashboardPath+"/cancel", url.Values{
		"bookingId": {"bk-1"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "bk-1", cancelled)
	flash := decodeFlash(t, rec.Result())
	assert.Equal(t, "Booking cancelled successfully", flash.Notice)
}

func TestCancel_WindowClosed(t *testing.T) {
	bookings := &mockBookingsService{
		cancelOwnFunc: func(ctx context.Context, userID, bookingID string) error {
			return service.ErrCancelWindowClosed
		},
	}
	h := newTestUIHandlers(t, bookings)

	rec := postFormWithSession(h.Cancel, DashboardPath+"/cancel", url.Values{
		"bookingId": {"bk-1"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	flash := decodeFlash(t, rec.Result())
	assert.Equal(t, "Cannot cancel within 12 hours of start time", flash.Error)
}

func TestCancel_NotFound(t *testing.T) {
	bookings := &mockBookingsService{
		cancelOwnFunc: func(ctx context.Context, userID, bookingID string) error {
			return service.ErrBookingNotFound
		},
	}
	h := newTestUIHandlers(t, bookings)

	rec := postFormWithSession(h.Cancel, DashboardPath+"/cancel", url.Values{
		"bookingId": {"bk-404"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	flash := decodeFlash(t, rec.Result())
	assert.Equal(t, "Booking not found", flash.Error)
}
