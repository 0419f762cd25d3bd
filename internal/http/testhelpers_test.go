package httpx

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/archerhq/rangebook/internal/backend"
	domainauth "github.com/archerhq/rangebook/internal/domain/auth"
	"github.com/archerhq/rangebook/internal/domain/model"
	"github.com/archerhq/rangebook/internal/service"
)

// testTemplateFS is a minimal template tree exercising the same layout,
// partial, and page structure the real frontend uses.
var testTemplateFS = fstest.MapFS{
	"layout.tmpl": &fstest.MapFile{Data: []byte(
		`{{define "layout"}}<html><body>{{template "nav" .}}` +
			`{{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}` +
			`{{if .Error}}<p class="flash-error">{{.Error}}</p>{{end}}` +
			`{{template "content" .}}</body></html>{{end}}`)},
	"partials/nav.tmpl": &fstest.MapFile{Data: []byte(
		`{{define "nav"}}<nav data-page="{{.CurrentPage}}"></nav>{{end}}`)},
	"pages/login.tmpl": &fstest.MapFile{Data: []byte(
		`{{define "content"}}<form id="login"><input name="email" value="{{.Email}}"></form>{{end}}`)},
	"pages/guest.tmpl": &fstest.MapFile{Data: []byte(
		`{{define "content"}}{{range .Slots}}<div class="slot">{{.TimeText}}</div>{{end}}` +
			`{{if .Selected.IsSet}}<form id="guest-book" data-slot="{{.Selected.TimeSlotID}}">` +
			`<input name="name" value="{{.Form.Name}}"><input name="email" value="{{.Form.Email}}">` +
			`</form>{{end}}{{end}}`)},
	"pages/dashboard.tmpl": &fstest.MapFile{Data: []byte(
		`{{define "content"}}{{range .Slots}}<div class="slot">{{.DateText}}</div>{{end}}` +
			`{{range .Bookings}}<div class="booking">{{.BookingID}}{{if .CanCancel}}<button>Cancel</button>{{end}}</div>{{end}}{{end}}`)},
	"pages/admin.tmpl": &fstest.MapFile{Data: []byte(
		`{{define "content"}}<span id="summary">{{.Summary.Booked}}/{{.Summary.Total}}</span>` +
			`{{range .Bookings}}<div class="booking">{{.BookingID}}</div>{{end}}{{end}}`)},
}

func newTestRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: testTemplateFS,
		Logger:     slog.Default(),
	})
	require.NoError(t, err)
	return renderer
}

// decodeFlash extracts the flash message set on a response, if any.
func decodeFlash(t *testing.T, resp *http.Response) Flash {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name != FlashCookieName || cookie.Value == "" {
			continue
		}
		data, err := base64.URLEncoding.DecodeString(cookie.Value)
		require.NoError(t, err)
		var f Flash
		require.NoError(t, json.Unmarshal(data, &f))
		return f
	}
	return Flash{}
}

// flashCookie builds a request cookie carrying the given flash.
func flashCookie(t *testing.T, f Flash) *http.Cookie {
	t.Helper()
	data, err := json.Marshal(f)
	require.NoError(t, err)
	return &http.Cookie{Name: FlashCookieName, Value: base64.URLEncoding.EncodeToString(data)}
}

func testUserSession() *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-user",
		UserID:    "user-1",
		Name:      "Robin Archer",
		Email:     "robin@example.com",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func testAdminSession() *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-admin",
		UserID:    "admin-1",
		Name:      "Sam Warden",
		Email:     "sam@example.com",
		Role:      domainauth.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// withSession attaches a session to the request context, standing in for the
// auth middleware.
func withSession(r *http.Request, session *domainauth.Session) *http.Request {
	return r.WithContext(SetSessionInContext(r.Context(), session))
}

// mockAuthService is a test double for the auth service.
type mockAuthService struct {
	loginFunc      func(ctx context.Context, email, password string) (domainauth.Session, error)
	getSessionFunc func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	logoutFunc     func(ctx context.Context, sessionID string) error

	loggedOut []string
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (domainauth.Session, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return *testUserSession(), nil
}

func (m *mockAuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if m.getSessionFunc != nil {
		return m.getSessionFunc(ctx, sessionID)
	}
	return nil, errors.New("session not found")
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	m.loggedOut = append(m.loggedOut, sessionID)
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, sessionID)
	}
	return nil
}

// mockBookingsService is a test double for the booking service.
type mockBookingsService struct {
	availabilityFunc func(ctx context.Context, filter model.AvailabilityFilter) ([]model.TimeSlot, error)
	allSlotsFunc     func(ctx context.Context, userID string, filter model.AvailabilityFilter) ([]model.TimeSlot, error)
	allBookingsFunc  func(ctx context.Context, userID string) ([]model.Booking, error)
	myBookingsFunc   func(ctx context.Context, userID string) ([]model.Booking, error)
	bookFunc         func(ctx context.Context, userID, timeSlotID string) (backend.Confirmation, error)
	bookGuestFunc    func(ctx context.Context, req model.GuestBookingRequest) (backend.Confirmation, error)
	cancelOwnFunc    func(ctx context.Context, userID, bookingID string) error
	adminCancelFunc  func(ctx context.Context, adminUserID, bookingID string) error
	addSlotFunc      func(ctx context.Context, userID string, req model.AddSlotRequest) (string, error)
	deleteSlotFunc   func(ctx context.Context, timeSlotID string) error

	deleteSlotCalls []string
}

func (m *mockBookingsService) Availability(ctx context.Context, filter model.AvailabilityFilter) ([]model.TimeSlot, error) {
	if m.availabilityFunc != nil {
		return m.availabilityFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockBookingsService) AllSlots(ctx context.Context, userID string, filter model.AvailabilityFilter) ([]model.TimeSlot, error) {
	if m.allSlotsFunc != nil {
		return m.allSlotsFunc(ctx, userID, filter)
	}
	return nil, nil
}

func (m *mockBookingsService) AllBookings(ctx context.Context, userID string) ([]model.Booking, error) {
	if m.allBookingsFunc != nil {
		return m.allBookingsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockBookingsService) MyBookings(ctx context.Context, userID string) ([]model.Booking, error) {
	if m.myBookingsFunc != nil {
		return m.myBookingsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockBookingsService) Book(ctx context.Context, userID, timeSlotID string) (backend.Confirmation, error) {
	if m.bookFunc != nil {
		return m.bookFunc(ctx, userID, timeSlotID)
	}
	return backend.Confirmation{}, nil
}

func (m *mockBookingsService) BookGuest(ctx context.Context, req model.GuestBookingRequest) (backend.Confirmation, error) {
	if m.bookGuestFunc != nil {
		return m.bookGuestFunc(ctx, req)
	}
	return backend.Confirmation{}, nil
}

func (m *mockBookingsService) CancelOwn(ctx context.Context, userID, bookingID string) error {
	if m.cancelOwnFunc != nil {
		return m.cancelOwnFunc(ctx, userID, bookingID)
	}
	return nil
}

func (m *mockBookingsService) AdminCancel(ctx context.Context, adminUserID, bookingID string) error {
	if m.adminCancelFunc != nil {
		return m.adminCancelFunc(ctx, adminUserID, bookingID)
	}
	return nil
}

func (m *mockBookingsService) AddSlot(ctx context.Context, userID string, req model.AddSlotRequest) (string, error) {
	if m.addSlotFunc != nil {
		return m.addSlotFunc(ctx, userID, req)
	}
	return "", nil
}

func (m *mockBookingsService) DeleteSlot(ctx context.Context, timeSlotID string) error {
	m.deleteSlotCalls = append(m.deleteSlotCalls, timeSlotID)
	if m.deleteSlotFunc != nil {
		return m.deleteSlotFunc(ctx, timeSlotID)
	}
	return service.ErrNotImplemented
}
