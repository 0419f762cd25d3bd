package httpx

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Auth     AuthServiceInterface
	Bookings BookingsService

	TemplateFS fs.FS // Filesystem containing layout.tmpl, partials/, pages/
	StaticFS   fs.FS // Filesystem containing static assets, rooted at static/

	CookieDomain  string
	SecureCookies bool
	Now           func() time.Time // Optional clock override, defaults to time.Now
	Logger        *slog.Logger
}

// NewRouter creates and configures the HTTP router with browser middleware.
func NewRouter(services RouterServices) (http.Handler, error) {
	if services.Logger == nil {
		services.Logger = slog.Default()
	}
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: services.TemplateFS,
		Logger:     services.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("template renderer: %w", err)
	}

	authHandlers := NewAuthHandlers(renderer, services.Auth, services.Logger, services.SecureCookies)
	uiHandlers := &UIHandlers{
		T:        renderer,
		Bookings: services.Bookings,
		Now:      services.Now,
		Logger:   services.Logger,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)

	if services.StaticFS != nil {
		mux.Handle("GET /static/", http.FileServerFS(services.StaticFS))
	}

	optional := OptionalAuth(services.Auth)
	requireUser := RequireAuth(services.Auth)
	requireAdmin := RequireAdmin(services.Auth)

	// Public pages
	mux.Handle("GET /{$}", optional(http.HandlerFunc(rootRedirect)))
	mux.Handle("GET "+LoginPath, optional(http.HandlerFunc(authHandlers.LoginPage)))
	mux.Handle("POST "+LoginPath, optional(http.HandlerFunc(authHandlers.Login)))
	mux.Handle("POST /logout", optional(http.HandlerFunc(authHandlers.Logout)))
	mux.Handle("GET "+GuestPath, optional(http.HandlerFunc(uiHandlers.GuestPage)))
	mux.Handle("POST "+GuestPath+"/book", optional(http.HandlerFunc(uiHandlers.GuestBook)))

	// Signed-in pages
	mux.Handle("GET "+DashboardPath, requireUser(http.HandlerFunc(uiHandlers.DashboardPage)))
	mux.Handle("POST "+DashboardPath+"/book", requireUser(http.HandlerFunc(uiHandlers.Book)))
	mux.Handle("POST "+DashboardPath+"/cancel", requireUser(http.HandlerFunc(uiHandlers.Cancel)))

	// Admin pages
	mux.Handle("GET "+AdminPath, requireAdmin(http.HandlerFunc(uiHandlers.AdminPage)))
	mux.Handle("POST "+AdminPath+"/slots", requireAdmin(http.HandlerFunc(uiHandlers.AdminAddSlot)))
	mux.Handle("POST "+AdminPath+"/slots/delete", requireAdmin(http.HandlerFunc(uiHandlers.AdminDeleteSlot)))
	mux.Handle("POST "+AdminPath+"/cancel", requireAdmin(http.HandlerFunc(uiHandlers.AdminCancel)))

	csrf := CSRFProtection(CSRFConfig{CookieDomain: services.CookieDomain})

	var handler http.Handler = mux
	handler = csrf(handler)
	handler = Recover(services.Logger)(handler)
	handler = Logging(services.Logger)(handler)
	return handler, nil
}

// rootRedirect sends visitors to their landing page by role, or to the
// guest booking page when nobody is signed in.
func rootRedirect(w http.ResponseWriter, r *http.Request) {
	if session, ok := SessionFromContext(r.Context()); ok {
		http.Redirect(w, r, landingPath(session.IsAdmin()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, GuestPath, http.StatusSeeOther)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write([]byte("ok"))
	}
}
