package httpx

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/archerhq/rangebook/internal/http/ui/viewmodel"
	"github.com/archerhq/rangebook/internal/service"
)

// loginLimiter rate-limits login attempts per client IP. Entries idle
// past the eviction window are dropped on the next sweep.
type loginLimiter struct {
	mu      sync.Mutex
	clients map[string]*limiterEntry
	limit   rate.Limit
	burst   int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const limiterIdleEviction = 10 * time.Minute

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{
		clients: make(map[string]*limiterEntry),
		limit:   rate.Every(2 * time.Second),
		burst:   5,
	}
}

// allow reports whether the given client IP may attempt a login now.
func (l *loginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	entry, ok := l.clients[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = entry
	}
	entry.lastSeen = now

	if len(l.clients) > 1000 {
		for key, e := range l.clients {
			if now.Sub(e.lastSeen) > limiterIdleEviction {
				delete(l.clients, key)
			}
		}
	}
	return entry.limiter.Allow()
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// AuthHandlers serves the login page and the login/logout form posts.
type AuthHandlers struct {
	T       *TemplateRenderer
	Auth    AuthServiceInterface
	Logger  *slog.Logger
	limiter *loginLimiter
	// SecureCookies marks session cookies Secure. Set from config when
	// the app is served over TLS (directly or behind a proxy).
	SecureCookies bool
}

func NewAuthHandlers(t *TemplateRenderer, auth AuthServiceInterface, logger *slog.Logger, secureCookies bool) *AuthHandlers {
	return &AuthHandlers{
		T:             t,
		Auth:          auth,
		Logger:        logger,
		limiter:       newLoginLimiter(),
		SecureCookies: secureCookies,
	}
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginPage struct {
	viewmodel.Layout
	Email string
}

// LoginPage renders the sign-in form. An already-signed-in visitor is sent
// to their landing page instead.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if session, ok := SessionFromContext(r.Context()); ok {
		http.Redirect(w, r, landingPath(session.IsAdmin()), http.StatusSeeOther)
		return
	}

	flash := PopFlash(w, r)
	data := loginPage{
		Layout: viewmodel.Layout{
			Title:       "Sign In",
			PageTitle:   "Sign In",
			CurrentPage: PageLogin,
			CSRFToken:   CSRFTokenFromContext(r.Context()),
			Notice:      flash.Notice,
			Error:       flash.Error,
		},
	}
	h.T.Render(w, PageLogin, data)
}

// Login handles the sign-in form post. Credential failures re-render the
// form with the backend's message; anything else shows a generic error.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.allow(clientIP(r)) {
		h.renderLoginError(w, r, "", "Too many login attempts. Please wait a moment and try again.")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "", "Invalid form submission")
		return
	}
	email := r.FormValue("email")
	password := r.FormValue("password")

	session, err := h.Auth.Login(r.Context(), email, password)
	if err != nil {
		var rejected *service.RejectedError
		if errors.As(err, &rejected) {
			h.renderLoginError(w, r, email, rejected.Message)
			return
		}
		h.logger().Error("login failed", "error", err)
		h.renderLoginError(w, r, email, "Login failed. Please try again.")
		return
	}

	h.setSessionCookie(w, session.ID, session.ExpiresAt)
	h.logger().Info("user logged in", "user_id", session.UserID, "role", session.Role)

	if raw := r.FormValue("redirect_uri"); raw != "" {
		if target := safeRedirectPath(raw); target != "/" {
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
	}
	http.Redirect(w, r, landingPath(session.IsAdmin()), http.StatusSeeOther)
}

// Logout deletes the server-side session and clears the cookie.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.Auth.Logout(r.Context(), cookie.Value); err != nil {
			h.logger().Error("logout failed", "error", err)
		}
	}
	h.clearSessionCookie(w)
	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}

func (h *AuthHandlers) renderLoginError(w http.ResponseWriter, r *http.Request, email, message string) {
	data := loginPage{
		Layout: viewmodel.Layout{
			Title:       "Sign In",
			PageTitle:   "Sign In",
			CurrentPage: PageLogin,
			CSRFToken:   CSRFTokenFromContext(r.Context()),
			Error:       message,
		},
		Email: email,
	}
	h.T.Render(w, PageLogin, data)
}

func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, sessionID string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandlers) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// landingPath is where a signed-in visitor belongs by role.
func landingPath(isAdmin bool) string {
	if isAdmin {
		return AdminPath
	}
	return DashboardPath
}
