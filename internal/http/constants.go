package httpx

// Cookie names shared across handlers and middleware.
const (
	// SessionCookieName carries the opaque session ID; the session record
	// itself stays server-side behind the session store port.
	SessionCookieName = "session_id"
	// FlashCookieName carries a one-shot notice across the redirect that
	// follows every mutation.
	FlashCookieName = "flash"
)

// Page identifiers used for navigation state and template selection.
const (
	PageLogin     = "login"
	PageGuest     = "guest"
	PageDashboard = "dashboard"
	PageAdmin     = "admin"
)

// Route paths referenced from multiple handlers.
const (
	LoginPath     = "/login"
	GuestPath     = "/guest"
	DashboardPath = "/dashboard"
	AdminPath     = "/admin"
)
