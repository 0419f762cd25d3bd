// Package viewmodel builds pure view data from backend results. Nothing in
// this package touches net/http or templates, so builders can be exercised
// directly in tests and reused by any rendering surface.
package viewmodel

// User represents the signed-in user context exposed to templates.
type User struct {
	Name  string
	Email string
	Role  string
}

// Layout captures shared chrome metadata (titles, navigation state, auth
// flags) plus the one-shot notice/error surfaced after an action.
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	IsAdmin         bool
	User            *User
	Notice          string
	Error           string
}

// WelcomeText is the header greeting: "Admin: NAME" for admins,
// "Welcome, NAME" for everyone else.
func (l Layout) WelcomeText() string {
	if l.User == nil {
		return ""
	}
	if l.IsAdmin {
		return "Admin: " + l.User.Name
	}
	return "Welcome, " + l.User.Name
}
