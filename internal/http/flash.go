package httpx

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// Flash is a one-shot message carried across the redirect that follows a
// mutation: the confirmation text (booking ID, lane code) or the failure
// message the next page render should surface.
type Flash struct {
	Notice string `json:"notice,omitempty"`
	Error  string `json:"error,omitempty"`
}

// SetFlash stores a flash message in a short-lived cookie. The value is
// base64-encoded JSON so it survives cookie value restrictions.
func SetFlash(w http.ResponseWriter, f Flash) {
	if f == (Flash{}) {
		return
	}
	data, err := json.Marshal(f)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    base64.URLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60,
	})
}

// PopFlash reads and clears the flash cookie. A missing or undecodable
// cookie yields the zero Flash.
func PopFlash(w http.ResponseWriter, r *http.Request) Flash {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil {
		return Flash{}
	}

	// Clear regardless of whether the value decodes.
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	data, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return Flash{}
	}
	var f Flash
	if err := json.Unmarshal(data, &f); err != nil {
		return Flash{}
	}
	return f
}
