package api

import (
	"net/http"

	"github.com/google/uuid"
)

// sessionCookie scopes a cart to one browser, the way the original
// storefront scoped its cart to one localStorage profile.
const sessionCookie = "secureshop_session"

// sessionKey returns the cart key for this request, minting a new session
// cookie on first contact.
func sessionKey(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
