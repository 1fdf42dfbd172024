// Package authentication is the gate in front of the handlers: it
// resolves the current user from the session cookie (or a bearer token)
// and wraps routes that require a signed-in caller.
package authentication

import (
	"context"
	"net/http"

	"storybooks-backend/config"
	"storybooks-backend/models/users"
)

// Identity is the authenticated caller as seen by the handlers.
type Identity struct {
	ID    uint
	Name  string
	Email string
}

type ctxKey int

const identityKey ctxKey = 1

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// CurrentUser resolves the caller from the session cookie, falling back
// to an Authorization bearer token for non-browser clients.
func CurrentUser(r *http.Request) (Identity, bool) {
	if session, err := config.Store.Get(r, config.SessionName); err == nil {
		if id, ok := session.Values["userID"].(uint); ok && id != 0 {
			name, _ := session.Values["name"].(string)
			email, _ := session.Values["email"].(string)
			return Identity{ID: id, Name: name, Email: email}, true
		}
	}
	if claims, err := ValidateToken(r); err == nil {
		return Identity{ID: claims.UserID, Name: claims.Name, Email: claims.Email}, true
	}
	return Identity{}, false
}

// SignIn stores the user in the session cookie.
func SignIn(w http.ResponseWriter, r *http.Request, user *users.User) error {
	session, _ := config.Store.Get(r, config.SessionName)
	session.Values["userID"] = user.ID
	session.Values["name"] = user.Name
	session.Values["email"] = user.Email
	return session.Save(r, w)
}

func SignOut(w http.ResponseWriter, r *http.Request) {
	session, _ := config.Store.Get(r, config.SessionName)
	session.Options.MaxAge = -1
	session.Save(r, w)
}

// EnsureAuthenticated redirects guests to the login page and puts the
// caller's identity on the request context for the wrapped handler.
func EnsureAuthenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := CurrentUser(r)
		if !ok {
			http.Redirect(w, r, "/users/login", http.StatusFound)
			return
		}
		next(w, r.WithContext(WithIdentity(r.Context(), identity)))
	}
}

// EnsureGuest sends signed-in users to their dashboard; login and
// register pages are guest-only.
func EnsureGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		next(w, r)
	}
}
