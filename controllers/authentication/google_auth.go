package authentication

import (
	"errors"
	"log"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"storybooks-backend/models/users"
)

var googleOauthConfig = &oauth2.Config{
	RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
	ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
	ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
	Scopes: []string{
		"https://www.googleapis.com/auth/userinfo.email",
		"https://www.googleapis.com/auth/userinfo.profile",
	},
	Endpoint: google.Endpoint,
}

const oauthState = "google"

// GoogleLogin starts the Google OAuth flow.
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if googleOauthConfig.ClientID == "" || googleOauthConfig.ClientSecret == "" {
		h.Views.ServerError(w, nil, errors.New("google oauth is not configured"))
		return
	}
	url := googleOauthConfig.AuthCodeURL(oauthState)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallback exchanges the OAuth code, reads the Google profile and
// signs the matching user in, creating one on first login.
func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if r.FormValue("state") != oauthState {
		log.Println("invalid oauth state")
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}

	token, err := googleOauthConfig.Exchange(r.Context(), r.FormValue("code"))
	if err != nil {
		log.Printf("oauth code exchange: %v", err)
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}

	service, err := goauth2.NewService(r.Context(),
		option.WithTokenSource(googleOauthConfig.TokenSource(r.Context(), token)))
	if err != nil {
		h.Views.ServerError(w, nil, err)
		return
	}
	info, err := service.Userinfo.Get().Do()
	if err != nil {
		h.Views.ServerError(w, nil, err)
		return
	}
	if info.Email == "" {
		h.Views.ServerError(w, nil, errors.New("google userinfo returned no email"))
		return
	}

	user, err := h.Users.FindByEmail(r.Context(), info.Email, "google")
	if errors.Is(err, users.ErrNotFound) {
		user = &users.User{
			Name:     info.Name,
			Email:    info.Email,
			Provider: "google",
			GoogleID: info.Id,
		}
		if err := h.Users.Create(r.Context(), user); err != nil {
			h.Views.ServerError(w, nil, err)
			return
		}
		log.Printf("created user %d from google account %s", user.ID, info.Email)
	} else if err != nil {
		h.Views.ServerError(w, nil, err)
		return
	}

	if err := SignIn(w, r, user); err != nil {
		h.Views.ServerError(w, nil, err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}
