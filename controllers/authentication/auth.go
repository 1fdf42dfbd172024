package authentication

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"storybooks-backend/models/users"
	"storybooks-backend/views"
)

type Handler struct {
	Users users.Repository
	Views *views.Renderer
}

func NewHandler(repo users.Repository, v *views.Renderer) *Handler {
	return &Handler{Users: repo, Views: v}
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.Views.Render(w, http.StatusOK, "login", views.AuthPage{})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	user, err := h.Users.FindByEmail(r.Context(), email, "local")
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			h.Views.Render(w, http.StatusUnauthorized, "login", views.AuthPage{
				Error: "Invalid email or password",
				Email: email,
			})
			return
		}
		h.Views.ServerError(w, nil, err)
		return
	}
	if !user.CheckPassword(password) {
		h.Views.Render(w, http.StatusUnauthorized, "login", views.AuthPage{
			Error: "Invalid email or password",
			Email: email,
		})
		return
	}

	if err := SignIn(w, r, user); err != nil {
		h.Views.ServerError(w, nil, err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.Views.Render(w, http.StatusOK, "register", views.AuthPage{})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	if name == "" || email == "" || password == "" {
		h.Views.Render(w, http.StatusBadRequest, "register", views.AuthPage{
			Error: "Name, email and password are required",
			Name:  name,
			Email: email,
		})
		return
	}

	if _, err := h.Users.FindByEmail(r.Context(), email, "local"); err == nil {
		h.Views.Render(w, http.StatusConflict, "register", views.AuthPage{
			Error: "Email already registered",
			Name:  name,
			Email: email,
		})
		return
	} else if !errors.Is(err, users.ErrNotFound) {
		h.Views.ServerError(w, nil, err)
		return
	}

	user := &users.User{Name: name, Email: email, Provider: "local"}
	if err := user.SetPassword(password); err != nil {
		h.Views.ServerError(w, nil, err)
		return
	}
	if err := h.Users.Create(r.Context(), user); err != nil {
		h.Views.ServerError(w, nil, err)
		return
	}
	log.Printf("registered user %d (%s)", user.ID, user.Email)

	if err := SignIn(w, r, user); err != nil {
		h.Views.ServerError(w, nil, err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	SignOut(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}

// APILogin exchanges email/password credentials for a bearer token.
func (h *Handler) APILogin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	user, err := h.Users.FindByEmail(r.Context(), input.Email, "local")
	if err != nil || !user.CheckPassword(input.Password) {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	tokenString, err := GenerateToken(user)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": tokenString})
}
