package controllers

import (
	"net/http"

	"storybooks-backend/controllers/authentication"
	"storybooks-backend/models/story"
	"storybooks-backend/views"
)

// Dashboard is the signed-in landing page: the caller's stories with
// edit and delete actions.
type Dashboard struct {
	Stories story.Repository
	Views   *views.Renderer
}

func (h *Dashboard) Show(w http.ResponseWriter, r *http.Request) {
	identity, _ := authentication.IdentityFrom(r.Context())
	list, err := h.Stories.ListByOwner(r.Context(), identity.ID)
	if err != nil {
		h.Views.ServerError(w, &views.Viewer{ID: identity.ID, Name: identity.Name}, err)
		return
	}
	h.Views.Render(w, http.StatusOK, "dashboard", views.DashboardPage{
		Viewer:  &views.Viewer{ID: identity.ID, Name: identity.Name},
		Stories: list,
	})
}
