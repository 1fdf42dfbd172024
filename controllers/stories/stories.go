// Package stories holds the route handlers for the stories resource.
package stories

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"storybooks-backend/controllers/authentication"
	"storybooks-backend/models/story"
	"storybooks-backend/views"
)

type Handler struct {
	Stories story.Repository
	Views   *views.Renderer
}

func NewHandler(repo story.Repository, v *views.Renderer) *Handler {
	return &Handler{Stories: repo, Views: v}
}

// viewer resolves the optional caller: context identity on gated
// routes, session/token lookup on open ones.
func viewer(r *http.Request) (authentication.Identity, bool) {
	if identity, ok := authentication.IdentityFrom(r.Context()); ok {
		return identity, true
	}
	return authentication.CurrentUser(r)
}

func navViewer(identity authentication.Identity, ok bool) *views.Viewer {
	if !ok {
		return nil
	}
	return &views.Viewer{ID: identity.ID, Name: identity.Name}
}

func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Index lists all public stories, newest first.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	identity, ok := viewer(r)
	list, err := h.Stories.ListPublic(r.Context())
	if err != nil {
		h.Views.ServerError(w, navViewer(identity, ok), err)
		return
	}
	h.Views.Render(w, http.StatusOK, "index", views.IndexPage{
		Viewer:  navViewer(identity, ok),
		Heading: "Stories",
		Stories: list,
	})
}

// ListByUser lists one user's public stories.
func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := viewer(r)
	userID, err := pathID(r, "userId")
	if err != nil {
		h.Views.NotFound(w, navViewer(identity, ok))
		return
	}
	list, err := h.Stories.ListPublicByUser(r.Context(), userID)
	if err != nil {
		h.Views.ServerError(w, navViewer(identity, ok), err)
		return
	}
	h.Views.Render(w, http.StatusOK, "index", views.IndexPage{
		Viewer:  navViewer(identity, ok),
		Heading: "Stories",
		Stories: list,
	})
}

// ListMine lists the caller's stories regardless of status.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, _ := authentication.IdentityFrom(r.Context())
	list, err := h.Stories.ListByOwner(r.Context(), identity.ID)
	if err != nil {
		h.Views.ServerError(w, navViewer(identity, true), err)
		return
	}
	h.Views.Render(w, http.StatusOK, "index", views.IndexPage{
		Viewer:  navViewer(identity, true),
		Heading: "My Stories",
		Stories: list,
	})
}

// Show renders a single story. Private stories are only shown to their
// owner; everyone else is sent back to the public list.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	identity, ok := viewer(r)
	id, err := pathID(r, "id")
	if err != nil {
		h.Views.NotFound(w, navViewer(identity, ok))
		return
	}

	s, err := h.Stories.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, story.ErrNotFound) {
			h.Views.NotFound(w, navViewer(identity, ok))
			return
		}
		h.Views.ServerError(w, navViewer(identity, ok), err)
		return
	}

	isOwner := ok && identity.ID == s.UserID
	if !s.Public() && !isOwner {
		http.Redirect(w, r, "/stories", http.StatusFound)
		return
	}

	h.Views.Render(w, http.StatusOK, "show", views.ShowPage{
		Viewer:     navViewer(identity, ok),
		Story:      s,
		IsOwner:    isOwner,
		CanComment: ok && s.AllowComments,
	})
}

// AddForm renders the empty creation form.
func (h *Handler) AddForm(w http.ResponseWriter, r *http.Request) {
	identity, _ := authentication.IdentityFrom(r.Context())
	h.Views.Render(w, http.StatusOK, "add", views.FormPage{
		Viewer: navViewer(identity, true),
	})
}

// EditForm renders the edit form for a story the caller owns. A story
// that does not exist or belongs to someone else redirects to the list.
func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	identity, _ := authentication.IdentityFrom(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.Views.NotFound(w, navViewer(identity, true))
		return
	}

	s, err := h.Stories.FindByIDAndOwner(r.Context(), id, identity.ID)
	if err != nil {
		if errors.Is(err, story.ErrNotFound) {
			http.Redirect(w, r, "/stories", http.StatusFound)
			return
		}
		h.Views.ServerError(w, navViewer(identity, true), err)
		return
	}

	h.Views.Render(w, http.StatusOK, "edit", views.FormPage{
		Viewer: navViewer(identity, true),
		Story:  s,
	})
}

// Create stores a new story owned by the caller and redirects to it.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, _ := authentication.IdentityFrom(r.Context())
	form, errs := parseStoryForm(r)
	if len(errs) > 0 {
		h.Views.Render(w, http.StatusBadRequest, "add", views.FormPage{
			Viewer: navViewer(identity, true),
			Story:  form.story(),
			Errors: errs,
		})
		return
	}

	s := form.story()
	s.UserID = identity.ID
	if err := h.Stories.Create(r.Context(), s); err != nil {
		h.Views.ServerError(w, navViewer(identity, true), err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/stories/show/%d", s.ID), http.StatusFound)
}

// Update overwrites the editable fields of a story the caller owns and
// redirects to the dashboard. Non-owners are sent to the public list
// with the story untouched.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, _ := authentication.IdentityFrom(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.Views.NotFound(w, navViewer(identity, true))
		return
	}

	s, err := h.Stories.FindByIDAndOwner(r.Context(), id, identity.ID)
	if err != nil {
		if errors.Is(err, story.ErrNotFound) {
			http.Redirect(w, r, "/stories", http.StatusFound)
			return
		}
		h.Views.ServerError(w, navViewer(identity, true), err)
		return
	}

	form, errs := parseStoryForm(r)
	if len(errs) > 0 {
		submitted := form.story()
		submitted.ID = s.ID
		h.Views.Render(w, http.StatusBadRequest, "edit", views.FormPage{
			Viewer: navViewer(identity, true),
			Story:  submitted,
			Errors: errs,
		})
		return
	}

	s.Title = form.Title
	s.Body = form.Body
	s.Status = form.Status
	s.AllowComments = form.AllowComments
	if err := h.Stories.Update(r.Context(), s); err != nil {
		h.Views.ServerError(w, navViewer(identity, true), err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Delete removes a story the caller owns. Deleting an id that no longer
// exists still lands on the dashboard.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, _ := authentication.IdentityFrom(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.Views.NotFound(w, navViewer(identity, true))
		return
	}

	s, err := h.Stories.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, story.ErrNotFound) {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		h.Views.ServerError(w, navViewer(identity, true), err)
		return
	}
	if s.UserID != identity.ID {
		http.Redirect(w, r, "/stories", http.StatusFound)
		return
	}

	if err := h.Stories.Delete(r.Context(), id); err != nil {
		h.Views.ServerError(w, navViewer(identity, true), err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// AddComment prepends a comment by the caller and redirects back to the
// story.
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	identity, _ := authentication.IdentityFrom(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.Views.NotFound(w, navViewer(identity, true))
		return
	}

	target := fmt.Sprintf("/stories/show/%d", id)
	body := commentBody(r)
	if body == "" {
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	comment := &story.Comment{UserID: identity.ID, Body: body}
	if err := h.Stories.AddComment(r.Context(), id, comment); err != nil {
		if errors.Is(err, story.ErrNotFound) {
			h.Views.NotFound(w, navViewer(identity, true))
			return
		}
		h.Views.ServerError(w, navViewer(identity, true), err)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}
