package stories

import (
	"net/http"
	"strings"

	"storybooks-backend/models/story"
)

type storyForm struct {
	Title         string
	Body          string
	Status        string
	AllowComments bool
}

func (f storyForm) story() *story.Story {
	return &story.Story{
		Title:         f.Title,
		Body:          f.Body,
		Status:        f.Status,
		AllowComments: f.AllowComments,
	}
}

// parseStoryForm reads the create/edit form. Title and body are
// required; allowComments follows checkbox coercion.
func parseStoryForm(r *http.Request) (storyForm, []string) {
	f := storyForm{
		Title:         strings.TrimSpace(r.PostFormValue("title")),
		Body:          strings.TrimSpace(r.PostFormValue("body")),
		Status:        r.PostFormValue("status"),
		AllowComments: checkboxValue(r.PostFormValue("allowComments")),
	}
	if f.Status == "" {
		f.Status = story.StatusPublic
	}

	var errs []string
	if f.Title == "" {
		errs = append(errs, "Title is required")
	}
	if f.Body == "" {
		errs = append(errs, "Body is required")
	}
	return f, errs
}

// checkboxValue treats a field as true iff it was submitted with a
// non-empty value, matching how browsers post checkboxes.
func checkboxValue(v string) bool {
	return v != ""
}

func commentBody(r *http.Request) string {
	return strings.TrimSpace(r.PostFormValue("commentBody"))
}
