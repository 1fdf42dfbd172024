// Package views renders the HTML pages. Each page is a layout plus one
// content template, parsed once at startup.
package views

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"storybooks-backend/models/story"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"home", "index", "show", "add", "edit", "dashboard",
	"login", "register", "notfound", "error",
}

var funcs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("Jan 2, 2006")
	},
	"excerpt": func(s string) string {
		const max = 200
		if len(s) <= max {
			return s
		}
		return s[:max] + "..."
	},
}

// Viewer identifies the signed-in user for the nav bar and ownership
// checks inside templates. Nil means a guest.
type Viewer struct {
	ID   uint
	Name string
}

type IndexPage struct {
	Viewer  *Viewer
	Heading string
	Stories []story.Story
}

type ShowPage struct {
	Viewer     *Viewer
	Story      *story.Story
	IsOwner    bool
	CanComment bool
}

type FormPage struct {
	Viewer *Viewer
	Story  *story.Story
	Errors []string
}

type DashboardPage struct {
	Viewer  *Viewer
	Stories []story.Story
}

type AuthPage struct {
	Viewer *Viewer
	Error  string
	Name   string
	Email  string
}

type MessagePage struct {
	Viewer  *Viewer
	Message string
}

type Renderer struct {
	pages map[string]*template.Template
}

func New() *Renderer {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		pages[name] = template.Must(template.New("layout.html").Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"))
	}
	return &Renderer{pages: pages}
}

func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data interface{}) {
	tmpl, ok := r.pages[page]
	if !ok {
		log.Printf("render: unknown page %q", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.Execute(w, data); err != nil {
		log.Printf("render %s: %v", page, err)
	}
}

func (r *Renderer) NotFound(w http.ResponseWriter, viewer *Viewer) {
	r.Render(w, http.StatusNotFound, "notfound", MessagePage{
		Viewer:  viewer,
		Message: "The page you are looking for does not exist.",
	})
}

func (r *Renderer) ServerError(w http.ResponseWriter, viewer *Viewer, err error) {
	log.Printf("server error: %v", err)
	r.Render(w, http.StatusInternalServerError, "error", MessagePage{
		Viewer:  viewer,
		Message: "Something went wrong. Please try again later.",
	})
}
