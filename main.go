package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"storybooks-backend/config"
	"storybooks-backend/controllers"
	"storybooks-backend/controllers/authentication"
	"storybooks-backend/controllers/httpCors"
	"storybooks-backend/controllers/stories"
	"storybooks-backend/models/story"
	"storybooks-backend/models/users"
	"storybooks-backend/views"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := config.InitDB(); err != nil {
		log.Fatalf("database init: %v", err)
	}

	err := config.DB.AutoMigrate(
		&users.User{},
		&story.Story{},
		&story.Comment{},
	)
	if err != nil {
		log.Fatalf("database migration: %v", err)
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		log.Fatalf("database handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("database ping: %v", err)
	}
	log.Println("database connection established")

	renderer := views.New()
	storyRepo := story.NewGormRepository(config.DB)
	userRepo := users.NewGormRepository(config.DB)

	storyHandler := stories.NewHandler(storyRepo, renderer)
	authHandler := authentication.NewHandler(userRepo, renderer)
	dashboard := &controllers.Dashboard{Stories: storyRepo, Views: renderer}

	r := mux.NewRouter()
	r.HandleFunc("/", handleHome(renderer)).Methods("GET")
	r.HandleFunc("/dashboard", authentication.EnsureAuthenticated(dashboard.Show)).Methods("GET")

	r.HandleFunc("/stories", storyHandler.Index).Methods("GET")
	r.HandleFunc("/stories", authentication.EnsureAuthenticated(storyHandler.Create)).Methods("POST")
	r.HandleFunc("/stories/my", authentication.EnsureAuthenticated(storyHandler.ListMine)).Methods("GET")
	r.HandleFunc("/stories/add", authentication.EnsureAuthenticated(storyHandler.AddForm)).Methods("GET")
	r.HandleFunc("/stories/user/{userId:[0-9]+}", storyHandler.ListByUser).Methods("GET")
	r.HandleFunc("/stories/show/{id:[0-9]+}", storyHandler.Show).Methods("GET")
	r.HandleFunc("/stories/edit/{id:[0-9]+}", authentication.EnsureAuthenticated(storyHandler.EditForm)).Methods("GET")
	r.HandleFunc("/stories/comment/{id:[0-9]+}", authentication.EnsureAuthenticated(storyHandler.AddComment)).Methods("POST")
	r.HandleFunc("/stories/{id:[0-9]+}", authentication.EnsureAuthenticated(storyHandler.Update)).Methods("PUT")
	r.HandleFunc("/stories/{id:[0-9]+}", authentication.EnsureAuthenticated(storyHandler.Delete)).Methods("DELETE")

	r.HandleFunc("/users/login", authentication.EnsureGuest(authHandler.LoginForm)).Methods("GET")
	r.HandleFunc("/users/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/users/register", authentication.EnsureGuest(authHandler.RegisterForm)).Methods("GET")
	r.HandleFunc("/users/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/users/logout", authHandler.Logout).Methods("GET")
	r.HandleFunc("/api/login", authHandler.APILogin).Methods("POST")
	r.HandleFunc("/auth/google", authHandler.GoogleLogin).Methods("GET")
	r.HandleFunc("/auth/google/callback", authHandler.GoogleCallback).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		renderer.NotFound(w, nil)
	})

	handler := methodOverride(r)
	handler = httpCors.CorsSettings().Handler(handler)

	log.Printf("server listening on port %s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// handleHome shows the guest landing page; signed-in users go straight
// to their dashboard.
func handleHome(renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := authentication.CurrentUser(r); ok {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		renderer.Render(w, http.StatusOK, "home", views.MessagePage{})
	}
}

// methodOverride lets the server-rendered forms reach the PUT and
// DELETE routes through a hidden _method field.
func methodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch r.PostFormValue("_method") {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		next.ServeHTTP(w, r)
	})
}
