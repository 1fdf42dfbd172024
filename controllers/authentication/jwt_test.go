package authentication

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storybooks-backend/models/users"
)

func TestTokenRoundTrip(t *testing.T) {
	orig := JwtKey
	JwtKey = []byte("test-secret")
	defer func() { JwtKey = orig }()

	user := &users.User{ID: 7, Name: "Alice", Email: "alice@example.com"}
	tokenString, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest("GET", "/stories/my", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)

	claims, err := ValidateToken(req)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 7 || claims.Name != "Alice" || claims.Email != "alice@example.com" {
		t.Errorf("claims = %+v, want the signed user", claims)
	}
}

func TestValidateToken_MissingHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/stories/my", nil)
	if _, err := ValidateToken(req); err == nil {
		t.Errorf("expected an error without an Authorization header")
	}
}

func TestValidateToken_WrongKey(t *testing.T) {
	orig := JwtKey
	JwtKey = []byte("key-one")
	user := &users.User{ID: 1, Name: "A", Email: "a@example.com"}
	tokenString, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	JwtKey = []byte("key-two")
	defer func() { JwtKey = orig }()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	if _, err := ValidateToken(req); err == nil {
		t.Errorf("token signed with a different key validated")
	}
}

func TestCurrentUser_BearerFallback(t *testing.T) {
	orig := JwtKey
	JwtKey = []byte("test-secret")
	defer func() { JwtKey = orig }()

	user := &users.User{ID: 3, Name: "Bob", Email: "bob@example.com"}
	tokenString, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest("GET", "/stories/my", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)

	identity, ok := CurrentUser(req)
	if !ok {
		t.Fatalf("CurrentUser did not resolve the bearer token")
	}
	if identity.ID != 3 || identity.Name != "Bob" {
		t.Errorf("identity = %+v, want the token's user", identity)
	}
}

func TestEnsureAuthenticated_RedirectsGuests(t *testing.T) {
	called := false
	handler := EnsureAuthenticated(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/stories/add", nil))

	if called {
		t.Errorf("wrapped handler ran for a guest")
	}
	if w.Code != http.StatusFound {
		t.Errorf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/users/login" {
		t.Errorf("redirect = %q, want /users/login", loc)
	}
}

func TestSignInThenCurrentUser(t *testing.T) {
	user := &users.User{ID: 5, Name: "Carol", Email: "carol@example.com"}

	w := httptest.NewRecorder()
	if err := SignIn(w, httptest.NewRequest("POST", "/users/login", nil), user); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	req := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}

	identity, ok := CurrentUser(req)
	if !ok {
		t.Fatalf("CurrentUser did not resolve the session")
	}
	if identity.ID != 5 || identity.Name != "Carol" || identity.Email != "carol@example.com" {
		t.Errorf("identity = %+v, want the signed-in user", identity)
	}
}

func TestEnsureGuest_RedirectsSignedInUsers(t *testing.T) {
	user := &users.User{ID: 6, Name: "Dave", Email: "dave@example.com"}
	w := httptest.NewRecorder()
	if err := SignIn(w, httptest.NewRequest("POST", "/users/login", nil), user); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	req := httptest.NewRequest("GET", "/users/login", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	EnsureGuest(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("guest-only handler ran for a signed-in user")
	})(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("redirect = %q, want /dashboard", loc)
	}
}
