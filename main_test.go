package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestMethodOverride(t *testing.T) {
	cases := []struct {
		field string
		want  string
	}{
		{"PUT", http.MethodPut},
		{"DELETE", http.MethodDelete},
		{"", http.MethodPost},
		{"PATCH", http.MethodPost}, // only PUT and DELETE are translated
	}

	for _, c := range cases {
		var got string
		handler := methodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Method
		}))

		form := url.Values{"title": {"T"}}
		if c.field != "" {
			form.Set("_method", c.field)
		}
		req := httptest.NewRequest("POST", "/stories/1", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if got != c.want {
			t.Errorf("_method=%q: method = %s, want %s", c.field, got, c.want)
		}
	}
}

func TestMethodOverride_LeavesGetAlone(t *testing.T) {
	var got string
	handler := methodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Method
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/stories", nil))
	if got != http.MethodGet {
		t.Errorf("method = %s, want GET", got)
	}
}
