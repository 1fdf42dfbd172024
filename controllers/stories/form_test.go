package stories

import (
	"net/url"
	"testing"
)

func TestCheckboxValue(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"on", true},
		{"true", true},
		{"0", true}, // presence, not truthiness
	}
	for _, c := range cases {
		if got := checkboxValue(c.in); got != c.want {
			t.Errorf("checkboxValue(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseStoryForm(t *testing.T) {
	cases := []struct {
		name     string
		form     url.Values
		wantErrs int
		check    func(t *testing.T, f storyForm)
	}{
		{
			name: "valid",
			form: url.Values{"title": {"T"}, "body": {"B"}, "status": {"private"}, "allowComments": {"on"}},
			check: func(t *testing.T, f storyForm) {
				if f.Title != "T" || f.Body != "B" || f.Status != "private" || !f.AllowComments {
					t.Errorf("parsed form = %+v", f)
				}
			},
		},
		{
			name:     "missing title and body",
			form:     url.Values{"status": {"public"}},
			wantErrs: 2,
		},
		{
			name:     "whitespace only title",
			form:     url.Values{"title": {"   "}, "body": {"B"}},
			wantErrs: 1,
		},
		{
			name: "status defaults to public",
			form: url.Values{"title": {"T"}, "body": {"B"}},
			check: func(t *testing.T, f storyForm) {
				if f.Status != "public" {
					t.Errorf("status = %q, want public", f.Status)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := formRequest("POST", "/stories", c.form, nil)
			f, errs := parseStoryForm(req)
			if len(errs) != c.wantErrs {
				t.Errorf("errors = %v, want %d of them", errs, c.wantErrs)
			}
			if c.check != nil {
				c.check(t, f)
			}
		})
	}
}
