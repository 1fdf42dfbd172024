package story

import (
	"context"
	"testing"

	"storybooks-backend/models/users"
)

func TestMemoryRepository_AddCommentPrepends(t *testing.T) {
	repo := NewMemoryRepository()
	repo.PutUser(users.User{ID: 1, Name: "Alice"})

	s := &Story{Title: "T", Body: "B", Status: StatusPublic, UserID: 1}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, body := range []string{"one", "two", "three"} {
		if err := repo.AddComment(context.Background(), s.ID, &Comment{UserID: 1, Body: body}); err != nil {
			t.Fatalf("AddComment(%q): %v", body, err)
		}
	}

	got, err := repo.FindByID(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	want := []string{"three", "two", "one"}
	if len(got.Comments) != len(want) {
		t.Fatalf("comments = %d, want %d", len(got.Comments), len(want))
	}
	for i, body := range want {
		if got.Comments[i].Body != body {
			t.Errorf("comment[%d] = %q, want %q", i, got.Comments[i].Body, body)
		}
	}
	if got.Comments[0].User.Name != "Alice" {
		t.Errorf("comment author not resolved")
	}
}

func TestMemoryRepository_FindByIDAndOwner(t *testing.T) {
	repo := NewMemoryRepository()
	s := &Story{Title: "T", Body: "B", Status: StatusPrivate, UserID: 1}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := repo.FindByIDAndOwner(context.Background(), s.ID, 1); err != nil {
		t.Errorf("owner lookup failed: %v", err)
	}
	if _, err := repo.FindByIDAndOwner(context.Background(), s.ID, 2); err != ErrNotFound {
		t.Errorf("non-owner lookup = %v, want ErrNotFound", err)
	}
	if _, err := repo.FindByIDAndOwner(context.Background(), 99, 1); err != ErrNotFound {
		t.Errorf("missing id lookup = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepository_AddCommentUnknownStory(t *testing.T) {
	repo := NewMemoryRepository()
	err := repo.AddComment(context.Background(), 42, &Comment{UserID: 1, Body: "x"})
	if err != ErrNotFound {
		t.Errorf("AddComment on unknown story = %v, want ErrNotFound", err)
	}
}
