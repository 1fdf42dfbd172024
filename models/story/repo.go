package story

import (
	"context"
	"errors"
)

// ErrNotFound is returned by lookups when no story matches.
var ErrNotFound = errors.New("story not found")

// Repository is the storage contract the handlers work against. Loaded
// stories come back with the owning user resolved; FindByID additionally
// resolves each comment's author, newest comment first.
type Repository interface {
	ListPublic(ctx context.Context) ([]Story, error)
	ListPublicByUser(ctx context.Context, userID uint) ([]Story, error)
	ListByOwner(ctx context.Context, userID uint) ([]Story, error)
	FindByID(ctx context.Context, id uint) (*Story, error)
	FindByIDAndOwner(ctx context.Context, id, userID uint) (*Story, error)
	Create(ctx context.Context, story *Story) error
	Update(ctx context.Context, story *Story) error
	Delete(ctx context.Context, id uint) error
	AddComment(ctx context.Context, storyID uint, comment *Comment) error
}
