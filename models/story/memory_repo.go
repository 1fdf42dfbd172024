package story

import (
	"context"
	"sort"
	"sync"

	"storybooks-backend/models/users"
)

// MemoryRepository is a map-backed Repository. It backs the handler
// tests and mirrors the GORM implementation's ordering and reference
// resolution.
type MemoryRepository struct {
	mu        sync.RWMutex
	stories   map[uint]Story
	users     map[uint]users.User
	nextStory uint
	nextCmt   uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		stories: make(map[uint]Story),
		users:   make(map[uint]users.User),
	}
}

// PutUser registers a user so stored stories can resolve their owner.
func (r *MemoryRepository) PutUser(u users.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

func (r *MemoryRepository) resolve(s Story) Story {
	s.User = r.users[s.UserID]
	resolved := make([]Comment, len(s.Comments))
	for i, c := range s.Comments {
		c.User = r.users[c.UserID]
		resolved[i] = c
	}
	s.Comments = resolved
	return s
}

func (r *MemoryRepository) list(match func(Story) bool) []Story {
	var out []Story
	for _, s := range r.stories {
		if match(s) {
			out = append(out, r.resolve(s))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *MemoryRepository) ListPublic(ctx context.Context) ([]Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(func(s Story) bool { return s.Status == StatusPublic }), nil
}

func (r *MemoryRepository) ListPublicByUser(ctx context.Context, userID uint) ([]Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(func(s Story) bool { return s.UserID == userID && s.Status == StatusPublic }), nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, userID uint) ([]Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(func(s Story) bool { return s.UserID == userID }), nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id uint) (*Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.stories[id]
	if !ok {
		return nil, ErrNotFound
	}
	resolved := r.resolve(s)
	return &resolved, nil
}

func (r *MemoryRepository) FindByIDAndOwner(ctx context.Context, id, userID uint) (*Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.stories[id]
	if !ok || s.UserID != userID {
		return nil, ErrNotFound
	}
	resolved := r.resolve(s)
	return &resolved, nil
}

func (r *MemoryRepository) Create(ctx context.Context, story *Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextStory++
	story.ID = r.nextStory
	r.stories[story.ID] = *story
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, story *Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.stories[story.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Title = story.Title
	existing.Body = story.Body
	existing.Status = story.Status
	existing.AllowComments = story.AllowComments
	r.stories[story.ID] = existing
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stories, id)
	return nil
}

func (r *MemoryRepository) AddComment(ctx context.Context, storyID uint, comment *Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stories[storyID]
	if !ok {
		return ErrNotFound
	}
	r.nextCmt++
	comment.ID = r.nextCmt
	comment.StoryID = storyID
	s.Comments = append([]Comment{*comment}, s.Comments...)
	r.stories[storyID] = s
	return nil
}
