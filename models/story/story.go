package story

import (
	"time"

	"storybooks-backend/models/users"
)

const (
	StatusPublic  = "public"
	StatusPrivate = "private"
)

type Story struct {
	ID            uint       `gorm:"primaryKey"`
	Title         string     `gorm:"type:text;not null"`
	Body          string     `gorm:"type:text;not null"`
	Status        string     `gorm:"type:varchar(20);index;default:'public'"`
	AllowComments bool       `gorm:"default:false"`
	UserID        uint       `gorm:"index;constraint:OnDelete:CASCADE;not null"`
	User          users.User `gorm:"foreignKey:UserID"`
	Comments      []Comment  `gorm:"foreignKey:StoryID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
}

type Comment struct {
	ID        uint       `gorm:"primaryKey"`
	StoryID   uint       `gorm:"index;not null"`
	UserID    uint       `gorm:"index;constraint:OnDelete:CASCADE;not null"`
	User      users.User `gorm:"foreignKey:UserID"`
	Body      string     `gorm:"type:text;not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

// Public reports whether the story is visible to everyone. Any status
// other than "public" hides the story from non-owners.
func (s *Story) Public() bool {
	return s.Status == StatusPublic
}
