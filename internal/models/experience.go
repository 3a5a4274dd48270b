package models

import (
	"time"

	"github.com/google/uuid"
)

// ExperienceDB represents an experience row in the database.
// AuthorEmail is populated by reads that join the users table.
type ExperienceDB struct {
	ExperienceID uuid.UUID `db:"experience_id"` // Unique experience identifier
	Seq          int64     `db:"seq"`           // Insertion-order tiebreaker for stable listing
	Title        string    `db:"title"`         // Post title
	Company      string    `db:"company"`       // Company the interview was with
	RoleTitle    string    `db:"role_title"`    // Role interviewed for
	Content      string    `db:"content"`       // Free-text account
	AuthorID     uuid.UUID `db:"author_id"`     // Owner, immutable after creation
	AuthorEmail  string    `db:"author_email"`  // Joined from users
	CreatedAt    time.Time `db:"created_at"`    // Server-assigned, immutable
}

// Experience is the outward representation of an experience.
// LikesCount and LikerIDs are derived from the likes relation at read
// time and are never stored.
type Experience struct {
	ID         uuid.UUID   `json:"id"`
	Title      string      `json:"title"`
	Company    string      `json:"company"`
	RoleTitle  string      `json:"role_title"`
	Content    string      `json:"content"`
	CreatedAt  time.Time   `json:"created_at"`
	Author     string      `json:"author"`
	LikesCount int         `json:"likes_count"`
	LikerIDs   []uuid.UUID `json:"liker_ids"`
}

// ExperienceUpdate carries a partial update; nil fields keep their
// previous values.
type ExperienceUpdate struct {
	Title     *string `json:"title"`
	Company   *string `json:"company"`
	RoleTitle *string `json:"role_title"`
	Content   *string `json:"content"`
}

// DayCount is one heatmap bucket: how many experiences were posted on
// a calendar date.
type DayCount struct {
	Date  string `json:"date" db:"day"`
	Count int64  `json:"count" db:"count"`
}
