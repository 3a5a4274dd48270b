package models

// Like toggle outcomes.
const (
	ActionLiked   = "liked"
	ActionUnliked = "unliked"
)

// Event is a domain event published to Kafka.
type Event struct {
	EventID      string `json:"event_id"`      // Unique event identifier
	Timestamp    int64  `json:"timestamp"`     // Unix timestamp
	Type         string `json:"type"`          // experience_created or like_toggled
	UserID       string `json:"user_id"`       // Acting user
	ExperienceID string `json:"experience_id"` // Target experience
	Action       string `json:"action,omitempty"`
}
