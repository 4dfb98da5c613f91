package models

// Event types published to the message bus.
const (
	EventUserSignedUp          = "user.signed_up"
	EventProfileCompleted      = "profile.completed"
	EventProfileUpdated        = "profile.updated"
	EventProfilePictureUpdated = "profile.picture_updated"
	EventPostCreated           = "post.created"
)

// Event is a domain event published after a successful write.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier of the event.
	Type      string `json:"type"`      // Type is one of the Event* constants.
	UserID    string `json:"user_id"`   // UserID is the user the event concerns.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time in seconds.
	Payload   any    `json:"payload,omitempty"`
}
