package video

import "time"

// EventTypeMediaCreated identifies the "raw media needs encoding" event.
const EventTypeMediaCreated = "video.media.created"

// Event is a domain event raised by the video aggregate. Events live in
// memory on the aggregate until drained; delivery is at-most-once.
type Event interface {
	EventType() string
	OccurredOn() time.Time
}

// MediaCreated is raised when a raw audio/video asset is attached and still
// awaits encoding. ResourceID is the owning video's id and FilePath the raw
// storage location handed to the encoder.
type MediaCreated struct {
	ResourceID string    `json:"resource_id"`
	FilePath   string    `json:"file_path"`
	RecordedAt time.Time `json:"occurred_on"`
}

// NewMediaCreated creates a MediaCreated event stamped with the current time.
func NewMediaCreated(resourceID, filePath string) MediaCreated {
	return MediaCreated{
		ResourceID: resourceID,
		FilePath:   filePath,
		RecordedAt: time.Now(),
	}
}

func (e MediaCreated) EventType() string {
	return EventTypeMediaCreated
}

func (e MediaCreated) OccurredOn() time.Time {
	return e.RecordedAt
}
