package video

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the aggregate persistence port.
type Repository interface {
	Create(ctx context.Context, v *Video) (*Video, error)
	Update(ctx context.Context, v *Video) (*Video, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Video, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MediaStorage is the media asset storage port.
type MediaStorage interface {
	// StoreAudioVideo uploads one audio/video payload and returns its
	// persisted representation in PENDING encode state.
	StoreAudioVideo(ctx context.Context, videoID uuid.UUID, res VideoResource) (AudioVideoMedia, error)
	// StoreImage uploads one image payload and returns its persisted
	// representation.
	StoreImage(ctx context.Context, videoID uuid.UUID, res VideoResource) (ImageMedia, error)
	// GetResource fetches the raw payload previously stored for a slot, or
	// a not-found error if the slot was never uploaded.
	GetResource(ctx context.Context, videoID uuid.UUID, t MediaType) (*Resource, error)
	// ClearResources deletes every asset stored for the video. Best effort
	// and idempotent; used for deletion and for saga compensation.
	ClearResources(ctx context.Context, videoID uuid.UUID) error
}

// EventPublisher dispatches drained domain events. Fire and forget: events
// are not durable and delivery is at most once.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event Event) error
}
