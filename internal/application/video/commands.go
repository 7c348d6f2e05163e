package video

import (
	"github.com/dotflix/catalog/internal/domain/video"
)

// MediaPayloads carries the optional raw payloads for the five media slots.
// A nil slot means "leave untouched".
type MediaPayloads struct {
	Video         *video.Resource
	Trailer       *video.Resource
	Banner        *video.Resource
	Thumbnail     *video.Resource
	ThumbnailHalf *video.Resource
}

// VideoInput holds the descriptive fields, reference sets and media payloads
// shared by the create and update commands.
type VideoInput struct {
	Title       string
	Description string
	LaunchedAt  int
	Duration    float64
	Opened      bool
	Published   bool
	Rating      string
	Categories  []string
	Genres      []string
	CastMembers []string
	Media       MediaPayloads
}

func (in VideoInput) attributes() video.Attributes {
	// An unknown rating string maps to the zero value and fails the
	// aggregate's required-rating check.
	rating, _ := video.ParseRating(in.Rating)
	return video.Attributes{
		Title:       in.Title,
		Description: in.Description,
		LaunchedAt:  in.LaunchedAt,
		Duration:    in.Duration,
		Opened:      in.Opened,
		Published:   in.Published,
		Rating:      rating,
		Categories:  in.Categories,
		Genres:      in.Genres,
		CastMembers: in.CastMembers,
	}
}

// CreateVideoCommand creates a new catalog title.
type CreateVideoCommand struct {
	VideoInput
}

// UpdateVideoCommand replaces the descriptive fields, reference sets and any
// supplied media of an existing title.
type UpdateVideoCommand struct {
	ID string
	VideoInput
}

// UploadMediaCommand stores one media payload for an existing title.
type UploadMediaCommand struct {
	VideoID  string
	Resource video.VideoResource
}

// GetMediaCommand fetches the raw payload previously stored for a slot.
type GetMediaCommand struct {
	VideoID   string
	MediaType string
}

// UpdateMediaStatusCommand is the encoder progress callback.
type UpdateMediaStatusCommand struct {
	VideoID    string
	ResourceID string
	Status     string
	Folder     string
	Filename   string
}
