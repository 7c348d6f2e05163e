package video

import (
	"fmt"
	"strings"
)

// MediaStatus is the encode lifecycle state of an audio/video asset as
// reported by the external encoding pipeline.
type MediaStatus string

const (
	MediaStatusPending    MediaStatus = "PENDING"
	MediaStatusProcessing MediaStatus = "PROCESSING"
	MediaStatusCompleted  MediaStatus = "COMPLETED"
)

// ParseMediaStatus resolves a media status from its string form.
func ParseMediaStatus(s string) (MediaStatus, bool) {
	switch strings.ToUpper(s) {
	case string(MediaStatusPending):
		return MediaStatusPending, true
	case string(MediaStatusProcessing):
		return MediaStatusProcessing, true
	case string(MediaStatusCompleted):
		return MediaStatusCompleted, true
	}
	return "", false
}

func (s MediaStatus) String() string {
	return string(s)
}

// MediaType identifies one of the five media slots of a video.
type MediaType string

const (
	MediaTypeVideo         MediaType = "VIDEO"
	MediaTypeTrailer       MediaType = "TRAILER"
	MediaTypeBanner        MediaType = "BANNER"
	MediaTypeThumbnail     MediaType = "THUMBNAIL"
	MediaTypeThumbnailHalf MediaType = "THUMBNAIL_HALF"
)

// ParseMediaType resolves a media type from its string form.
func ParseMediaType(s string) (MediaType, bool) {
	switch strings.ToUpper(s) {
	case string(MediaTypeVideo):
		return MediaTypeVideo, true
	case string(MediaTypeTrailer):
		return MediaTypeTrailer, true
	case string(MediaTypeBanner):
		return MediaTypeBanner, true
	case string(MediaTypeThumbnail):
		return MediaTypeThumbnail, true
	case string(MediaTypeThumbnailHalf):
		return MediaTypeThumbnailHalf, true
	}
	return "", false
}

// IsAudioVideo reports whether the slot carries an encodable asset.
func (t MediaType) IsAudioVideo() bool {
	return t == MediaTypeVideo || t == MediaTypeTrailer
}

func (t MediaType) String() string {
	return string(t)
}

// Resource is a raw media payload handed to the storage collaborator.
type Resource struct {
	Name        string
	Checksum    string
	ContentType string
	Content     []byte
}

// VideoResource tags a resource with the media slot it belongs to.
type VideoResource struct {
	Type     MediaType
	Resource Resource
}

// ImageMedia is a stored image asset. Immutable once created.
type ImageMedia struct {
	Checksum string
	Name     string
	Location string
}

// NewImageMedia creates a stored image asset.
func NewImageMedia(checksum, name, location string) ImageMedia {
	return ImageMedia{Checksum: checksum, Name: name, Location: location}
}

// Equals compares by checksum and location; the display name is excluded.
func (m ImageMedia) Equals(other ImageMedia) bool {
	return m.Checksum == other.Checksum && m.Location == other.Location
}

// AudioVideoMedia is a stored audio/video asset carrying an encode status.
// Value semantics: transitions return a new value.
type AudioVideoMedia struct {
	ID              string
	Checksum        string
	Name            string
	RawLocation     string
	EncodedLocation string
	Status          MediaStatus
}

// NewAudioVideoMedia creates a freshly uploaded asset in PENDING state.
func NewAudioVideoMedia(id, checksum, name, rawLocation string) AudioVideoMedia {
	return AudioVideoMedia{
		ID:          id,
		Checksum:    checksum,
		Name:        name,
		RawLocation: rawLocation,
		Status:      MediaStatusPending,
	}
}

// Processing transitions the asset to PROCESSING. Only a pending asset may
// start processing.
func (m AudioVideoMedia) Processing() (AudioVideoMedia, error) {
	if m.Status != MediaStatusPending {
		return m, fmt.Errorf("cannot transition media %s from %s to %s", m.ID, m.Status, MediaStatusProcessing)
	}
	m.Status = MediaStatusProcessing
	return m, nil
}

// Completed transitions the asset to COMPLETED and records the encoded
// location. Reachable from PENDING or PROCESSING.
func (m AudioVideoMedia) Completed(encodedLocation string) (AudioVideoMedia, error) {
	if m.Status == MediaStatusCompleted {
		return m, fmt.Errorf("media %s is already %s", m.ID, MediaStatusCompleted)
	}
	m.Status = MediaStatusCompleted
	m.EncodedLocation = encodedLocation
	return m, nil
}

// IsPendingEncode reports whether the asset still awaits encoding.
func (m AudioVideoMedia) IsPendingEncode() bool {
	return m.Status == MediaStatusPending
}

// Equals compares by checksum and raw location; the display name is excluded.
func (m AudioVideoMedia) Equals(other AudioVideoMedia) bool {
	return m.Checksum == other.Checksum && m.RawLocation == other.RawLocation
}
