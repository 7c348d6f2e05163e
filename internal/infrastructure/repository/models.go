package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/dotflix/catalog/internal/domain/video"
)

// VideoModel is the persistent shape of the video aggregate. Media slots and
// reference sets are stored as JSON documents so the row stays a single
// consistency boundary.
type VideoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"size:4000;not null"`
	LaunchedAt  int       `gorm:"not null"`
	Duration    float64
	Rating      string `gorm:"size:4;not null"`
	Opened      bool
	Published   bool
	Version     int `gorm:"not null;default:1"`

	Banner        *imageMediaDoc      `gorm:"serializer:json"`
	Thumbnail     *imageMediaDoc      `gorm:"serializer:json"`
	ThumbnailHalf *imageMediaDoc      `gorm:"serializer:json"`
	Trailer       *audioVideoMediaDoc `gorm:"serializer:json"`
	Video         *audioVideoMediaDoc `gorm:"serializer:json"`

	Categories  []string `gorm:"serializer:json"`
	Genres      []string `gorm:"serializer:json"`
	CastMembers []string `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName sets the videos table name.
func (VideoModel) TableName() string { return "videos" }

type imageMediaDoc struct {
	Checksum string `json:"checksum"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type audioVideoMediaDoc struct {
	ID              string `json:"id"`
	Checksum        string `json:"checksum"`
	Name            string `json:"name"`
	RawLocation     string `json:"raw_location"`
	EncodedLocation string `json:"encoded_location,omitempty"`
	Status          string `json:"status"`
}

func toVideoModel(v *video.Video) *VideoModel {
	return &VideoModel{
		ID:            v.ID(),
		Title:         v.Title(),
		Description:   v.Description(),
		LaunchedAt:    v.LaunchedAt(),
		Duration:      v.Duration(),
		Rating:        v.Rating().String(),
		Opened:        v.Opened(),
		Published:     v.Published(),
		Version:       v.Version(),
		Banner:        toImageDoc(v.Banner()),
		Thumbnail:     toImageDoc(v.Thumbnail()),
		ThumbnailHalf: toImageDoc(v.ThumbnailHalf()),
		Trailer:       toAudioVideoDoc(v.Trailer()),
		Video:         toAudioVideoDoc(v.Video()),
		Categories:    v.Categories(),
		Genres:        v.Genres(),
		CastMembers:   v.CastMembers(),
		CreatedAt:     v.CreatedAt(),
		UpdatedAt:     v.UpdatedAt(),
	}
}

func (m *VideoModel) toDomain() *video.Video {
	rating, _ := video.ParseRating(m.Rating)
	return video.FromSnapshot(video.Snapshot{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		LaunchedAt:    m.LaunchedAt,
		Duration:      m.Duration,
		Opened:        m.Opened,
		Published:     m.Published,
		Rating:        rating,
		Version:       m.Version,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Banner:        fromImageDoc(m.Banner),
		Thumbnail:     fromImageDoc(m.Thumbnail),
		ThumbnailHalf: fromImageDoc(m.ThumbnailHalf),
		Trailer:       fromAudioVideoDoc(m.Trailer),
		Video:         fromAudioVideoDoc(m.Video),
		Categories:    m.Categories,
		Genres:        m.Genres,
		CastMembers:   m.CastMembers,
	})
}

func toImageDoc(m *video.ImageMedia) *imageMediaDoc {
	if m == nil {
		return nil
	}
	return &imageMediaDoc{Checksum: m.Checksum, Name: m.Name, Location: m.Location}
}

func fromImageDoc(d *imageMediaDoc) *video.ImageMedia {
	if d == nil {
		return nil
	}
	return &video.ImageMedia{Checksum: d.Checksum, Name: d.Name, Location: d.Location}
}

func toAudioVideoDoc(m *video.AudioVideoMedia) *audioVideoMediaDoc {
	if m == nil {
		return nil
	}
	return &audioVideoMediaDoc{
		ID:              m.ID,
		Checksum:        m.Checksum,
		Name:            m.Name,
		RawLocation:     m.RawLocation,
		EncodedLocation: m.EncodedLocation,
		Status:          m.Status.String(),
	}
}

func fromAudioVideoDoc(d *audioVideoMediaDoc) *video.AudioVideoMedia {
	if d == nil {
		return nil
	}
	status, _ := video.ParseMediaStatus(d.Status)
	return &video.AudioVideoMedia{
		ID:              d.ID,
		Checksum:        d.Checksum,
		Name:            d.Name,
		RawLocation:     d.RawLocation,
		EncodedLocation: d.EncodedLocation,
		Status:          status,
	}
}

// CategoryModel is the persistent shape of a category.
type CategoryModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Active    bool   `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName sets the categories table name.
func (CategoryModel) TableName() string { return "categories" }

// GenreModel is the persistent shape of a genre.
type GenreModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Active    bool   `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName sets the genres table name.
func (GenreModel) TableName() string { return "genres" }

// CastMemberModel is the persistent shape of a cast member.
type CastMemberModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Type      string `gorm:"size:16;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName sets the cast members table name.
func (CastMemberModel) TableName() string { return "cast_members" }
