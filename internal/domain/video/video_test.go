package video_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotflix/catalog/internal/domain/video"
)

func validAttributes() video.Attributes {
	return video.Attributes{
		Title:       "System Design Interviews",
		Description: "A deep dive into large scale system design",
		LaunchedAt:  2022,
		Duration:    120.5,
		Opened:      true,
		Published:   false,
		Rating:      video.RatingFree,
		Categories:  []string{"c1"},
		Genres:      []string{"g1"},
		CastMembers: []string{"m1", "m2"},
	}
}

func TestNewVideo_Valid(t *testing.T) {
	v, err := video.NewVideo(validAttributes())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, v.ID())
	assert.Equal(t, "System Design Interviews", v.Title())
	assert.Equal(t, 2022, v.LaunchedAt())
	assert.Equal(t, video.RatingFree, v.Rating())
	assert.Equal(t, 1, v.Version())
	assert.Equal(t, []string{"c1"}, v.Categories())
	assert.Equal(t, []string{"g1"}, v.Genres())
	assert.Equal(t, []string{"m1", "m2"}, v.CastMembers())
	assert.Nil(t, v.Video())
	assert.Nil(t, v.Trailer())
	assert.Nil(t, v.Banner())
	assert.Empty(t, v.Events())
}

func TestNewVideo_FieldViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*video.Attributes)
		field   string
		message string
	}{
		{
			name:    "empty title",
			mutate:  func(a *video.Attributes) { a.Title = "" },
			field:   "title",
			message: "should not be empty",
		},
		{
			name:    "blank title",
			mutate:  func(a *video.Attributes) { a.Title = "   " },
			field:   "title",
			message: "should not be empty",
		},
		{
			name:    "title too long",
			mutate:  func(a *video.Attributes) { a.Title = strings.Repeat("a", 256) },
			field:   "title",
			message: "must be between 1 and 255 characters",
		},
		{
			name:    "empty description",
			mutate:  func(a *video.Attributes) { a.Description = "" },
			field:   "description",
			message: "should not be empty",
		},
		{
			name:    "description too long",
			mutate:  func(a *video.Attributes) { a.Description = strings.Repeat("a", 4001) },
			field:   "description",
			message: "must be between 1 and 4000 characters",
		},
		{
			name:    "missing launch year",
			mutate:  func(a *video.Attributes) { a.LaunchedAt = 0 },
			field:   "launchedAt",
			message: "is required",
		},
		{
			name:    "missing rating",
			mutate:  func(a *video.Attributes) { a.Rating = "" },
			field:   "rating",
			message: "is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := validAttributes()
			tt.mutate(&attrs)

			v, err := video.NewVideo(attrs)
			require.Error(t, err)
			assert.Nil(t, v)

			var verr *video.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Violations, 1)
			assert.Equal(t, tt.field, verr.Violations[0].Field)
			assert.Equal(t, tt.message, verr.Violations[0].Message)
		})
	}
}

func TestNewVideo_CollectsAllViolations(t *testing.T) {
	attrs := validAttributes()
	attrs.Title = ""
	attrs.Description = ""
	attrs.LaunchedAt = 0
	attrs.Rating = ""

	_, err := video.NewVideo(attrs)
	require.Error(t, err)

	var verr *video.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 4)
}

func TestNewVideo_TitleAtBoundaryIsValid(t *testing.T) {
	attrs := validAttributes()
	attrs.Title = strings.Repeat("a", 255)

	_, err := video.NewVideo(attrs)
	assert.NoError(t, err)
}

func TestNewVideo_NormalizesReferenceSets(t *testing.T) {
	attrs := validAttributes()
	attrs.Categories = nil
	attrs.Genres = []string{"g1", "g2", "g1", "g2"}

	v, err := video.NewVideo(attrs)
	require.NoError(t, err)

	assert.NotNil(t, v.Categories())
	assert.Empty(t, v.Categories())
	assert.Equal(t, []string{"g1", "g2"}, v.Genres())
}

func TestUpdate_ReplacesFieldsAndBumpsUpdatedAt(t *testing.T) {
	v, err := video.NewVideo(validAttributes())
	require.NoError(t, err)
	before := v.UpdatedAt()

	attrs := validAttributes()
	attrs.Title = "Renamed"
	attrs.Categories = []string{"c9"}
	require.NoError(t, v.Update(attrs))

	assert.Equal(t, "Renamed", v.Title())
	assert.Equal(t, []string{"c9"}, v.Categories())
	assert.False(t, v.UpdatedAt().Before(before))
}

func TestUpdate_InvalidAttributesLeaveVideoUnchanged(t *testing.T) {
	v, err := video.NewVideo(validAttributes())
	require.NoError(t, err)

	attrs := validAttributes()
	attrs.Title = ""
	require.Error(t, v.Update(attrs))

	assert.Equal(t, "System Design Interviews", v.Title())
}

func TestAttachImage(t *testing.T) {
	v, err := video.NewVideo(validAttributes())
	require.NoError(t, err)

	banner := video.NewImageMedia("abc", "banner.png", "images/banner.png")
	require.NoError(t, v.AttachImage(video.MediaTypeBanner, banner))
	require.NotNil(t, v.Banner())
	assert.True(t, v.Banner().Equals(banner))

	// Image slots never register events.
	assert.Empty(t, v.Events())

	err = v.AttachImage(video.MediaTypeVideo, banner)
	assert.Error(t, err)
}

func TestAttachAudioVideo_PendingRegistersMediaCreated(t *testing.T) {
	v, err := video.NewVideo(validAttributes())
	require.NoError(t, err)

	m := video.NewAudioVideoMedia("res-1", "abc", "movie.mp4", "raw/movie.mp4")
	require.NoError(t, v.AttachAudioVideo(video.MediaTypeVideo, m))

	events := v.Events()
	require.Len(t, events, 1)
	created, ok := events[0].(video.MediaCreated)
	require.True(t, ok)
	assert.Equal(t, video.EventTypeMediaCreated, created.EventType())
	assert.Equal(t, v.ID().String(), created.ResourceID)
	assert.Equal(t, "raw/movie.mp4", created.FilePath)
}

func TestAttachAudioVideo_EncodedAssetRegistersNoEvent(t *testing.T) {
	v, err := video.NewVideo(validAttributes())
	require.NoError(t, err)

	m := video.NewAudioVideoMedia("res-1", "abc", "movie.mp4", "raw/movie.mp4")
	completed, err := m.Completed("encoded/movie.mp4")
	require.NoError(t, err)

	require.NoError(t, v.AttachAudioVideo(video.MediaTypeTrailer, completed))
	assert.Empty(t, v.Events())
}

func TestDrainEvents_ClearsPendingEvents(t *testing.T) {
	v, err := video.NewVideo(validAttributes())
	require.NoError(t, err)

	m := video.NewAudioVideoMedia("res-1", "abc", "movie.mp4", "raw/movie.mp4")
	require.NoError(t, v.AttachAudioVideo(video.MediaTypeVideo, m))

	drained := v.DrainEvents()
	assert.Len(t, drained, 1)
	assert.Empty(t, v.Events())
	assert.Empty(t, v.DrainEvents())
}

func TestApplyEncodeProgress_Processing(t *testing.T) {
	v, err := video.NewVideo(validAttributes())
	require.NoError(t, err)

	m := video.NewAudioVideoMedia("res-1", "abc", "movie.mp4", "raw/movie.mp4")
	require.NoError(t, v.AttachAudioVideo(video.MediaTypeVideo, m))
	v.DrainEvents()

	require.NoError(t, v.ApplyEncodeProgress(video.MediaTypeVideo, video.MediaStatusProcessing, ""))
	require.NotNil(t, v.Video())
	assert.Equal(t, video.MediaStatusProcessing, v.Video().Status)

	// A processing asset is no longer pending, no new event.
	assert.Empty(t, v.Events())
}

func TestApplyEncodeProgress_Completed(t *testing.T) {
	v, err := video.NewVideo(validAttributes())
	require.NoError(t, err)

	m := video.NewAudioVideoMedia("res-1", "abc", "trailer.mp4", "raw/trailer.mp4")
	require.NoError(t, v.AttachAudioVideo(video.MediaTypeTrailer, m))

	require.NoError(t, v.ApplyEncodeProgress(video.MediaTypeTrailer, video.MediaStatusCompleted, "encoded/trailer.mp4"))
	require.NotNil(t, v.Trailer())
	assert.Equal(t, video.MediaStatusCompleted, v.Trailer().Status)
	assert.Equal(t, "encoded/trailer.mp4", v.Trailer().EncodedLocation)
}

func TestApplyEncodeProgress_PendingIsNoOp(t *testing.T) {
	v, err := video.NewVideo(validAttributes())
	require.NoError(t, err)

	m := video.NewAudioVideoMedia("res-1", "abc", "movie.mp4", "raw/movie.mp4")
	require.NoError(t, v.AttachAudioVideo(video.MediaTypeVideo, m))

	require.NoError(t, v.ApplyEncodeProgress(video.MediaTypeVideo, video.MediaStatusPending, ""))
	assert.Equal(t, video.MediaStatusPending, v.Video().Status)
}

func TestApplyEncodeProgress_EmptySlotIsNoOp(t *testing.T) {
	v, err := video.NewVideo(validAttributes())
	require.NoError(t, err)

	assert.NoError(t, v.ApplyEncodeProgress(video.MediaTypeVideo, video.MediaStatusCompleted, "encoded/movie.mp4"))
	assert.Nil(t, v.Video())
}

func TestApplyEncodeProgress_RejectsImageSlots(t *testing.T) {
	v, err := video.NewVideo(validAttributes())
	require.NoError(t, err)

	err = v.ApplyEncodeProgress(video.MediaTypeBanner, video.MediaStatusCompleted, "x")
	assert.Error(t, err)
}

func TestApplyEncodeProgress_GuardedTransitions(t *testing.T) {
	v, err := video.NewVideo(validAttributes())
	require.NoError(t, err)

	m := video.NewAudioVideoMedia("res-1", "abc", "movie.mp4", "raw/movie.mp4")
	require.NoError(t, v.AttachAudioVideo(video.MediaTypeVideo, m))
	require.NoError(t, v.ApplyEncodeProgress(video.MediaTypeVideo, video.MediaStatusCompleted, "encoded/movie.mp4"))

	// COMPLETED is terminal.
	assert.Error(t, v.ApplyEncodeProgress(video.MediaTypeVideo, video.MediaStatusProcessing, ""))
	assert.Error(t, v.ApplyEncodeProgress(video.MediaTypeVideo, video.MediaStatusCompleted, "encoded/again.mp4"))
}

func TestFromSnapshot_RoundTrip(t *testing.T) {
	v, err := video.NewVideo(validAttributes())
	require.NoError(t, err)

	m := video.NewAudioVideoMedia("res-1", "abc", "movie.mp4", "raw/movie.mp4")
	require.NoError(t, v.AttachAudioVideo(video.MediaTypeVideo, m))

	restored := video.FromSnapshot(video.Snapshot{
		ID:          v.ID(),
		Title:       v.Title(),
		Description: v.Description(),
		LaunchedAt:  v.LaunchedAt(),
		Duration:    v.Duration(),
		Opened:      v.Opened(),
		Published:   v.Published(),
		Rating:      v.Rating(),
		Version:     v.Version(),
		CreatedAt:   v.CreatedAt(),
		UpdatedAt:   v.UpdatedAt(),
		Video:       v.Video(),
		Categories:  v.Categories(),
		Genres:      v.Genres(),
		CastMembers: v.CastMembers(),
	})

	assert.Equal(t, v.ID(), restored.ID())
	assert.Equal(t, v.Title(), restored.Title())
	assert.Equal(t, v.Version(), restored.Version())
	require.NotNil(t, restored.Video())
	assert.True(t, restored.Video().Equals(*v.Video()))

	// Events are transient and never restored.
	assert.Empty(t, restored.Events())
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		input string
		want  video.Rating
		ok    bool
	}{
		{"ER", video.RatingER, true},
		{"L", video.RatingFree, true},
		{"l", video.RatingFree, true},
		{"10", video.RatingAge10, true},
		{"18", video.RatingAge18, true},
		{"NC-17", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := video.ParseRating(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
