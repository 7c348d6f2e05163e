package video

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 4000
)

// Video is the catalog title aggregate: descriptive fields, three reference
// sets, five media slots and the list of not-yet-published domain events.
// One Video instance is never shared across goroutines; every use-case run
// loads or constructs its own.
type Video struct {
	id          uuid.UUID
	title       string
	description string
	launchedAt  int
	duration    float64
	rating      Rating
	opened      bool
	published   bool

	createdAt time.Time
	updatedAt time.Time
	version   int

	banner        *ImageMedia
	thumbnail     *ImageMedia
	thumbnailHalf *ImageMedia
	trailer       *AudioVideoMedia
	video         *AudioVideoMedia

	categories  []string
	genres      []string
	castMembers []string

	events []Event
}

// Attributes are the descriptive fields and reference sets supplied on
// construction and on a full update.
type Attributes struct {
	Title       string
	Description string
	LaunchedAt  int
	Duration    float64
	Opened      bool
	Published   bool
	Rating      Rating
	Categories  []string
	Genres      []string
	CastMembers []string
}

func (a Attributes) validate() error {
	verr := &ValidationError{}

	title := strings.TrimSpace(a.Title)
	switch {
	case title == "":
		verr.add("title", "should not be empty")
	case utf8.RuneCountInString(title) > maxTitleLength:
		verr.add("title", fmt.Sprintf("must be between 1 and %d characters", maxTitleLength))
	}

	description := strings.TrimSpace(a.Description)
	switch {
	case description == "":
		verr.add("description", "should not be empty")
	case utf8.RuneCountInString(description) > maxDescriptionLength:
		verr.add("description", fmt.Sprintf("must be between 1 and %d characters", maxDescriptionLength))
	}

	if a.LaunchedAt == 0 {
		verr.add("launchedAt", "is required")
	}

	switch {
	case a.Rating == "":
		verr.add("rating", "is required")
	case !a.Rating.Valid():
		verr.add("rating", fmt.Sprintf("%q is not a known rating", string(a.Rating)))
	}

	if verr.hasViolations() {
		return verr
	}
	return nil
}

// NewVideo constructs a video with a fresh identity, current timestamps and
// empty media slots. Field invariants are checked eagerly; on violation no
// aggregate is returned.
func NewVideo(attrs Attributes) (*Video, error) {
	if err := attrs.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	v := &Video{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
		version:   1,
	}
	v.assign(attrs)
	return v, nil
}

// Snapshot is the flattened persistent state of a video, used to rebuild the
// aggregate from storage.
type Snapshot struct {
	ID            uuid.UUID
	Title         string
	Description   string
	LaunchedAt    int
	Duration      float64
	Opened        bool
	Published     bool
	Rating        Rating
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Banner        *ImageMedia
	Thumbnail     *ImageMedia
	ThumbnailHalf *ImageMedia
	Trailer       *AudioVideoMedia
	Video         *AudioVideoMedia
	Categories    []string
	Genres        []string
	CastMembers   []string
}

// FromSnapshot rebuilds a video from stored state. Stored state is trusted
// and not re-validated.
func FromSnapshot(s Snapshot) *Video {
	return &Video{
		id:            s.ID,
		title:         s.Title,
		description:   s.Description,
		launchedAt:    s.LaunchedAt,
		duration:      s.Duration,
		opened:        s.Opened,
		published:     s.Published,
		rating:        s.Rating,
		version:       s.Version,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		banner:        s.Banner,
		thumbnail:     s.Thumbnail,
		thumbnailHalf: s.ThumbnailHalf,
		trailer:       s.Trailer,
		video:         s.Video,
		categories:    normalizeIDs(s.Categories),
		genres:        normalizeIDs(s.Genres),
		castMembers:   normalizeIDs(s.CastMembers),
	}
}

// Update replaces the descriptive fields and reference sets, re-validating
// every field invariant first. Media slots are untouched. On violation the
// aggregate is left unchanged.
func (v *Video) Update(attrs Attributes) error {
	if err := attrs.validate(); err != nil {
		return err
	}
	v.assign(attrs)
	v.updatedAt = time.Now()
	return nil
}

func (v *Video) assign(attrs Attributes) {
	v.title = attrs.Title
	v.description = attrs.Description
	v.launchedAt = attrs.LaunchedAt
	v.duration = attrs.Duration
	v.opened = attrs.Opened
	v.published = attrs.Published
	v.rating = attrs.Rating
	v.categories = normalizeIDs(attrs.Categories)
	v.genres = normalizeIDs(attrs.Genres)
	v.castMembers = normalizeIDs(attrs.CastMembers)
}

// AttachImage replaces one image slot. Only BANNER, THUMBNAIL and
// THUMBNAIL_HALF carry images.
func (v *Video) AttachImage(t MediaType, m ImageMedia) error {
	switch t {
	case MediaTypeBanner:
		v.banner = &m
	case MediaTypeThumbnail:
		v.thumbnail = &m
	case MediaTypeThumbnailHalf:
		v.thumbnailHalf = &m
	default:
		return fmt.Errorf("media type %s does not carry an image", t)
	}
	v.updatedAt = time.Now()
	return nil
}

// AttachAudioVideo replaces the VIDEO or TRAILER slot. Attaching an asset
// that still awaits encoding registers a MediaCreated event.
func (v *Video) AttachAudioVideo(t MediaType, m AudioVideoMedia) error {
	switch t {
	case MediaTypeVideo:
		v.video = &m
	case MediaTypeTrailer:
		v.trailer = &m
	default:
		return fmt.Errorf("media type %s does not carry an audio/video asset", t)
	}
	v.updatedAt = time.Now()

	if m.IsPendingEncode() {
		v.registerEvent(NewMediaCreated(v.id.String(), m.RawLocation))
	}
	return nil
}

// ApplyEncodeProgress drives the encode status of the VIDEO or TRAILER slot.
// PROCESSING sets the status only; COMPLETED additionally records the
// encoded location. PENDING is the initial state, never a transition target,
// and is accepted as a no-op. An empty slot is also a no-op.
func (v *Video) ApplyEncodeProgress(t MediaType, status MediaStatus, encodedPath string) error {
	if !t.IsAudioVideo() {
		return fmt.Errorf("media type %s does not carry an encode status", t)
	}

	current := v.video
	if t == MediaTypeTrailer {
		current = v.trailer
	}
	if current == nil {
		return nil
	}

	switch status {
	case MediaStatusPending:
		return nil
	case MediaStatusProcessing:
		next, err := current.Processing()
		if err != nil {
			return err
		}
		return v.AttachAudioVideo(t, next)
	case MediaStatusCompleted:
		next, err := current.Completed(encodedPath)
		if err != nil {
			return err
		}
		return v.AttachAudioVideo(t, next)
	default:
		return fmt.Errorf("unknown media status %q", string(status))
	}
}

func (v *Video) registerEvent(e Event) {
	v.events = append(v.events, e)
}

// Events returns the pending domain events without clearing them.
func (v *Video) Events() []Event {
	out := make([]Event, len(v.events))
	copy(out, v.events)
	return out
}

// DrainEvents returns the pending domain events in registration order and
// clears the list. Draining is not restartable.
func (v *Video) DrainEvents() []Event {
	out := v.events
	v.events = nil
	return out
}

// BumpVersion advances the optimistic-concurrency token after a successful
// compare-and-swap update.
func (v *Video) BumpVersion() {
	v.version++
}

func (v *Video) ID() uuid.UUID       { return v.id }
func (v *Video) Title() string       { return v.title }
func (v *Video) Description() string { return v.description }
func (v *Video) LaunchedAt() int     { return v.launchedAt }
func (v *Video) Duration() float64   { return v.duration }
func (v *Video) Rating() Rating      { return v.rating }
func (v *Video) Opened() bool        { return v.opened }
func (v *Video) Published() bool     { return v.published }

func (v *Video) CreatedAt() time.Time { return v.createdAt }
func (v *Video) UpdatedAt() time.Time { return v.updatedAt }
func (v *Video) Version() int         { return v.version }

func (v *Video) Banner() *ImageMedia        { return v.banner }
func (v *Video) Thumbnail() *ImageMedia     { return v.thumbnail }
func (v *Video) ThumbnailHalf() *ImageMedia { return v.thumbnailHalf }
func (v *Video) Trailer() *AudioVideoMedia  { return v.trailer }
func (v *Video) Video() *AudioVideoMedia    { return v.video }

// Categories returns the category reference set, never nil.
func (v *Video) Categories() []string { return copyIDs(v.categories) }

// Genres returns the genre reference set, never nil.
func (v *Video) Genres() []string { return copyIDs(v.genres) }

// CastMembers returns the cast member reference set, never nil.
func (v *Video) CastMembers() []string { return copyIDs(v.castMembers) }

// normalizeIDs materializes a reference set: nil becomes empty and
// duplicates are dropped, first occurrence order preserved.
func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func copyIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
