package video

import (
	"context"
	"fmt"

	"github.com/dotflix/catalog/internal/domain/video"
	"github.com/dotflix/catalog/pkg/errors"
	"github.com/dotflix/catalog/pkg/logger"
)

// CreateVideo runs the creation flow: construct the aggregate (field
// invariants abort before any collaborator call), resolve the three
// reference sets, upload the supplied media payloads and persist. Any
// storage or persistence failure triggers best-effort cleanup of the assets
// already stored for the new id.
func (s *Service) CreateVideo(ctx context.Context, cmd CreateVideoCommand) (*video.Video, error) {
	v, err := video.NewVideo(cmd.attributes())
	if err != nil {
		return nil, err
	}

	// The creation flow resolves cast members first; the update flow starts
	// with categories. Both orders are kept as-is for compatibility.
	if err := s.validateReferences(ctx, kindCastMembers, v.CastMembers(), s.castMembers.ExistsByIDs); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, kindGenres, v.Genres(), s.genres.ExistsByIDs); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, kindCategories, v.Categories(), s.categories.ExistsByIDs); err != nil {
		return nil, err
	}

	created, err := s.storeMediaAndPersist(ctx, v, cmd.Media, s.videos.Create)
	if err != nil {
		s.logger.Error("video creation failed, clearing stored media",
			logger.String("video_id", v.ID().String()),
			logger.Error(err))
		if cerr := s.storage.ClearResources(ctx, v.ID()); cerr != nil {
			s.logger.Warn("media cleanup failed",
				logger.String("video_id", v.ID().String()),
				logger.Error(cerr))
		}
		return nil, errors.Wrap(errors.KindInternal,
			fmt.Sprintf("an error was observed creating video [videoId:%s]", v.ID()), err)
	}

	s.logger.Info("video created",
		logger.String("video_id", created.ID().String()),
		logger.String("title", created.Title()))
	return created, nil
}

type persistFunc func(ctx context.Context, v *video.Video) (*video.Video, error)

// storeMediaAndPersist uploads each supplied payload, attaches the stored
// asset to the aggregate (which may register domain events) and persists.
func (s *Service) storeMediaAndPersist(ctx context.Context, v *video.Video, media MediaPayloads, persist persistFunc) (*video.Video, error) {
	audioVideoSlots := []struct {
		t       video.MediaType
		payload *video.Resource
	}{
		{video.MediaTypeVideo, media.Video},
		{video.MediaTypeTrailer, media.Trailer},
	}
	for _, slot := range audioVideoSlots {
		if slot.payload == nil {
			continue
		}
		stored, err := s.storage.StoreAudioVideo(ctx, v.ID(), video.VideoResource{Type: slot.t, Resource: *slot.payload})
		if err != nil {
			return nil, err
		}
		if err := v.AttachAudioVideo(slot.t, stored); err != nil {
			return nil, err
		}
	}

	imageSlots := []struct {
		t       video.MediaType
		payload *video.Resource
	}{
		{video.MediaTypeBanner, media.Banner},
		{video.MediaTypeThumbnail, media.Thumbnail},
		{video.MediaTypeThumbnailHalf, media.ThumbnailHalf},
	}
	for _, slot := range imageSlots {
		if slot.payload == nil {
			continue
		}
		stored, err := s.storage.StoreImage(ctx, v.ID(), video.VideoResource{Type: slot.t, Resource: *slot.payload})
		if err != nil {
			return nil, err
		}
		if err := v.AttachImage(slot.t, stored); err != nil {
			return nil, err
		}
	}

	return persist(ctx, v)
}
