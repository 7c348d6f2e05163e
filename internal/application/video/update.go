package video

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dotflix/catalog/internal/domain/video"
	"github.com/dotflix/catalog/pkg/errors"
	"github.com/dotflix/catalog/pkg/logger"
)

// UpdateVideo runs the update flow: load the aggregate, resolve the three
// reference sets, replace the descriptive fields, upload any supplied media
// payloads and persist. Unlike creation, a failure does not clear stored
// media: the id also owns assets from earlier successful runs.
func (s *Service) UpdateVideo(ctx context.Context, cmd UpdateVideoCommand) (*video.Video, error) {
	id, err := uuid.Parse(cmd.ID)
	if err != nil {
		return nil, errors.Validationf("invalid video id %q", cmd.ID)
	}

	v, err := s.videos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateReferences(ctx, kindCategories, cmd.Categories, s.categories.ExistsByIDs); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, kindGenres, cmd.Genres, s.genres.ExistsByIDs); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, kindCastMembers, cmd.CastMembers, s.castMembers.ExistsByIDs); err != nil {
		return nil, err
	}

	if err := v.Update(cmd.attributes()); err != nil {
		return nil, err
	}

	updated, err := s.storeMediaAndPersist(ctx, v, cmd.Media, s.videos.Update)
	if err != nil {
		s.logger.Error("video update failed",
			logger.String("video_id", v.ID().String()),
			logger.Error(err))
		return nil, errors.Wrap(errors.KindInternal,
			fmt.Sprintf("an error was observed updating video [videoId:%s]", v.ID()), err)
	}

	s.logger.Info("video updated", logger.String("video_id", updated.ID().String()))
	return updated, nil
}
