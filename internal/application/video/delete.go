package video

import (
	"context"

	"github.com/google/uuid"

	"github.com/dotflix/catalog/pkg/errors"
	"github.com/dotflix/catalog/pkg/logger"
)

// DeleteVideo removes one catalog title and clears every media asset stored
// for it. Asset cleanup is best effort; a cleanup failure does not fail the
// deletion.
func (s *Service) DeleteVideo(ctx context.Context, id string) error {
	videoID, err := uuid.Parse(id)
	if err != nil {
		return errors.Validationf("invalid video id %q", id)
	}

	if err := s.videos.Delete(ctx, videoID); err != nil {
		return err
	}

	if err := s.storage.ClearResources(ctx, videoID); err != nil {
		s.logger.Warn("media cleanup failed after delete",
			logger.String("video_id", videoID.String()),
			logger.Error(err))
	}

	s.logger.Info("video deleted", logger.String("video_id", videoID.String()))
	return nil
}
