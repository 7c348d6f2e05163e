package video

import (
	"context"

	"github.com/google/uuid"

	"github.com/dotflix/catalog/internal/domain/video"
	"github.com/dotflix/catalog/pkg/errors"
	"github.com/dotflix/catalog/pkg/logger"
)

// UploadMedia stores one payload for an existing title, attaches the stored
// asset to its slot and persists the aggregate.
func (s *Service) UploadMedia(ctx context.Context, cmd UploadMediaCommand) (*video.Video, error) {
	videoID, err := uuid.Parse(cmd.VideoID)
	if err != nil {
		return nil, errors.Validationf("invalid video id %q", cmd.VideoID)
	}

	v, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if cmd.Resource.Type.IsAudioVideo() {
		stored, err := s.storage.StoreAudioVideo(ctx, videoID, cmd.Resource)
		if err != nil {
			return nil, err
		}
		if err := v.AttachAudioVideo(cmd.Resource.Type, stored); err != nil {
			return nil, err
		}
	} else {
		stored, err := s.storage.StoreImage(ctx, videoID, cmd.Resource)
		if err != nil {
			return nil, err
		}
		if err := v.AttachImage(cmd.Resource.Type, stored); err != nil {
			return nil, err
		}
	}

	updated, err := s.videos.Update(ctx, v)
	if err != nil {
		return nil, err
	}

	s.logger.Info("media uploaded",
		logger.String("video_id", videoID.String()),
		logger.String("media_type", cmd.Resource.Type.String()))
	return updated, nil
}
