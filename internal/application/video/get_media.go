package video

import (
	"context"

	"github.com/google/uuid"

	"github.com/dotflix/catalog/internal/domain/video"
	"github.com/dotflix/catalog/pkg/errors"
)

// GetMedia fetches the raw payload previously stored for one media slot.
func (s *Service) GetMedia(ctx context.Context, cmd GetMediaCommand) (*video.Resource, error) {
	mediaType, ok := video.ParseMediaType(cmd.MediaType)
	if !ok {
		return nil, errors.NotFoundf("media type %s does not exist", cmd.MediaType)
	}

	videoID, err := uuid.Parse(cmd.VideoID)
	if err != nil {
		return nil, errors.Validationf("invalid video id %q", cmd.VideoID)
	}

	res, err := s.storage.GetResource(ctx, videoID, mediaType)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("a resource with id %s and type %s was not found", cmd.VideoID, cmd.MediaType)
		}
		return nil, err
	}
	return res, nil
}
