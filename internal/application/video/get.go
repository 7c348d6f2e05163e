package video

import (
	"context"

	"github.com/google/uuid"

	"github.com/dotflix/catalog/internal/domain/video"
	"github.com/dotflix/catalog/pkg/errors"
)

// GetVideo loads one catalog title by id.
func (s *Service) GetVideo(ctx context.Context, id string) (*video.Video, error) {
	videoID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Validationf("invalid video id %q", id)
	}
	return s.videos.FindByID(ctx, videoID)
}
