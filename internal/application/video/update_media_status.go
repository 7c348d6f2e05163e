package video

import (
	"context"

	"github.com/google/uuid"

	"github.com/dotflix/catalog/internal/domain/video"
	"github.com/dotflix/catalog/pkg/errors"
	"github.com/dotflix/catalog/pkg/logger"
)

// MediaStatusOutcome tells an encoder callback what happened to its report.
type MediaStatusOutcome string

const (
	// MediaStatusApplied means the report matched an asset and was applied.
	MediaStatusApplied MediaStatusOutcome = "applied"
	// MediaStatusNoMatch means the resource id matched neither the VIDEO
	// nor the TRAILER asset; nothing was mutated or persisted. Surfaced so
	// encoders can detect stale or misrouted callbacks.
	MediaStatusNoMatch MediaStatusOutcome = "no_match"
)

// UpdateMediaStatus applies an external encoder's progress report to a
// stored title. The resource id is matched against the VIDEO asset first,
// then the TRAILER asset; first match wins. A PENDING report is accepted but
// produces no state change, since PENDING is only ever the initial state.
func (s *Service) UpdateMediaStatus(ctx context.Context, cmd UpdateMediaStatusCommand) (MediaStatusOutcome, error) {
	status, ok := video.ParseMediaStatus(cmd.Status)
	if !ok {
		return "", errors.Validationf("unknown media status %q", cmd.Status)
	}

	videoID, err := uuid.Parse(cmd.VideoID)
	if err != nil {
		return "", errors.Validationf("invalid video id %q", cmd.VideoID)
	}

	v, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return "", err
	}

	encodedPath := cmd.Folder + "/" + cmd.Filename

	var mediaType video.MediaType
	switch {
	case matchesAsset(cmd.ResourceID, v.Video()):
		mediaType = video.MediaTypeVideo
	case matchesAsset(cmd.ResourceID, v.Trailer()):
		mediaType = video.MediaTypeTrailer
	default:
		s.logger.Warn("encoder callback matched no asset",
			logger.String("video_id", cmd.VideoID),
			logger.String("resource_id", cmd.ResourceID),
			logger.String("status", cmd.Status))
		return MediaStatusNoMatch, nil
	}

	if err := v.ApplyEncodeProgress(mediaType, status, encodedPath); err != nil {
		return "", errors.Wrap(errors.KindConflict, "encode status transition rejected", err)
	}

	if _, err := s.videos.Update(ctx, v); err != nil {
		return "", err
	}

	s.logger.Info("encode status applied",
		logger.String("video_id", cmd.VideoID),
		logger.String("media_type", mediaType.String()),
		logger.String("status", status.String()))
	return MediaStatusApplied, nil
}

// matchesAsset reports whether the callback's resource id identifies the
// given asset. An absent asset never matches.
func matchesAsset(resourceID string, m *video.AudioVideoMedia) bool {
	return m != nil && m.ID == resourceID
}
