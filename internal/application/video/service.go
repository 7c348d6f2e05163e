// Package video contains the use cases driving the video catalog: the
// create/update orchestration over reference validation, media storage and
// persistence, and the encoder status callback handling.
package video

import (
	"github.com/dotflix/catalog/internal/domain/castmember"
	"github.com/dotflix/catalog/internal/domain/category"
	"github.com/dotflix/catalog/internal/domain/genre"
	"github.com/dotflix/catalog/internal/domain/video"
	"github.com/dotflix/catalog/pkg/logger"
)

// Service executes the video use cases. Each call runs synchronously to
// completion on the calling goroutine; collaborator calls are sequential and
// blocking, bounded only by the caller's context.
type Service struct {
	videos      video.Repository
	storage     video.MediaStorage
	categories  category.Repository
	genres      genre.Repository
	castMembers castmember.Repository
	logger      logger.Logger
}

// NewService creates the video use-case service.
func NewService(
	videos video.Repository,
	storage video.MediaStorage,
	categories category.Repository,
	genres genre.Repository,
	castMembers castmember.Repository,
	log logger.Logger,
) *Service {
	return &Service{
		videos:      videos,
		storage:     storage,
		categories:  categories,
		genres:      genres,
		castMembers: castMembers,
		logger:      log.Named("video-service"),
	}
}
