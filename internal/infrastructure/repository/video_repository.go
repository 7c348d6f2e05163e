package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dotflix/catalog/internal/domain/video"
	"github.com/dotflix/catalog/pkg/errors"
	"github.com/dotflix/catalog/pkg/logger"
)

// VideoRepository persists the video aggregate with GORM and dispatches the
// aggregate's drained domain events after a successful write. Dispatch is
// fire and forget: events are not stored, so a crash between the write and
// the dispatch loses them (accepted at-most-once semantics).
type VideoRepository struct {
	db        *gorm.DB
	publisher video.EventPublisher
	logger    logger.Logger
}

// NewVideoRepository creates a video repository.
func NewVideoRepository(db *gorm.DB, publisher video.EventPublisher, log logger.Logger) *VideoRepository {
	return &VideoRepository{
		db:        db,
		publisher: publisher,
		logger:    log.Named("video-repository"),
	}
}

// Create inserts a new video row.
func (r *VideoRepository) Create(ctx context.Context, v *video.Video) (*video.Video, error) {
	model := toVideoModel(v)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("creating video %s: %w", v.ID(), err)
	}

	r.publishEvents(ctx, v)
	return v, nil
}

// Update writes the aggregate with a compare-and-swap on the version column.
// A stale version means a concurrent writer won; the caller gets a conflict
// instead of silently losing its update.
func (r *VideoRepository) Update(ctx context.Context, v *video.Video) (*video.Video, error) {
	model := toVideoModel(v)
	model.Version = v.Version() + 1

	tx := r.db.WithContext(ctx).
		Model(&VideoModel{}).
		Where("id = ? AND version = ?", v.ID(), v.Version()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if tx.Error != nil {
		return nil, fmt.Errorf("updating video %s: %w", v.ID(), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, errors.Conflict(fmt.Sprintf("video %s was modified concurrently", v.ID()))
	}

	v.BumpVersion()
	r.publishEvents(ctx, v)
	return v, nil
}

// FindByID loads one video aggregate.
func (r *VideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*video.Video, error) {
	var model VideoModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFoundf("video with id %s was not found", id)
		}
		return nil, fmt.Errorf("finding video %s: %w", id, err)
	}
	return model.toDomain(), nil
}

// Delete removes one video row. Deleting an absent id is a no-op.
func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&VideoModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting video %s: %w", id, err)
	}
	return nil
}

func (r *VideoRepository) publishEvents(ctx context.Context, v *video.Video) {
	for _, event := range v.DrainEvents() {
		if err := r.publisher.PublishEvent(ctx, event); err != nil {
			r.logger.Error("domain event publish failed",
				logger.String("video_id", v.ID().String()),
				logger.String("event_type", event.EventType()),
				logger.Error(err))
		}
	}
}
