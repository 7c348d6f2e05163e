// Package kafka consumes encoder progress callbacks. The external video
// encoder reports transcode progress on a Kafka topic; each message is
// translated into a media status update on the owning title.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	appvideo "github.com/dotflix/catalog/internal/application/video"
	"github.com/dotflix/catalog/pkg/config"
	"github.com/dotflix/catalog/pkg/errors"
	"github.com/dotflix/catalog/pkg/logger"
)

// EncoderCallback is the wire format of an encoder progress message.
type EncoderCallback struct {
	Status     string `json:"status"`
	VideoID    string `json:"video_id"`
	ResourceID string `json:"resource_id"`
	Folder     string `json:"folder"`
	Filename   string `json:"filename"`
}

// MediaStatusUpdater is the slice of the video service the consumer needs.
type MediaStatusUpdater interface {
	UpdateMediaStatus(ctx context.Context, cmd appvideo.UpdateMediaStatusCommand) (appvideo.MediaStatusOutcome, error)
}

// EncoderConsumer reads encoder callbacks from Kafka and applies them.
type EncoderConsumer struct {
	group   sarama.ConsumerGroup
	topic   string
	updater MediaStatusUpdater
	logger  logger.Logger
}

// NewEncoderConsumer creates a consumer group for the encoder callback topic.
func NewEncoderConsumer(cfg config.EncoderConfig, updater MediaStatusUpdater, log logger.Logger) (*EncoderConsumer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Consumer.Return.Errors = true
	saramaCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("creating consumer group: %w", err)
	}

	return &EncoderConsumer{
		group:   group,
		topic:   cfg.Topic,
		updater: updater,
		logger:  log.Named("encoder-consumer"),
	}, nil
}

// Start consumes until the context is canceled. Blocking.
func (c *EncoderConsumer) Start(ctx context.Context) error {
	topics := []string{c.topic}

	for {
		if err := c.group.Consume(ctx, topics, c); err != nil {
			return fmt.Errorf("consuming encoder callbacks: %w", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// ConsumeClaim implements sarama.ConsumerGroupHandler. Malformed or invalid
// messages are logged and marked so a poison message cannot wedge the
// partition; infrastructure failures are returned to trigger redelivery.
func (c *EncoderConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		var callback EncoderCallback
		if err := json.Unmarshal(message.Value, &callback); err != nil {
			c.logger.Warn("discarding malformed encoder callback",
				logger.Int("partition", int(message.Partition)),
				logger.Error(err))
			session.MarkMessage(message, "")
			continue
		}

		outcome, err := c.updater.UpdateMediaStatus(session.Context(), appvideo.UpdateMediaStatusCommand{
			VideoID:    callback.VideoID,
			ResourceID: callback.ResourceID,
			Status:     callback.Status,
			Folder:     callback.Folder,
			Filename:   callback.Filename,
		})
		if err != nil {
			if errors.IsValidation(err) || errors.IsNotFound(err) || errors.IsConflict(err) {
				c.logger.Warn("discarding unprocessable encoder callback",
					logger.String("video_id", callback.VideoID),
					logger.String("resource_id", callback.ResourceID),
					logger.Error(err))
				session.MarkMessage(message, "")
				continue
			}
			return fmt.Errorf("applying encoder callback: %w", err)
		}

		if outcome == appvideo.MediaStatusNoMatch {
			c.logger.Warn("encoder callback matched no asset",
				logger.String("video_id", callback.VideoID),
				logger.String("resource_id", callback.ResourceID))
		}

		session.MarkMessage(message, "")
	}

	return nil
}

// Setup implements sarama.ConsumerGroupHandler.
func (c *EncoderConsumer) Setup(sarama.ConsumerGroupSession) error { return nil }

// Cleanup implements sarama.ConsumerGroupHandler.
func (c *EncoderConsumer) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// Close closes the consumer group.
func (c *EncoderConsumer) Close() error {
	return c.group.Close()
}
