package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	appvideo "github.com/dotflix/catalog/internal/application/video"
	"github.com/dotflix/catalog/internal/domain/video"
	"github.com/dotflix/catalog/internal/infrastructure/events/kafka"
	"github.com/dotflix/catalog/internal/infrastructure/events/nats"
	"github.com/dotflix/catalog/internal/infrastructure/repository"
	"github.com/dotflix/catalog/internal/infrastructure/storage"
	"github.com/dotflix/catalog/pkg/config"
	"github.com/dotflix/catalog/pkg/database"
	"github.com/dotflix/catalog/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log := logger.MustNew(logger.Options{
		Level:       cfg.Logger.Level,
		Development: cfg.Logger.Development,
	})
	defer log.Sync()

	log.Info("catalog service starting",
		logger.String("environment", cfg.Service.Environment))

	db, err := database.NewGormDB(cfg.Database)
	if err != nil {
		log.Error("connecting to database", logger.Error(err))
		os.Exit(1)
	}

	err = db.AutoMigrate(
		&repository.VideoModel{},
		&repository.CategoryModel{},
		&repository.GenreModel{},
		&repository.CastMemberModel{},
	)
	if err != nil {
		log.Error("running migrations", logger.Error(err))
		os.Exit(1)
	}

	natsClient, natsCleanup, err := nats.NewClient(cfg.NATS, log)
	if err != nil {
		log.Error("connecting to nats", logger.Error(err))
		os.Exit(1)
	}
	defer natsCleanup()

	publisher := nats.NewPublisher(natsClient, cfg.NATS.SubjectPrefix, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mediaStorage, err := newMediaStorage(ctx, cfg.Storage, log)
	if err != nil {
		log.Error("initializing media storage", logger.Error(err))
		os.Exit(1)
	}

	videos := repository.NewVideoRepository(db, publisher, log)
	categories := repository.NewCategoryRepository(db)
	genres := repository.NewGenreRepository(db)
	castMembers := repository.NewCastMemberRepository(db)

	service := appvideo.NewService(videos, mediaStorage, categories, genres, castMembers, log)

	consumer, err := kafka.NewEncoderConsumer(cfg.Encoder, service, log)
	if err != nil {
		log.Error("creating encoder consumer", logger.Error(err))
		os.Exit(1)
	}
	defer consumer.Close()

	log.Info("consuming encoder callbacks",
		logger.String("topic", cfg.Encoder.Topic),
		logger.String("group_id", cfg.Encoder.GroupID))

	if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
		log.Error("encoder consumer stopped", logger.Error(err))
		os.Exit(1)
	}

	log.Info("catalog service stopped")
}

func newMediaStorage(ctx context.Context, cfg config.StorageConfig, log logger.Logger) (video.MediaStorage, error) {
	if cfg.Type == "s3" {
		return storage.NewS3MediaStorage(ctx, cfg.S3, log)
	}
	return storage.NewLocalMediaStorage(cfg.LocalPath, log)
}
