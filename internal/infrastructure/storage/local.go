// Package storage provides the media storage backends: a local filesystem
// implementation for development and an S3 implementation for production.
// Assets are keyed by video id and media slot; each payload is stored next
// to a small metadata document so the original name, checksum and content
// type survive a round trip.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dotflix/catalog/internal/domain/video"
	"github.com/dotflix/catalog/pkg/errors"
	"github.com/dotflix/catalog/pkg/logger"
)

type resourceMeta struct {
	Name        string `json:"name"`
	Checksum    string `json:"checksum"`
	ContentType string `json:"content_type"`
}

// LocalMediaStorage stores media assets on the local filesystem.
type LocalMediaStorage struct {
	basePath string
	logger   logger.Logger
}

// NewLocalMediaStorage creates a filesystem-backed media storage rooted at
// basePath.
func NewLocalMediaStorage(basePath string, log logger.Logger) (*LocalMediaStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage base path: %w", err)
	}
	return &LocalMediaStorage{
		basePath: basePath,
		logger:   log.Named("local-storage"),
	}, nil
}

// StoreAudioVideo stores one audio/video payload and returns the asset in
// PENDING encode state.
func (s *LocalMediaStorage) StoreAudioVideo(ctx context.Context, videoID uuid.UUID, res video.VideoResource) (video.AudioVideoMedia, error) {
	location, err := s.write(videoID, res)
	if err != nil {
		return video.AudioVideoMedia{}, err
	}
	return video.NewAudioVideoMedia(uuid.NewString(), res.Resource.Checksum, res.Resource.Name, location), nil
}

// StoreImage stores one image payload.
func (s *LocalMediaStorage) StoreImage(ctx context.Context, videoID uuid.UUID, res video.VideoResource) (video.ImageMedia, error) {
	location, err := s.write(videoID, res)
	if err != nil {
		return video.ImageMedia{}, err
	}
	return video.NewImageMedia(res.Resource.Checksum, res.Resource.Name, location), nil
}

// GetResource reads back the payload stored for one slot.
func (s *LocalMediaStorage) GetResource(ctx context.Context, videoID uuid.UUID, t video.MediaType) (*video.Resource, error) {
	path := s.path(videoID, t)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("no %s resource stored for video %s", t, videoID)
		}
		return nil, fmt.Errorf("reading resource: %w", err)
	}

	meta := resourceMeta{}
	if raw, err := os.ReadFile(path + ".meta.json"); err == nil {
		_ = json.Unmarshal(raw, &meta)
	}

	return &video.Resource{
		Name:        meta.Name,
		Checksum:    meta.Checksum,
		ContentType: meta.ContentType,
		Content:     content,
	}, nil
}

// ClearResources removes every asset stored for the video. Idempotent.
func (s *LocalMediaStorage) ClearResources(ctx context.Context, videoID uuid.UUID) error {
	dir := filepath.Join(s.basePath, videoID.String())
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clearing resources for video %s: %w", videoID, err)
	}
	return nil
}

func (s *LocalMediaStorage) path(videoID uuid.UUID, t video.MediaType) string {
	return filepath.Join(s.basePath, videoID.String(), strings.ToLower(string(t)))
}

func (s *LocalMediaStorage) write(videoID uuid.UUID, res video.VideoResource) (string, error) {
	path := s.path(videoID, res.Type)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating resource directory: %w", err)
	}

	if err := os.WriteFile(path, res.Resource.Content, 0o644); err != nil {
		return "", fmt.Errorf("writing resource: %w", err)
	}

	meta, err := json.Marshal(resourceMeta{
		Name:        res.Resource.Name,
		Checksum:    res.Resource.Checksum,
		ContentType: res.Resource.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling resource metadata: %w", err)
	}
	if err := os.WriteFile(path+".meta.json", meta, 0o644); err != nil {
		return "", fmt.Errorf("writing resource metadata: %w", err)
	}

	s.logger.Debug("resource stored",
		logger.String("video_id", videoID.String()),
		logger.String("media_type", res.Type.String()))
	return path, nil
}
