package storage

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/dotflix/catalog/internal/domain/video"
	"github.com/dotflix/catalog/pkg/config"
	"github.com/dotflix/catalog/pkg/errors"
	"github.com/dotflix/catalog/pkg/logger"
)

const (
	metaName     = "resource-name"
	metaChecksum = "resource-checksum"
)

// S3MediaStorage stores media assets in an S3 bucket. Object keys follow
// <prefix>/<videoID>/<media type>.
type S3MediaStorage struct {
	client *s3.Client
	bucket string
	prefix string
	logger logger.Logger
}

// NewS3MediaStorage creates an S3-backed media storage using the default
// AWS credential chain.
func NewS3MediaStorage(ctx context.Context, cfg config.S3Config, log logger.Logger) (*S3MediaStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return &S3MediaStorage{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		logger: log.Named("s3-storage"),
	}, nil
}

func (s *S3MediaStorage) StoreAudioVideo(ctx context.Context, videoID uuid.UUID, res video.VideoResource) (video.AudioVideoMedia, error) {
	key, err := s.put(ctx, videoID, res)
	if err != nil {
		return video.AudioVideoMedia{}, err
	}
	return video.NewAudioVideoMedia(uuid.NewString(), res.Resource.Checksum, res.Resource.Name, key), nil
}

func (s *S3MediaStorage) StoreImage(ctx context.Context, videoID uuid.UUID, res video.VideoResource) (video.ImageMedia, error) {
	key, err := s.put(ctx, videoID, res)
	if err != nil {
		return video.ImageMedia{}, err
	}
	return video.NewImageMedia(res.Resource.Checksum, res.Resource.Name, key), nil
}

func (s *S3MediaStorage) GetResource(ctx context.Context, videoID uuid.UUID, t video.MediaType) (*video.Resource, error) {
	key := s.key(videoID, t)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if stderrors.As(err, &noKey) {
			return nil, errors.NotFoundf("no %s resource stored for video %s", t, videoID)
		}
		return nil, fmt.Errorf("getting object %s: %w", key, err)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading object %s: %w", key, err)
	}

	return &video.Resource{
		Name:        out.Metadata[metaName],
		Checksum:    out.Metadata[metaChecksum],
		ContentType: aws.ToString(out.ContentType),
		Content:     content,
	}, nil
}

// ClearResources deletes every object stored under the video's prefix.
// Idempotent, a video with no stored objects clears successfully.
func (s *S3MediaStorage) ClearResources(ctx context.Context, videoID uuid.UUID) error {
	prefix := s.videoPrefix(videoID)

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("listing objects for video %s: %w", videoID, err)
		}
		if len(page.Contents) == 0 {
			continue
		}

		objects := make([]types.ObjectIdentifier, 0, len(page.Contents))
		for _, obj := range page.Contents {
			objects = append(objects, types.ObjectIdentifier{Key: obj.Key})
		}

		_, err = s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
		})
		if err != nil {
			return fmt.Errorf("deleting objects for video %s: %w", videoID, err)
		}
	}

	s.logger.Debug("resources cleared", logger.String("video_id", videoID.String()))
	return nil
}

func (s *S3MediaStorage) videoPrefix(videoID uuid.UUID) string {
	if s.prefix == "" {
		return videoID.String() + "/"
	}
	return s.prefix + "/" + videoID.String() + "/"
}

func (s *S3MediaStorage) key(videoID uuid.UUID, t video.MediaType) string {
	return s.videoPrefix(videoID) + strings.ToLower(string(t))
}

func (s *S3MediaStorage) put(ctx context.Context, videoID uuid.UUID, res video.VideoResource) (string, error) {
	key := s.key(videoID, res.Type)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(res.Resource.Content),
		ContentType: aws.String(res.Resource.ContentType),
		Metadata: map[string]string{
			metaName:     res.Resource.Name,
			metaChecksum: res.Resource.Checksum,
		},
	})
	if err != nil {
		return "", fmt.Errorf("putting object %s: %w", key, err)
	}

	s.logger.Debug("resource stored",
		logger.String("video_id", videoID.String()),
		logger.String("media_type", res.Type.String()),
		logger.String("key", key))
	return key, nil
}
