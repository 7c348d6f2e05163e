package video_test

import (
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	appvideo "github.com/dotflix/catalog/internal/application/video"
	"github.com/dotflix/catalog/internal/domain/video"
	"github.com/dotflix/catalog/pkg/errors"
)

// storedVideoWithMedia loads an aggregate carrying a pending VIDEO asset and
// a pending TRAILER asset, drained of attach events.
func (s *VideoServiceTestSuite) storedVideoWithMedia() *video.Video {
	v := newStoredVideo(s.T())
	s.Require().NoError(v.AttachAudioVideo(video.MediaTypeVideo,
		video.NewAudioVideoMedia("video-res", "abc", "movie.mp4", "raw/movie.mp4")))
	s.Require().NoError(v.AttachAudioVideo(video.MediaTypeTrailer,
		video.NewAudioVideoMedia("trailer-res", "def", "trailer.mp4", "raw/trailer.mp4")))
	v.DrainEvents()
	return v
}

func (s *VideoServiceTestSuite) TestUpdateMediaStatus_CompletesTrailer() {
	v := s.storedVideoWithMedia()
	id := v.ID()

	s.mockVideos.On("FindByID", s.ctx, id).Return(v, nil)

	var persisted *video.Video
	s.mockVideos.On("Update", s.ctx, v).
		Run(func(args mock.Arguments) { persisted = args.Get(1).(*video.Video) }).
		Return(nil, nil)

	outcome, err := s.service.UpdateMediaStatus(s.ctx, appvideo.UpdateMediaStatusCommand{
		VideoID:    id.String(),
		ResourceID: "trailer-res",
		Status:     "COMPLETED",
		Folder:     "encoded",
		Filename:   "trailer.mp4",
	})
	s.Require().NoError(err)
	s.Equal(appvideo.MediaStatusApplied, outcome)

	s.Require().NotNil(persisted)
	s.Require().NotNil(persisted.Trailer())
	s.Equal(video.MediaStatusCompleted, persisted.Trailer().Status)
	s.Equal("encoded/trailer.mp4", persisted.Trailer().EncodedLocation)

	// The VIDEO slot was not the match and stays untouched.
	s.Equal(video.MediaStatusPending, persisted.Video().Status)
}

func (s *VideoServiceTestSuite) TestUpdateMediaStatus_VideoSlotMatchedFirst() {
	v := s.storedVideoWithMedia()
	id := v.ID()

	s.mockVideos.On("FindByID", s.ctx, id).Return(v, nil)
	s.mockVideos.On("Update", s.ctx, v).Return(nil, nil)

	outcome, err := s.service.UpdateMediaStatus(s.ctx, appvideo.UpdateMediaStatusCommand{
		VideoID:    id.String(),
		ResourceID: "video-res",
		Status:     "PROCESSING",
	})
	s.Require().NoError(err)
	s.Equal(appvideo.MediaStatusApplied, outcome)
	s.Equal(video.MediaStatusProcessing, v.Video().Status)
	s.Equal(video.MediaStatusPending, v.Trailer().Status)
}

func (s *VideoServiceTestSuite) TestUpdateMediaStatus_NoMatchIsDistinguishableNoOp() {
	v := s.storedVideoWithMedia()
	id := v.ID()

	s.mockVideos.On("FindByID", s.ctx, id).Return(v, nil)

	outcome, err := s.service.UpdateMediaStatus(s.ctx, appvideo.UpdateMediaStatusCommand{
		VideoID:    id.String(),
		ResourceID: "stale-res",
		Status:     "COMPLETED",
		Folder:     "encoded",
		Filename:   "movie.mp4",
	})
	s.Require().NoError(err)
	s.Equal(appvideo.MediaStatusNoMatch, outcome)

	s.Equal(video.MediaStatusPending, v.Video().Status)
	s.Equal(video.MediaStatusPending, v.Trailer().Status)
	s.mockVideos.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *VideoServiceTestSuite) TestUpdateMediaStatus_PendingReportStillPersists() {
	v := s.storedVideoWithMedia()
	id := v.ID()

	s.mockVideos.On("FindByID", s.ctx, id).Return(v, nil)
	s.mockVideos.On("Update", s.ctx, v).Return(nil, nil).Once()

	outcome, err := s.service.UpdateMediaStatus(s.ctx, appvideo.UpdateMediaStatusCommand{
		VideoID:    id.String(),
		ResourceID: "video-res",
		Status:     "PENDING",
	})
	s.Require().NoError(err)
	s.Equal(appvideo.MediaStatusApplied, outcome)
	s.Equal(video.MediaStatusPending, v.Video().Status)
}

func (s *VideoServiceTestSuite) TestUpdateMediaStatus_RejectedTransitionIsConflict() {
	v := s.storedVideoWithMedia()
	id := v.ID()
	s.Require().NoError(v.ApplyEncodeProgress(video.MediaTypeVideo, video.MediaStatusCompleted, "encoded/movie.mp4"))

	s.mockVideos.On("FindByID", s.ctx, id).Return(v, nil)

	_, err := s.service.UpdateMediaStatus(s.ctx, appvideo.UpdateMediaStatusCommand{
		VideoID:    id.String(),
		ResourceID: "video-res",
		Status:     "PROCESSING",
	})
	s.Require().Error(err)
	s.True(errors.IsConflict(err))
	s.mockVideos.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *VideoServiceTestSuite) TestUpdateMediaStatus_UnknownStatusRejected() {
	_, err := s.service.UpdateMediaStatus(s.ctx, appvideo.UpdateMediaStatusCommand{
		VideoID:    uuid.NewString(),
		ResourceID: "video-res",
		Status:     "ENCODING",
	})
	s.Require().Error(err)
	s.True(errors.IsValidation(err))
}

func (s *VideoServiceTestSuite) TestUpdateMediaStatus_UnknownVideo() {
	id := uuid.New()
	s.mockVideos.On("FindByID", s.ctx, id).
		Return(nil, errors.NotFoundf("video with id %s was not found", id))

	_, err := s.service.UpdateMediaStatus(s.ctx, appvideo.UpdateMediaStatusCommand{
		VideoID:    id.String(),
		ResourceID: "video-res",
		Status:     "COMPLETED",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *VideoServiceTestSuite) TestUpdateMediaStatus_PersistFailurePropagates() {
	v := s.storedVideoWithMedia()
	id := v.ID()

	cause := stderrors.New("connection reset")
	s.mockVideos.On("FindByID", s.ctx, id).Return(v, nil)
	s.mockVideos.On("Update", s.ctx, v).Return(nil, cause)

	_, err := s.service.UpdateMediaStatus(s.ctx, appvideo.UpdateMediaStatusCommand{
		VideoID:    id.String(),
		ResourceID: "video-res",
		Status:     "PROCESSING",
	})
	s.Require().Error(err)
	s.ErrorIs(err, cause)
}
