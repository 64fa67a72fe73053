package video

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/media"
)

// HistoryRecorder is the slice of the user repository the video read path
// needs: appending to the viewer's watch history.
type HistoryRecorder interface {
	AddToWatchHistory(ctx context.Context, userID, videoID primitive.ObjectID) error
}

type PublishInput struct {
	Title       string
	Description string

	// locally staged upload paths, both required
	VideoPath     string
	ThumbnailPath string
}

type UpdateInput struct {
	Title       *string
	Description *string

	// optional staged replacement thumbnail
	ThumbnailPath string
}

type VideoService interface {
	List(ctx context.Context, viewerID primitive.ObjectID, page common.PageParams, ownerIDRaw string) ([]dbmongo.VideoWithOwner, error)
	Publish(ctx context.Context, ownerID primitive.ObjectID, input PublishInput) (*dbmongo.Video, error)
	Get(ctx context.Context, viewerID primitive.ObjectID, videoIDRaw string) (*dbmongo.VideoWithOwner, error)
	Update(ctx context.Context, ownerID primitive.ObjectID, videoIDRaw string, input UpdateInput) (*dbmongo.Video, error)
	Delete(ctx context.Context, ownerID primitive.ObjectID, videoIDRaw string) error
	TogglePublish(ctx context.Context, ownerID primitive.ObjectID, videoIDRaw string) (*dbmongo.Video, error)
}

type videoService struct {
	videoRepo VideoRepository
	history   HistoryRecorder
	delegate  media.Delegate
}

func NewVideoService(videoRepo VideoRepository, history HistoryRecorder, delegate media.Delegate) VideoService {
	return &videoService{videoRepo: videoRepo, history: history, delegate: delegate}
}

func (s *videoService) List(ctx context.Context, viewerID primitive.ObjectID, page common.PageParams, ownerIDRaw string) ([]dbmongo.VideoWithOwner, error) {
	params := ListParams{Page: page, Viewer: viewerID}
	if ownerIDRaw != "" {
		ownerID, err := common.ParseObjectID(ownerIDRaw, "user")
		if err != nil {
			return nil, err
		}
		params.Owner = &ownerID
	}
	return s.videoRepo.List(ctx, params)
}

func (s *videoService) Publish(ctx context.Context, ownerID primitive.ObjectID, input PublishInput) (*dbmongo.Video, error) {
	if err := common.RequireFields(map[string]string{
		"title":       input.Title,
		"description": input.Description,
	}); err != nil {
		return nil, err
	}
	if input.VideoPath == "" || input.ThumbnailPath == "" {
		return nil, common.NewApiError(common.KindInvalidInput, "videoFile and thumbnail are required")
	}

	videoPublicID := "video-" + uuid.NewString()
	thumbnailPublicID := "thumbnail-" + uuid.NewString()

	videoAsset, err := s.delegate.Store(ctx, input.VideoPath, videoPublicID)
	if err != nil {
		return nil, common.NewApiError(common.KindUploadFailed, "failed to upload video file").WithCause(err)
	}

	thumbAsset, err := s.delegate.Store(ctx, input.ThumbnailPath, thumbnailPublicID)
	if err != nil {
		// no partial record: roll back the video object we just stored
		if rmErr := s.delegate.Remove(ctx, videoAsset.PublicID, media.KindVideo); rmErr != nil {
			logrus.WithError(rmErr).WithField("publicId", videoAsset.PublicID).
				Warn("failed to clean up video asset after thumbnail upload failure")
		}
		return nil, common.NewApiError(common.KindUploadFailed, "failed to upload thumbnail").WithCause(err)
	}

	video := &dbmongo.Video{
		Owner:       ownerID,
		VideoFile:   dbmongo.MediaRef{URL: videoAsset.URL, PublicID: videoAsset.PublicID},
		Thumbnail:   dbmongo.MediaRef{URL: thumbAsset.URL, PublicID: thumbAsset.PublicID},
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Duration:    videoAsset.Duration,
		IsPublished: true,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, common.WrapInternal("something went wrong while publishing the video", err)
	}
	return video, nil
}

func (s *videoService) Get(ctx context.Context, viewerID primitive.ObjectID, videoIDRaw string) (*dbmongo.VideoWithOwner, error) {
	videoID, err := common.ParseObjectID(videoIDRaw, "video")
	if err != nil {
		return nil, err
	}

	video, err := s.videoRepo.GetWithOwner(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && video.Owner.ID != viewerID {
		// hidden the same way a missing video is
		return nil, common.NewApiError(common.KindNotFound, "video not found")
	}

	// view bump and history append are best effort, the read still succeeds
	if err := s.videoRepo.IncrementViews(ctx, videoID); err != nil {
		logrus.WithError(err).WithField("videoId", videoID.Hex()).Warn("failed to bump view counter")
	} else {
		video.Views++
	}
	if err := s.history.AddToWatchHistory(ctx, viewerID, videoID); err != nil {
		logrus.WithError(err).WithField("videoId", videoID.Hex()).Warn("failed to append watch history")
	}
	return video, nil
}

func (s *videoService) Update(ctx context.Context, ownerID primitive.ObjectID, videoIDRaw string, input UpdateInput) (*dbmongo.Video, error) {
	videoID, err := common.ParseObjectID(videoIDRaw, "video")
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if input.Title != nil && strings.TrimSpace(*input.Title) != "" {
		set["title"] = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) != "" {
		set["description"] = strings.TrimSpace(*input.Description)
	}
	if len(set) == 0 && input.ThumbnailPath == "" {
		return nil, common.NewApiError(common.KindInvalidOperation, "nothing to update")
	}

	if input.ThumbnailPath != "" {
		// ownership gate before touching the delegate; also fetches the
		// public id so the delegate overwrites rather than orphaning
		existing, err := s.videoRepo.GetOwned(ctx, videoID, ownerID)
		if err != nil {
			return nil, err
		}
		asset, err := s.delegate.Store(ctx, input.ThumbnailPath, existing.Thumbnail.PublicID)
		if err != nil {
			return nil, common.NewApiError(common.KindUploadFailed, "failed to upload thumbnail").WithCause(err)
		}
		set["thumbnail"] = dbmongo.MediaRef{URL: asset.URL, PublicID: asset.PublicID}
	}

	return s.videoRepo.UpdateOwned(ctx, videoID, ownerID, set)
}

func (s *videoService) Delete(ctx context.Context, ownerID primitive.ObjectID, videoIDRaw string) error {
	videoID, err := common.ParseObjectID(videoIDRaw, "video")
	if err != nil {
		return err
	}

	video, err := s.videoRepo.DeleteOwned(ctx, videoID, ownerID)
	if err != nil {
		return err
	}

	// record is gone; media cleanup is best effort and never re-fails
	if err := s.delegate.Remove(ctx, video.VideoFile.PublicID, media.KindVideo); err != nil {
		logrus.WithError(err).WithField("publicId", video.VideoFile.PublicID).
			Warn("failed to delete video asset from media delegate")
	}
	if err := s.delegate.Remove(ctx, video.Thumbnail.PublicID, media.KindImage); err != nil {
		logrus.WithError(err).WithField("publicId", video.Thumbnail.PublicID).
			Warn("failed to delete thumbnail asset from media delegate")
	}
	return nil
}

func (s *videoService) TogglePublish(ctx context.Context, ownerID primitive.ObjectID, videoIDRaw string) (*dbmongo.Video, error) {
	videoID, err := common.ParseObjectID(videoIDRaw, "video")
	if err != nil {
		return nil, err
	}
	return s.videoRepo.TogglePublishOwned(ctx, videoID, ownerID)
}
