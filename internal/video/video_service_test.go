package video

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/media"
)

func newVideoServiceForTest(t *testing.T) (*MockVideoRepository, *MockHistoryRecorder, *media.MockDelegate, VideoService) {
	ctrl := gomock.NewController(t)
	videoRepo := NewMockVideoRepository(ctrl)
	history := NewMockHistoryRecorder(ctrl)
	delegate := media.NewMockDelegate(ctrl)
	return videoRepo, history, delegate, NewVideoService(videoRepo, history, delegate)
}

func TestPublish_Success(t *testing.T) {
	videoRepo, _, delegate, svc := newVideoServiceForTest(t)
	ownerID := primitive.NewObjectID()

	delegate.EXPECT().
		Store(gomock.Any(), "/tmp/staged-vid.mp4", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, publicID string) (*media.Asset, error) {
			require.True(t, strings.HasPrefix(publicID, "video-"))
			return &media.Asset{URL: "http://media/video", PublicID: publicID, Duration: 42.5}, nil
		})
	delegate.EXPECT().
		Store(gomock.Any(), "/tmp/staged-thumb.png", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, publicID string) (*media.Asset, error) {
			require.True(t, strings.HasPrefix(publicID, "thumbnail-"))
			return &media.Asset{URL: "http://media/thumb", PublicID: publicID}, nil
		})
	videoRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *dbmongo.Video) error {
			v.ID = primitive.NewObjectID()
			return nil
		})

	video, err := svc.Publish(context.Background(), ownerID, PublishInput{
		Title:         "  My First Video ",
		Description:   "hello world",
		VideoPath:     "/tmp/staged-vid.mp4",
		ThumbnailPath: "/tmp/staged-thumb.png",
	})
	require.NoError(t, err)
	require.Equal(t, "My First Video", video.Title)
	require.Equal(t, ownerID, video.Owner)
	require.Equal(t, 42.5, video.Duration)
	require.True(t, video.IsPublished)
	require.Equal(t, "http://media/video", video.VideoFile.URL)
	require.Equal(t, "http://media/thumb", video.Thumbnail.URL)
}

func TestPublish_MissingFields(t *testing.T) {
	_, _, _, svc := newVideoServiceForTest(t)

	_, err := svc.Publish(context.Background(), primitive.NewObjectID(), PublishInput{
		Title:         "",
		Description:   "desc",
		VideoPath:     "/tmp/a",
		ThumbnailPath: "/tmp/b",
	})
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindInvalidInput, apiErr.Kind)
}

func TestPublish_MissingFiles(t *testing.T) {
	_, _, _, svc := newVideoServiceForTest(t)

	_, err := svc.Publish(context.Background(), primitive.NewObjectID(), PublishInput{
		Title:       "t",
		Description: "d",
		VideoPath:   "/tmp/a",
	})
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindInvalidInput, apiErr.Kind)
}

func TestPublish_ThumbnailUploadFailureRollsBackVideo(t *testing.T) {
	_, _, delegate, svc := newVideoServiceForTest(t)

	delegate.EXPECT().
		Store(gomock.Any(), "/tmp/vid", gomock.Any()).
		Return(&media.Asset{URL: "u", PublicID: "video-abc"}, nil)
	delegate.EXPECT().
		Store(gomock.Any(), "/tmp/thumb", gomock.Any()).
		Return(nil, errors.New("host rejected upload"))
	delegate.EXPECT().
		Remove(gomock.Any(), "video-abc", media.KindVideo).
		Return(nil)

	_, err := svc.Publish(context.Background(), primitive.NewObjectID(), PublishInput{
		Title:         "t",
		Description:   "d",
		VideoPath:     "/tmp/vid",
		ThumbnailPath: "/tmp/thumb",
	})
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindUploadFailed, apiErr.Kind)
}

func TestGet_PublishedBumpsViewsAndHistory(t *testing.T) {
	videoRepo, history, _, svc := newVideoServiceForTest(t)
	viewerID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	stored := &dbmongo.VideoWithOwner{
		Video: dbmongo.Video{ID: videoID, IsPublished: true, Views: 7},
		Owner: dbmongo.CondensedProfile{ID: primitive.NewObjectID()},
	}
	videoRepo.EXPECT().GetWithOwner(gomock.Any(), videoID).Return(stored, nil)
	videoRepo.EXPECT().IncrementViews(gomock.Any(), videoID).Return(nil)
	history.EXPECT().AddToWatchHistory(gomock.Any(), viewerID, videoID).Return(nil)

	video, err := svc.Get(context.Background(), viewerID, videoID.Hex())
	require.NoError(t, err)
	require.Equal(t, int64(8), video.Views)
}

func TestGet_UnpublishedHiddenFromOthers(t *testing.T) {
	videoRepo, _, _, svc := newVideoServiceForTest(t)
	videoID := primitive.NewObjectID()

	stored := &dbmongo.VideoWithOwner{
		Video: dbmongo.Video{ID: videoID, IsPublished: false},
		Owner: dbmongo.CondensedProfile{ID: primitive.NewObjectID()},
	}
	videoRepo.EXPECT().GetWithOwner(gomock.Any(), videoID).Return(stored, nil)

	_, err := svc.Get(context.Background(), primitive.NewObjectID(), videoID.Hex())
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindNotFound, apiErr.Kind)
}

func TestGet_UnpublishedVisibleToOwner(t *testing.T) {
	videoRepo, history, _, svc := newVideoServiceForTest(t)
	ownerID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	stored := &dbmongo.VideoWithOwner{
		Video: dbmongo.Video{ID: videoID, Owner: ownerID, IsPublished: false},
		Owner: dbmongo.CondensedProfile{ID: ownerID},
	}
	videoRepo.EXPECT().GetWithOwner(gomock.Any(), videoID).Return(stored, nil)
	videoRepo.EXPECT().IncrementViews(gomock.Any(), videoID).Return(nil)
	history.EXPECT().AddToWatchHistory(gomock.Any(), ownerID, videoID).Return(nil)

	video, err := svc.Get(context.Background(), ownerID, videoID.Hex())
	require.NoError(t, err)
	require.Equal(t, videoID, video.ID)
}

func TestGet_ViewBumpFailureStillReturnsVideo(t *testing.T) {
	videoRepo, history, _, svc := newVideoServiceForTest(t)
	viewerID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	stored := &dbmongo.VideoWithOwner{
		Video: dbmongo.Video{ID: videoID, IsPublished: true, Views: 3},
		Owner: dbmongo.CondensedProfile{ID: primitive.NewObjectID()},
	}
	videoRepo.EXPECT().GetWithOwner(gomock.Any(), videoID).Return(stored, nil)
	videoRepo.EXPECT().IncrementViews(gomock.Any(), videoID).Return(errors.New("write conflict"))
	history.EXPECT().AddToWatchHistory(gomock.Any(), viewerID, videoID).Return(nil)

	video, err := svc.Get(context.Background(), viewerID, videoID.Hex())
	require.NoError(t, err)
	require.Equal(t, int64(3), video.Views)
}

func TestGet_InvalidID(t *testing.T) {
	_, _, _, svc := newVideoServiceForTest(t)

	_, err := svc.Get(context.Background(), primitive.NewObjectID(), "not-an-object-id")
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindInvalidIdentifier, apiErr.Kind)
}

func TestUpdate_NothingToUpdate(t *testing.T) {
	_, _, _, svc := newVideoServiceForTest(t)

	empty := "   "
	_, err := svc.Update(context.Background(), primitive.NewObjectID(), primitive.NewObjectID().Hex(), UpdateInput{
		Title: &empty,
	})
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindInvalidOperation, apiErr.Kind)
}

func TestUpdate_OnlySuppliedFieldsChange(t *testing.T) {
	videoRepo, _, _, svc := newVideoServiceForTest(t)
	ownerID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	title := "new title"
	videoRepo.EXPECT().
		UpdateOwned(gomock.Any(), videoID, ownerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ primitive.ObjectID, set bson.M) (*dbmongo.Video, error) {
			require.Equal(t, bson.M{"title": "new title"}, set)
			return &dbmongo.Video{ID: videoID, Title: "new title"}, nil
		})

	video, err := svc.Update(context.Background(), ownerID, videoID.Hex(), UpdateInput{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "new title", video.Title)
}

func TestUpdate_ThumbnailOverwritesInPlace(t *testing.T) {
	videoRepo, _, delegate, svc := newVideoServiceForTest(t)
	ownerID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	existing := &dbmongo.Video{
		ID:        videoID,
		Owner:     ownerID,
		Thumbnail: dbmongo.MediaRef{URL: "old", PublicID: "thumbnail-xyz"},
	}
	videoRepo.EXPECT().GetOwned(gomock.Any(), videoID, ownerID).Return(existing, nil)
	delegate.EXPECT().
		Store(gomock.Any(), "/tmp/new-thumb", "thumbnail-xyz").
		Return(&media.Asset{URL: "http://media/new", PublicID: "thumbnail-xyz"}, nil)
	videoRepo.EXPECT().
		UpdateOwned(gomock.Any(), videoID, ownerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ primitive.ObjectID, set bson.M) (*dbmongo.Video, error) {
			ref, ok := set["thumbnail"].(dbmongo.MediaRef)
			require.True(t, ok)
			require.Equal(t, "thumbnail-xyz", ref.PublicID)
			require.Equal(t, "http://media/new", ref.URL)
			return &dbmongo.Video{ID: videoID, Thumbnail: ref}, nil
		})

	_, err := svc.Update(context.Background(), ownerID, videoID.Hex(), UpdateInput{ThumbnailPath: "/tmp/new-thumb"})
	require.NoError(t, err)
}

func TestUpdate_NonOwnerLooksLikeNotFound(t *testing.T) {
	videoRepo, _, _, svc := newVideoServiceForTest(t)
	videoID := primitive.NewObjectID()

	videoRepo.EXPECT().
		GetOwned(gomock.Any(), videoID, gomock.Any()).
		Return(nil, common.NewApiError(common.KindNotFound, "video not found"))

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), videoID.Hex(), UpdateInput{ThumbnailPath: "/tmp/thumb"})
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindNotFound, apiErr.Kind)
}

func TestDelete_RemovesAssetsBestEffort(t *testing.T) {
	videoRepo, _, delegate, svc := newVideoServiceForTest(t)
	ownerID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	deleted := &dbmongo.Video{
		ID:        videoID,
		VideoFile: dbmongo.MediaRef{PublicID: "video-abc"},
		Thumbnail: dbmongo.MediaRef{PublicID: "thumbnail-abc"},
	}
	videoRepo.EXPECT().DeleteOwned(gomock.Any(), videoID, ownerID).Return(deleted, nil)
	delegate.EXPECT().Remove(gomock.Any(), "video-abc", media.KindVideo).Return(errors.New("host unreachable"))
	delegate.EXPECT().Remove(gomock.Any(), "thumbnail-abc", media.KindImage).Return(nil)

	// media cleanup failing must not fail the delete itself
	err := svc.Delete(context.Background(), ownerID, videoID.Hex())
	require.NoError(t, err)
}

func TestList_BadOwnerFilter(t *testing.T) {
	_, _, _, svc := newVideoServiceForTest(t)

	_, err := svc.List(context.Background(), primitive.NewObjectID(), common.PageParams{}, "garbage")
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindInvalidIdentifier, apiErr.Kind)
}

func TestTogglePublish_Oscillates(t *testing.T) {
	videoRepo, _, _, svc := newVideoServiceForTest(t)
	ownerID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	published := true
	videoRepo.EXPECT().
		TogglePublishOwned(gomock.Any(), videoID, ownerID).
		DoAndReturn(func(_ context.Context, _, _ primitive.ObjectID) (*dbmongo.Video, error) {
			published = !published
			return &dbmongo.Video{ID: videoID, IsPublished: published}, nil
		}).Times(2)

	first, err := svc.TogglePublish(context.Background(), ownerID, videoID.Hex())
	require.NoError(t, err)
	require.False(t, first.IsPublished)

	second, err := svc.TogglePublish(context.Background(), ownerID, videoID.Hex())
	require.NoError(t, err)
	require.True(t, second.IsPublished)
}
