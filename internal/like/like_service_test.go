package like

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

func newLikeServiceForTest(t *testing.T) (*MockLikeRepository, LikeService) {
	ctrl := gomock.NewController(t)
	likeRepo := NewMockLikeRepository(ctrl)
	return likeRepo, NewLikeService(likeRepo)
}

func TestToggleVideoLike_Oscillates(t *testing.T) {
	repo, svc := newLikeServiceForTest(t)
	liker := primitive.NewObjectID()
	videoID := primitive.NewObjectID()
	target := dbmongo.LikeTarget{Kind: dbmongo.LikeTargetVideo, ID: videoID}

	liked := false
	repo.EXPECT().TargetExists(gomock.Any(), target).Return(true, nil).Times(3)
	repo.EXPECT().
		Toggle(gomock.Any(), liker, target).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, _ dbmongo.LikeTarget) (bool, error) {
			liked = !liked
			return liked, nil
		}).Times(3)

	// repeated toggles oscillate: like, unlike, like again
	for _, want := range []bool{true, false, true} {
		result, err := svc.ToggleVideoLike(context.Background(), liker, videoID.Hex())
		require.NoError(t, err)
		require.Equal(t, want, result.Liked)
	}
}

func TestToggleCommentLike_TargetMissing(t *testing.T) {
	repo, svc := newLikeServiceForTest(t)
	liker := primitive.NewObjectID()
	commentID := primitive.NewObjectID()
	target := dbmongo.LikeTarget{Kind: dbmongo.LikeTargetComment, ID: commentID}

	repo.EXPECT().TargetExists(gomock.Any(), target).Return(false, nil)

	_, err := svc.ToggleCommentLike(context.Background(), liker, commentID.Hex())
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindNotFound, apiErr.Kind)
	require.Equal(t, "comment not found", apiErr.Message)
}

func TestToggleTweetLike_InvalidID(t *testing.T) {
	_, svc := newLikeServiceForTest(t)

	_, err := svc.ToggleTweetLike(context.Background(), primitive.NewObjectID(), "garbage")
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindInvalidIdentifier, apiErr.Kind)
}

func TestToggle_MalformedTargetSurfacesInvalidState(t *testing.T) {
	repo, svc := newLikeServiceForTest(t)
	liker := primitive.NewObjectID()
	videoID := primitive.NewObjectID()
	target := dbmongo.LikeTarget{Kind: dbmongo.LikeTargetVideo, ID: videoID}

	repo.EXPECT().TargetExists(gomock.Any(), target).Return(true, nil)
	repo.EXPECT().
		Toggle(gomock.Any(), liker, target).
		Return(false, common.NewApiError(common.KindInvalidState, "like target is malformed"))

	_, err := svc.ToggleVideoLike(context.Background(), liker, videoID.Hex())
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindInvalidState, apiErr.Kind)
}

func TestLikedVideos(t *testing.T) {
	repo, svc := newLikeServiceForTest(t)
	liker := primitive.NewObjectID()
	page := common.PageParams{Page: 1, Limit: 10}

	repo.EXPECT().
		LikedVideos(gomock.Any(), liker, page).
		Return([]dbmongo.VideoWithOwner{{Video: dbmongo.Video{Title: "liked one"}}}, nil)

	videos, err := svc.LikedVideos(context.Background(), liker, page)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	require.Equal(t, "liked one", videos[0].Title)
}

func TestNewLikeTarget_RejectsBadInputs(t *testing.T) {
	_, err := dbmongo.NewLikeTarget("playlist", primitive.NewObjectID())
	require.Error(t, err)

	_, err = dbmongo.NewLikeTarget(dbmongo.LikeTargetVideo, primitive.NilObjectID)
	require.Error(t, err)

	target, err := dbmongo.NewLikeTarget(dbmongo.LikeTargetVideo, primitive.NewObjectID())
	require.NoError(t, err)
	require.True(t, target.Valid())
}
