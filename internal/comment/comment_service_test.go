package comment

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

func newCommentServiceForTest(t *testing.T) (*MockCommentRepository, CommentService) {
	ctrl := gomock.NewController(t)
	commentRepo := NewMockCommentRepository(ctrl)
	return commentRepo, NewCommentService(commentRepo)
}

func TestAddComment(t *testing.T) {
	videoID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()

	tests := []struct {
		name     string
		videoID  string
		content  string
		setup    func(repo *MockCommentRepository)
		wantKind common.ErrorKind
	}{
		{
			name:    "success trims content",
			videoID: videoID.Hex(),
			content: "  nice video  ",
			setup: func(repo *MockCommentRepository) {
				repo.EXPECT().VideoExists(gomock.Any(), videoID).Return(true, nil)
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *dbmongo.Comment) error {
						require.Equal(t, "nice video", c.Content)
						require.Equal(t, videoID, c.Video)
						require.Equal(t, ownerID, c.Owner)
						c.ID = primitive.NewObjectID()
						return nil
					})
			},
		},
		{
			name:     "invalid video id",
			videoID:  "nope",
			content:  "text",
			setup:    func(repo *MockCommentRepository) {},
			wantKind: common.KindInvalidIdentifier,
		},
		{
			name:     "empty content",
			videoID:  videoID.Hex(),
			content:  "   ",
			setup:    func(repo *MockCommentRepository) {},
			wantKind: common.KindInvalidInput,
		},
		{
			name:    "video missing",
			videoID: videoID.Hex(),
			content: "text",
			setup: func(repo *MockCommentRepository) {
				repo.EXPECT().VideoExists(gomock.Any(), videoID).Return(false, nil)
			},
			wantKind: common.KindNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, svc := newCommentServiceForTest(t)
			tc.setup(repo)

			comment, err := svc.Add(context.Background(), ownerID, tc.videoID, tc.content)
			if tc.wantKind != "" {
				apiErr, ok := common.AsApiError(err)
				require.True(t, ok)
				require.Equal(t, tc.wantKind, apiErr.Kind)
				return
			}
			require.NoError(t, err)
			require.False(t, comment.ID.IsZero())
		})
	}
}

func TestListForVideo_RequiresVideo(t *testing.T) {
	repo, svc := newCommentServiceForTest(t)
	videoID := primitive.NewObjectID()

	repo.EXPECT().VideoExists(gomock.Any(), videoID).Return(false, nil)

	_, err := svc.ListForVideo(context.Background(), videoID.Hex(), common.PageParams{})
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindNotFound, apiErr.Kind)
}

func TestListForVideo_PassesPageThrough(t *testing.T) {
	repo, svc := newCommentServiceForTest(t)
	videoID := primitive.NewObjectID()
	page := common.PageParams{Page: 3, Limit: 5}

	repo.EXPECT().VideoExists(gomock.Any(), videoID).Return(true, nil)
	repo.EXPECT().
		ListForVideo(gomock.Any(), videoID, page).
		Return([]dbmongo.CommentWithOwner{{Comment: dbmongo.Comment{Content: "hi"}}}, nil)

	comments, err := svc.ListForVideo(context.Background(), videoID.Hex(), page)
	require.NoError(t, err)
	require.Len(t, comments, 1)
}

func TestUpdateComment_NonOwnerLooksLikeNotFound(t *testing.T) {
	repo, svc := newCommentServiceForTest(t)
	commentID := primitive.NewObjectID()
	callerID := primitive.NewObjectID()

	repo.EXPECT().
		UpdateOwned(gomock.Any(), commentID, callerID, "edited").
		Return(nil, common.NewApiError(common.KindNotFound, "comment not found"))

	_, err := svc.Update(context.Background(), callerID, commentID.Hex(), "edited")
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindNotFound, apiErr.Kind)
}

func TestUpdateComment_EmptyContent(t *testing.T) {
	_, svc := newCommentServiceForTest(t)

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), primitive.NewObjectID().Hex(), "  ")
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindInvalidInput, apiErr.Kind)
}

func TestDeleteComment(t *testing.T) {
	repo, svc := newCommentServiceForTest(t)
	commentID := primitive.NewObjectID()
	callerID := primitive.NewObjectID()

	repo.EXPECT().DeleteOwned(gomock.Any(), commentID, callerID).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), callerID, commentID.Hex()))
}
