package tweet

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

func newTweetServiceForTest(t *testing.T) (*MockTweetRepository, TweetService) {
	ctrl := gomock.NewController(t)
	tweetRepo := NewMockTweetRepository(ctrl)
	return tweetRepo, NewTweetService(tweetRepo)
}

func TestCreateTweet(t *testing.T) {
	repo, svc := newTweetServiceForTest(t)
	ownerID := primitive.NewObjectID()

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tw *dbmongo.Tweet) error {
			require.Equal(t, "hello world", tw.Content)
			require.Equal(t, ownerID, tw.Owner)
			tw.ID = primitive.NewObjectID()
			return nil
		})

	tweet, err := svc.Create(context.Background(), ownerID, "  hello world ")
	require.NoError(t, err)
	require.False(t, tweet.ID.IsZero())
}

func TestCreateTweet_EmptyContent(t *testing.T) {
	_, svc := newTweetServiceForTest(t)

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), "   ")
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindInvalidInput, apiErr.Kind)
}

func TestListByUser(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name     string
		userID   string
		setup    func(repo *MockTweetRepository)
		wantKind common.ErrorKind
	}{
		{
			name:   "success",
			userID: userID.Hex(),
			setup: func(repo *MockTweetRepository) {
				repo.EXPECT().UserExists(gomock.Any(), userID).Return(true, nil)
				repo.EXPECT().
					ListByUser(gomock.Any(), userID, gomock.Any()).
					Return([]dbmongo.TweetWithOwner{{Tweet: dbmongo.Tweet{Content: "hi"}}}, nil)
			},
		},
		{
			name:     "invalid id",
			userID:   "bogus",
			setup:    func(repo *MockTweetRepository) {},
			wantKind: common.KindInvalidIdentifier,
		},
		{
			name:   "user missing",
			userID: userID.Hex(),
			setup: func(repo *MockTweetRepository) {
				repo.EXPECT().UserExists(gomock.Any(), userID).Return(false, nil)
			},
			wantKind: common.KindNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, svc := newTweetServiceForTest(t)
			tc.setup(repo)

			tweets, err := svc.ListByUser(context.Background(), tc.userID, common.PageParams{})
			if tc.wantKind != "" {
				apiErr, ok := common.AsApiError(err)
				require.True(t, ok)
				require.Equal(t, tc.wantKind, apiErr.Kind)
				return
			}
			require.NoError(t, err)
			require.Len(t, tweets, 1)
		})
	}
}

func TestUpdateTweet_NonOwnerLooksLikeNotFound(t *testing.T) {
	repo, svc := newTweetServiceForTest(t)
	tweetID := primitive.NewObjectID()
	callerID := primitive.NewObjectID()

	repo.EXPECT().
		UpdateOwned(gomock.Any(), tweetID, callerID, "edited").
		Return(nil, common.NewApiError(common.KindNotFound, "tweet not found"))

	_, err := svc.Update(context.Background(), callerID, tweetID.Hex(), "edited")
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindNotFound, apiErr.Kind)
}

func TestDeleteTweet(t *testing.T) {
	repo, svc := newTweetServiceForTest(t)
	tweetID := primitive.NewObjectID()
	callerID := primitive.NewObjectID()

	repo.EXPECT().DeleteOwned(gomock.Any(), tweetID, callerID).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), callerID, tweetID.Hex()))
}
