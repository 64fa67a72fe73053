package tweet

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

type TweetService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, content string) (*dbmongo.Tweet, error)
	ListByUser(ctx context.Context, userIDRaw string, page common.PageParams) ([]dbmongo.TweetWithOwner, error)
	Update(ctx context.Context, ownerID primitive.ObjectID, tweetIDRaw, content string) (*dbmongo.Tweet, error)
	Delete(ctx context.Context, ownerID primitive.ObjectID, tweetIDRaw string) error
}

type tweetService struct {
	tweetRepo TweetRepository
}

func NewTweetService(tweetRepo TweetRepository) TweetService {
	return &tweetService{tweetRepo: tweetRepo}
}

func (s *tweetService) Create(ctx context.Context, ownerID primitive.ObjectID, content string) (*dbmongo.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, common.NewApiError(common.KindInvalidInput, "tweet content is required")
	}

	tweet := &dbmongo.Tweet{Owner: ownerID, Content: content}
	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, common.WrapInternal("something went wrong while creating the tweet", err)
	}
	return tweet, nil
}

func (s *tweetService) ListByUser(ctx context.Context, userIDRaw string, page common.PageParams) ([]dbmongo.TweetWithOwner, error) {
	userID, err := common.ParseObjectID(userIDRaw, "user")
	if err != nil {
		return nil, err
	}

	exists, err := s.tweetRepo.UserExists(ctx, userID)
	if err != nil {
		return nil, common.WrapInternal("failed to look up user", err)
	}
	if !exists {
		return nil, common.NewApiError(common.KindNotFound, "user not found")
	}
	return s.tweetRepo.ListByUser(ctx, userID, page)
}

func (s *tweetService) Update(ctx context.Context, ownerID primitive.ObjectID, tweetIDRaw, content string) (*dbmongo.Tweet, error) {
	tweetID, err := common.ParseObjectID(tweetIDRaw, "tweet")
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, common.NewApiError(common.KindInvalidInput, "tweet content is required")
	}
	return s.tweetRepo.UpdateOwned(ctx, tweetID, ownerID, content)
}

func (s *tweetService) Delete(ctx context.Context, ownerID primitive.ObjectID, tweetIDRaw string) error {
	tweetID, err := common.ParseObjectID(tweetIDRaw, "tweet")
	if err != nil {
		return err
	}
	return s.tweetRepo.DeleteOwned(ctx, tweetID, ownerID)
}
