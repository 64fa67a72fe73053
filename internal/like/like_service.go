package like

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

// ToggleResult reports the like state after a toggle.
type ToggleResult struct {
	Liked bool `json:"liked"`
}

type LikeService interface {
	ToggleVideoLike(ctx context.Context, liker primitive.ObjectID, videoIDRaw string) (*ToggleResult, error)
	ToggleCommentLike(ctx context.Context, liker primitive.ObjectID, commentIDRaw string) (*ToggleResult, error)
	ToggleTweetLike(ctx context.Context, liker primitive.ObjectID, tweetIDRaw string) (*ToggleResult, error)
	LikedVideos(ctx context.Context, liker primitive.ObjectID, page common.PageParams) ([]dbmongo.VideoWithOwner, error)
}

type likeService struct {
	likeRepo LikeRepository
}

func NewLikeService(likeRepo LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

func (s *likeService) ToggleVideoLike(ctx context.Context, liker primitive.ObjectID, videoIDRaw string) (*ToggleResult, error) {
	return s.toggle(ctx, liker, dbmongo.LikeTargetVideo, videoIDRaw, "video")
}

func (s *likeService) ToggleCommentLike(ctx context.Context, liker primitive.ObjectID, commentIDRaw string) (*ToggleResult, error) {
	return s.toggle(ctx, liker, dbmongo.LikeTargetComment, commentIDRaw, "comment")
}

func (s *likeService) ToggleTweetLike(ctx context.Context, liker primitive.ObjectID, tweetIDRaw string) (*ToggleResult, error) {
	return s.toggle(ctx, liker, dbmongo.LikeTargetTweet, tweetIDRaw, "tweet")
}

func (s *likeService) toggle(ctx context.Context, liker primitive.ObjectID, kind dbmongo.LikeTargetKind, idRaw, name string) (*ToggleResult, error) {
	id, err := common.ParseObjectID(idRaw, name)
	if err != nil {
		return nil, err
	}
	target, err := dbmongo.NewLikeTarget(kind, id)
	if err != nil {
		return nil, common.NewApiError(common.KindInvalidState, "like target is malformed").WithCause(err)
	}

	exists, err := s.likeRepo.TargetExists(ctx, target)
	if err != nil {
		return nil, common.WrapInternal("failed to look up "+name, err)
	}
	if !exists {
		return nil, common.NewApiError(common.KindNotFound, name+" not found")
	}

	liked, err := s.likeRepo.Toggle(ctx, liker, target)
	if err != nil {
		if _, ok := common.AsApiError(err); ok {
			return nil, err
		}
		return nil, common.WrapInternal("something went wrong while toggling the like", err)
	}
	return &ToggleResult{Liked: liked}, nil
}

func (s *likeService) LikedVideos(ctx context.Context, liker primitive.ObjectID, page common.PageParams) ([]dbmongo.VideoWithOwner, error) {
	return s.likeRepo.LikedVideos(ctx, liker, page)
}
