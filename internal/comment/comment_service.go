package comment

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

type CommentService interface {
	ListForVideo(ctx context.Context, videoIDRaw string, page common.PageParams) ([]dbmongo.CommentWithOwner, error)
	Add(ctx context.Context, ownerID primitive.ObjectID, videoIDRaw, content string) (*dbmongo.Comment, error)
	Update(ctx context.Context, ownerID primitive.ObjectID, commentIDRaw, content string) (*dbmongo.Comment, error)
	Delete(ctx context.Context, ownerID primitive.ObjectID, commentIDRaw string) error
}

type commentService struct {
	commentRepo CommentRepository
}

func NewCommentService(commentRepo CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) ListForVideo(ctx context.Context, videoIDRaw string, page common.PageParams) ([]dbmongo.CommentWithOwner, error) {
	videoID, err := common.ParseObjectID(videoIDRaw, "video")
	if err != nil {
		return nil, err
	}

	exists, err := s.commentRepo.VideoExists(ctx, videoID)
	if err != nil {
		return nil, common.WrapInternal("failed to look up video", err)
	}
	if !exists {
		return nil, common.NewApiError(common.KindNotFound, "video not found")
	}
	return s.commentRepo.ListForVideo(ctx, videoID, page)
}

func (s *commentService) Add(ctx context.Context, ownerID primitive.ObjectID, videoIDRaw, content string) (*dbmongo.Comment, error) {
	videoID, err := common.ParseObjectID(videoIDRaw, "video")
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, common.NewApiError(common.KindInvalidInput, "comment content is required")
	}

	exists, err := s.commentRepo.VideoExists(ctx, videoID)
	if err != nil {
		return nil, common.WrapInternal("failed to look up video", err)
	}
	if !exists {
		return nil, common.NewApiError(common.KindNotFound, "video not found")
	}

	comment := &dbmongo.Comment{Video: videoID, Owner: ownerID, Content: content}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, common.WrapInternal("something went wrong while adding the comment", err)
	}
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, ownerID primitive.ObjectID, commentIDRaw, content string) (*dbmongo.Comment, error) {
	commentID, err := common.ParseObjectID(commentIDRaw, "comment")
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, common.NewApiError(common.KindInvalidInput, "comment content is required")
	}
	return s.commentRepo.UpdateOwned(ctx, commentID, ownerID, content)
}

func (s *commentService) Delete(ctx context.Context, ownerID primitive.ObjectID, commentIDRaw string) error {
	commentID, err := common.ParseObjectID(commentIDRaw, "comment")
	if err != nil {
		return err
	}
	return s.commentRepo.DeleteOwned(ctx, commentID, ownerID)
}
