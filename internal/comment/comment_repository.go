package comment

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

type CommentRepository interface {
	VideoExists(ctx context.Context, videoID primitive.ObjectID) (bool, error)
	Create(ctx context.Context, comment *dbmongo.Comment) error
	ListForVideo(ctx context.Context, videoID primitive.ObjectID, page common.PageParams) ([]dbmongo.CommentWithOwner, error)
	UpdateOwned(ctx context.Context, commentID, owner primitive.ObjectID, content string) (*dbmongo.Comment, error)
	DeleteOwned(ctx context.Context, commentID, owner primitive.ObjectID) error
}

type commentRepository struct {
	db *mongo.Database
}

func NewCommentRepository(mongoClient *dbmongo.MongoClient) CommentRepository {
	return &commentRepository{db: mongoClient.Database}
}

func (r *commentRepository) comments() *mongo.Collection {
	return r.db.Collection(dbmongo.CollComments)
}

// VideoExists is the advisory parent check run before commenting on or
// listing comments for a video.
func (r *commentRepository) VideoExists(ctx context.Context, videoID primitive.ObjectID) (bool, error) {
	count, err := r.db.Collection(dbmongo.CollVideos).CountDocuments(ctx, bson.M{"_id": videoID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *dbmongo.Comment) error {
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	res, err := r.comments().InsertOne(ctx, comment)
	if err != nil {
		return err
	}
	comment.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListForVideo returns the video's comments newest-first with the commenter
// profile joined in.
func (r *commentRepository) ListForVideo(ctx context.Context, videoID primitive.ObjectID, page common.PageParams) ([]dbmongo.CommentWithOwner, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"video": videoID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: page.Skip()}},
		{{Key: "$limit", Value: page.Limit64()}},
		{{Key: "$lookup", Value: bson.M{
			"from":         dbmongo.CollUsers,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "ownerDetails",
			"pipeline": mongo.Pipeline{
				{{Key: "$project", Value: bson.M{"fullName": 1, "username": 1, "avatar": 1}}},
			},
		}}},
		{{Key: "$unwind", Value: "$ownerDetails"}},
	}

	cursor, err := r.comments().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []dbmongo.CommentWithOwner{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) UpdateOwned(ctx context.Context, commentID, owner primitive.ObjectID, content string) (*dbmongo.Comment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var comment dbmongo.Comment
	err := r.comments().FindOneAndUpdate(ctx,
		bson.M{"_id": commentID, "owner": owner},
		bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now()}},
		opts,
	).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// unauthorized and nonexistent look the same on purpose
		return nil, common.NewApiError(common.KindNotFound, "comment not found")
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) DeleteOwned(ctx context.Context, commentID, owner primitive.ObjectID) error {
	res, err := r.comments().DeleteOne(ctx, bson.M{"_id": commentID, "owner": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return common.NewApiError(common.KindNotFound, "comment not found")
	}
	return nil
}
