package like

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

type LikeRepository interface {
	TargetExists(ctx context.Context, target dbmongo.LikeTarget) (bool, error)

	// Toggle removes the like when present and creates it when absent,
	// returning whether the like exists after the call.
	Toggle(ctx context.Context, liker primitive.ObjectID, target dbmongo.LikeTarget) (bool, error)
	LikedVideos(ctx context.Context, liker primitive.ObjectID, page common.PageParams) ([]dbmongo.VideoWithOwner, error)
}

type likeRepository struct {
	db *mongo.Database
}

func NewLikeRepository(mongoClient *dbmongo.MongoClient) LikeRepository {
	return &likeRepository{db: mongoClient.Database}
}

func (r *likeRepository) likes() *mongo.Collection {
	return r.db.Collection(dbmongo.CollLikes)
}

func collectionForKind(kind dbmongo.LikeTargetKind) string {
	switch kind {
	case dbmongo.LikeTargetVideo:
		return dbmongo.CollVideos
	case dbmongo.LikeTargetComment:
		return dbmongo.CollComments
	case dbmongo.LikeTargetTweet:
		return dbmongo.CollTweets
	}
	return ""
}

func (r *likeRepository) TargetExists(ctx context.Context, target dbmongo.LikeTarget) (bool, error) {
	coll := collectionForKind(target.Kind)
	if coll == "" {
		return false, common.NewApiError(common.KindInvalidState, "like target is malformed")
	}
	count, err := r.db.Collection(coll).CountDocuments(ctx, bson.M{"_id": target.ID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *likeRepository) Toggle(ctx context.Context, liker primitive.ObjectID, target dbmongo.LikeTarget) (bool, error) {
	if !target.Valid() {
		return false, common.NewApiError(common.KindInvalidState, "like target is malformed")
	}

	filter := bson.M{
		"likedBy":     liker,
		"target.kind": target.Kind,
		"target.id":   target.ID,
	}

	err := r.likes().FindOneAndDelete(ctx, filter).Err()
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, err
	}

	like := dbmongo.Like{LikedBy: liker, Target: target, CreatedAt: time.Now()}
	if _, err := r.likes().InsertOne(ctx, like); err != nil {
		if dbmongo.IsDuplicateKey(err) {
			// raced another toggle that just created it, same end state
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// LikedVideos lists videos the user has liked, newest like first. A like
// whose video has since been deleted is dropped by the unwind, not surfaced
// as an error.
func (r *likeRepository) LikedVideos(ctx context.Context, liker primitive.ObjectID, page common.PageParams) ([]dbmongo.VideoWithOwner, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"likedBy":     liker,
			"target.kind": dbmongo.LikeTargetVideo,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: page.Skip()}},
		{{Key: "$limit", Value: page.Limit64()}},
		{{Key: "$lookup", Value: bson.M{
			"from":         dbmongo.CollVideos,
			"localField":   "target.id",
			"foreignField": "_id",
			"as":           "video",
		}}},
		{{Key: "$unwind", Value: "$video"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$video"}}},
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

	cursor, err := r.likes().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := []dbmongo.VideoWithOwner{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
