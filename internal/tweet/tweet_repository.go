package tweet

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

type TweetRepository interface {
	UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error)
	Create(ctx context.Context, tweet *dbmongo.Tweet) error
	ListByUser(ctx context.Context, userID primitive.ObjectID, page common.PageParams) ([]dbmongo.TweetWithOwner, error)
	UpdateOwned(ctx context.Context, tweetID, owner primitive.ObjectID, content string) (*dbmongo.Tweet, error)
	DeleteOwned(ctx context.Context, tweetID, owner primitive.ObjectID) error
}

type tweetRepository struct {
	db *mongo.Database
}

func NewTweetRepository(mongoClient *dbmongo.MongoClient) TweetRepository {
	return &tweetRepository{db: mongoClient.Database}
}

func (r *tweetRepository) tweets() *mongo.Collection {
	return r.db.Collection(dbmongo.CollTweets)
}

func (r *tweetRepository) UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	count, err := r.db.Collection(dbmongo.CollUsers).CountDocuments(ctx, bson.M{"_id": userID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *tweetRepository) Create(ctx context.Context, tweet *dbmongo.Tweet) error {
	now := time.Now()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	res, err := r.tweets().InsertOne(ctx, tweet)
	if err != nil {
		return err
	}
	tweet.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListByUser returns one user's tweets newest-first with the author profile
// joined in.
func (r *tweetRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, page common.PageParams) ([]dbmongo.TweetWithOwner, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": userID}}},
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

	cursor, err := r.tweets().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tweets := []dbmongo.TweetWithOwner{}
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

func (r *tweetRepository) UpdateOwned(ctx context.Context, tweetID, owner primitive.ObjectID, content string) (*dbmongo.Tweet, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var tweet dbmongo.Tweet
	err := r.tweets().FindOneAndUpdate(ctx,
		bson.M{"_id": tweetID, "owner": owner},
		bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now()}},
		opts,
	).Decode(&tweet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// unauthorized and nonexistent look the same on purpose
		return nil, common.NewApiError(common.KindNotFound, "tweet not found")
	}
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *tweetRepository) DeleteOwned(ctx context.Context, tweetID, owner primitive.ObjectID) error {
	res, err := r.tweets().DeleteOne(ctx, bson.M{"_id": tweetID, "owner": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return common.NewApiError(common.KindNotFound, "tweet not found")
	}
	return nil
}
