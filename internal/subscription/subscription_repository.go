package subscription

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

type SubscriptionRepository interface {
	UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error)

	// Toggle removes the subscription when present and creates it when
	// absent, returning whether the caller is subscribed after the call.
	Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error)
	Subscribers(ctx context.Context, channel primitive.ObjectID, page common.PageParams) ([]dbmongo.CondensedProfile, error)
	SubscriberCount(ctx context.Context, channel primitive.ObjectID) (int64, error)
	SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID, page common.PageParams) ([]dbmongo.CondensedProfile, error)
}

type subscriptionRepository struct {
	db *mongo.Database
}

func NewSubscriptionRepository(mongoClient *dbmongo.MongoClient) SubscriptionRepository {
	return &subscriptionRepository{db: mongoClient.Database}
}

func (r *subscriptionRepository) subscriptions() *mongo.Collection {
	return r.db.Collection(dbmongo.CollSubscriptions)
}

func (r *subscriptionRepository) UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	count, err := r.db.Collection(dbmongo.CollUsers).CountDocuments(ctx, bson.M{"_id": userID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *subscriptionRepository) Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error) {
	filter := bson.M{"subscriber": subscriber, "channel": channel}

	err := r.subscriptions().FindOneAndDelete(ctx, filter).Err()
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, err
	}

	sub := dbmongo.Subscription{Subscriber: subscriber, Channel: channel, CreatedAt: time.Now()}
	if _, err := r.subscriptions().InsertOne(ctx, sub); err != nil {
		if dbmongo.IsDuplicateKey(err) {
			// raced another toggle that just created it, same end state
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// Subscribers joins each subscription to the subscriber's condensed profile.
func (r *subscriptionRepository) Subscribers(ctx context.Context, channel primitive.ObjectID, page common.PageParams) ([]dbmongo.CondensedProfile, error) {
	return r.joinProfiles(ctx, bson.M{"channel": channel}, "subscriber", page)
}

// SubscribedChannels lists the channels one user subscribes to.
func (r *subscriptionRepository) SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID, page common.PageParams) ([]dbmongo.CondensedProfile, error) {
	return r.joinProfiles(ctx, bson.M{"subscriber": subscriber}, "channel", page)
}

func (r *subscriptionRepository) joinProfiles(ctx context.Context, match bson.M, localField string, page common.PageParams) ([]dbmongo.CondensedProfile, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: page.Skip()}},
		{{Key: "$limit", Value: page.Limit64()}},
		{{Key: "$lookup", Value: bson.M{
			"from":         dbmongo.CollUsers,
			"localField":   localField,
			"foreignField": "_id",
			"as":           "profile",
			"pipeline": mongo.Pipeline{
				{{Key: "$project", Value: bson.M{"fullName": 1, "username": 1, "avatar": 1}}},
			},
		}}},
		{{Key: "$unwind", Value: "$profile"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$profile"}}},
	}

	cursor, err := r.subscriptions().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	profiles := []dbmongo.CondensedProfile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// SubscriberCount is computed separately from the joined listing so the
// total stays authoritative even when the listing is paginated.
func (r *subscriptionRepository) SubscriberCount(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	return r.subscriptions().CountDocuments(ctx, bson.M{"channel": channel})
}
