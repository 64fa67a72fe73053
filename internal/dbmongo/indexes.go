package dbmongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the mutation paths rely on. The unique
// ones are the real enforcement of the (liker, target), (subscriber, channel)
// and (owner, name) invariants; application checks alone would race under
// concurrent duplicate requests.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	spec := map[string][]mongo.IndexModel{
		CollUsers: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CollVideos: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		CollComments: {
			{Keys: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		CollTweets: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		CollLikes: {
			{
				Keys:    bson.D{{Key: "likedBy", Value: 1}, {Key: "target.kind", Value: 1}, {Key: "target.id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		CollSubscriptions: {
			{
				Keys:    bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "channel", Value: 1}}},
		},
		CollPlaylists: {
			{
				Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "name", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for coll, models := range spec {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", coll, err)
		}
	}
	return nil
}

// IsDuplicateKey reports whether err is a unique-index violation, the
// signal toggle and create paths use to map races to domain errors.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
