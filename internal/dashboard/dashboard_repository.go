package dashboard

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

// PublishFilter scopes the dashboard video listing.
type PublishFilter string

const (
	FilterPublished   PublishFilter = "published"
	FilterUnpublished PublishFilter = "unpublished"
	FilterAll         PublishFilter = "all"
)

type DashboardRepository interface {
	VideoStats(ctx context.Context, channel primitive.ObjectID) (*dbmongo.ChannelStats, error)
	SubscriberCount(ctx context.Context, channel primitive.ObjectID) (int64, error)
	SubscribedCount(ctx context.Context, channel primitive.ObjectID) (int64, error)
	ChannelVideos(ctx context.Context, channel primitive.ObjectID, filter PublishFilter, page common.PageParams) ([]dbmongo.Video, error)
}

type dashboardRepository struct {
	db *mongo.Database
}

func NewDashboardRepository(mongoClient *dbmongo.MongoClient) DashboardRepository {
	return &dashboardRepository{db: mongoClient.Database}
}

// videoStatsPipeline rolls the channel's published videos up into totals,
// joining the likes collection per video to count video likes. Unpublished
// videos never contribute to the stats.
func videoStatsPipeline(channel primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": channel, "isPublished": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from": dbmongo.CollLikes,
			"let":  bson.M{"videoId": "$_id"},
			"pipeline": mongo.Pipeline{
				{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$and": bson.A{
						bson.M{"$eq": bson.A{"$target.id", "$$videoId"}},
						bson.M{"$eq": bson.A{"$target.kind", string(dbmongo.LikeTargetVideo)}},
					}},
				}}},
			},
			"as": "likes",
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"totalVideos": bson.M{"$sum": 1},
			"totalViews":  bson.M{"$sum": "$views"},
			"totalLikes":  bson.M{"$sum": bson.M{"$size": "$likes"}},
		}}},
	}
}

// VideoStats runs the rollup. A channel with no published videos aggregates
// to nothing; the caller zero-fills.
func (r *dashboardRepository) VideoStats(ctx context.Context, channel primitive.ObjectID) (*dbmongo.ChannelStats, error) {
	cursor, err := r.db.Collection(dbmongo.CollVideos).Aggregate(ctx, videoStatsPipeline(channel))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []dbmongo.ChannelStats
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &dbmongo.ChannelStats{}, nil
	}
	return &results[0], nil
}

func (r *dashboardRepository) SubscriberCount(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	return r.db.Collection(dbmongo.CollSubscriptions).CountDocuments(ctx, bson.M{"channel": channel})
}

func (r *dashboardRepository) SubscribedCount(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	return r.db.Collection(dbmongo.CollSubscriptions).CountDocuments(ctx, bson.M{"subscriber": channel})
}

func (r *dashboardRepository) ChannelVideos(ctx context.Context, channel primitive.ObjectID, filter PublishFilter, page common.PageParams) ([]dbmongo.Video, error) {
	match := bson.M{"owner": channel}
	switch filter {
	case FilterPublished:
		match["isPublished"] = true
	case FilterUnpublished:
		match["isPublished"] = false
	case FilterAll:
	}

	sortField, sortDir := page.SortField()
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: sortField, Value: sortDir}}}},
		{{Key: "$skip", Value: page.Skip()}},
		{{Key: "$limit", Value: page.Limit64()}},
	}

	cursor, err := r.db.Collection(dbmongo.CollVideos).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := []dbmongo.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
