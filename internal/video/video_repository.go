package video

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

// ListParams scope the video listing: optional owner filter plus the viewer
// identity that decides publish visibility.
type ListParams struct {
	Page   common.PageParams
	Owner  *primitive.ObjectID
	Viewer primitive.ObjectID
}

type VideoRepository interface {
	Create(ctx context.Context, video *dbmongo.Video) error
	GetWithOwner(ctx context.Context, videoID primitive.ObjectID) (*dbmongo.VideoWithOwner, error)
	GetOwned(ctx context.Context, videoID, owner primitive.ObjectID) (*dbmongo.Video, error)
	List(ctx context.Context, params ListParams) ([]dbmongo.VideoWithOwner, error)

	UpdateOwned(ctx context.Context, videoID, owner primitive.ObjectID, set bson.M) (*dbmongo.Video, error)
	TogglePublishOwned(ctx context.Context, videoID, owner primitive.ObjectID) (*dbmongo.Video, error)
	DeleteOwned(ctx context.Context, videoID, owner primitive.ObjectID) (*dbmongo.Video, error)
	IncrementViews(ctx context.Context, videoID primitive.ObjectID) error
}

type videoRepository struct {
	db *mongo.Database
}

func NewVideoRepository(mongoClient *dbmongo.MongoClient) VideoRepository {
	return &videoRepository{db: mongoClient.Database}
}

func (r *videoRepository) videos() *mongo.Collection {
	return r.db.Collection(dbmongo.CollVideos)
}

func (r *videoRepository) Create(ctx context.Context, video *dbmongo.Video) error {
	now := time.Now()
	video.CreatedAt = now
	video.UpdatedAt = now

	res, err := r.videos().InsertOne(ctx, video)
	if err != nil {
		return err
	}
	video.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *videoRepository) GetWithOwner(ctx context.Context, videoID primitive.ObjectID) (*dbmongo.VideoWithOwner, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": videoID}}},
		lookupOwnerStage(),
		{{Key: "$unwind", Value: "$ownerDetails"}},
	}

	cursor, err := r.videos().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []dbmongo.VideoWithOwner
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.NewApiError(common.KindNotFound, "video not found")
	}
	return &results[0], nil
}

func (r *videoRepository) GetOwned(ctx context.Context, videoID, owner primitive.ObjectID) (*dbmongo.Video, error) {
	var video dbmongo.Video
	err := r.videos().FindOne(ctx, bson.M{"_id": videoID, "owner": owner}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// unauthorized and nonexistent look the same on purpose
		return nil, common.NewApiError(common.KindNotFound, "video not found")
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// List runs the main browse pipeline: filter, owner join, sort, paginate.
// Non-owners only ever see published videos; an owner browsing their own
// uploads sees unpublished ones too.
func (r *videoRepository) List(ctx context.Context, params ListParams) ([]dbmongo.VideoWithOwner, error) {
	match := bson.M{}
	if params.Page.Query != "" {
		match["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": params.Page.Query, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": params.Page.Query, "$options": "i"}},
		}
	}
	if params.Owner != nil {
		match["owner"] = *params.Owner
		if *params.Owner != params.Viewer {
			match["isPublished"] = true
		}
	} else {
		match["isPublished"] = true
	}

	sortField, sortDir := params.Page.SortField()
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		lookupOwnerStage(),
		{{Key: "$unwind", Value: "$ownerDetails"}},
		{{Key: "$sort", Value: bson.D{{Key: sortField, Value: sortDir}}}},
		{{Key: "$skip", Value: params.Page.Skip()}},
		{{Key: "$limit", Value: params.Page.Limit64()}},
	}

	cursor, err := r.videos().Aggregate(ctx, pipeline)
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

func (r *videoRepository) UpdateOwned(ctx context.Context, videoID, owner primitive.ObjectID, set bson.M) (*dbmongo.Video, error) {
	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var video dbmongo.Video
	err := r.videos().FindOneAndUpdate(ctx,
		bson.M{"_id": videoID, "owner": owner},
		bson.M{"$set": set},
		opts,
	).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NewApiError(common.KindNotFound, "video not found")
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) TogglePublishOwned(ctx context.Context, videoID, owner primitive.ObjectID) (*dbmongo.Video, error) {
	// pipeline update flips the flag atomically in the store
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"isPublished": bson.M{"$not": "$isPublished"},
			"updatedAt":   time.Now(),
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var video dbmongo.Video
	err := r.videos().FindOneAndUpdate(ctx, bson.M{"_id": videoID, "owner": owner}, update, opts).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NewApiError(common.KindNotFound, "video not found")
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) DeleteOwned(ctx context.Context, videoID, owner primitive.ObjectID) (*dbmongo.Video, error) {
	var video dbmongo.Video
	err := r.videos().FindOneAndDelete(ctx, bson.M{"_id": videoID, "owner": owner}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NewApiError(common.KindNotFound, "video not found")
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) IncrementViews(ctx context.Context, videoID primitive.ObjectID) error {
	_, err := r.videos().UpdateOne(ctx, bson.M{"_id": videoID}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

func lookupOwnerStage() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         dbmongo.CollUsers,
		"localField":   "owner",
		"foreignField": "_id",
		"as":           "ownerDetails",
		"pipeline": mongo.Pipeline{
			{{Key: "$project", Value: bson.M{"fullName": 1, "username": 1, "avatar": 1}}},
		},
	}}}
}
