package playlist

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

type PlaylistRepository interface {
	UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error)
	VideoOwned(ctx context.Context, videoID, owner primitive.ObjectID) (bool, error)

	Create(ctx context.Context, playlist *dbmongo.Playlist) error
	GetWithDetails(ctx context.Context, playlistID primitive.ObjectID) (*dbmongo.PlaylistWithDetails, error)
	GetOwned(ctx context.Context, playlistID, owner primitive.ObjectID) (*dbmongo.Playlist, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID, publicOnly bool, page common.PageParams) ([]dbmongo.PlaylistWithDetails, error)

	AddVideoOwned(ctx context.Context, playlistID, owner, videoID primitive.ObjectID) error
	RemoveVideoOwned(ctx context.Context, playlistID, owner, videoID primitive.ObjectID) error
	UpdateOwned(ctx context.Context, playlistID, owner primitive.ObjectID, set bson.M) (*dbmongo.Playlist, error)
	DeleteOwned(ctx context.Context, playlistID, owner primitive.ObjectID) error
}

type playlistRepository struct {
	db *mongo.Database
}

func NewPlaylistRepository(mongoClient *dbmongo.MongoClient) PlaylistRepository {
	return &playlistRepository{db: mongoClient.Database}
}

func (r *playlistRepository) playlists() *mongo.Collection {
	return r.db.Collection(dbmongo.CollPlaylists)
}

func (r *playlistRepository) UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	count, err := r.db.Collection(dbmongo.CollUsers).CountDocuments(ctx, bson.M{"_id": userID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// VideoOwned checks the caller owns the video being added or removed, not
// just that it exists.
func (r *playlistRepository) VideoOwned(ctx context.Context, videoID, owner primitive.ObjectID) (bool, error) {
	count, err := r.db.Collection(dbmongo.CollVideos).CountDocuments(ctx, bson.M{"_id": videoID, "owner": owner})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *playlistRepository) Create(ctx context.Context, playlist *dbmongo.Playlist) error {
	now := time.Now()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []primitive.ObjectID{}
	}

	res, err := r.playlists().InsertOne(ctx, playlist)
	if err != nil {
		if dbmongo.IsDuplicateKey(err) {
			return common.NewApiError(common.KindInvalidOperation, "a playlist with this name already exists")
		}
		return err
	}
	playlist.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *playlistRepository) GetWithDetails(ctx context.Context, playlistID primitive.ObjectID) (*dbmongo.PlaylistWithDetails, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": playlistID}}},
	}
	pipeline = append(pipeline, detailStages()...)

	cursor, err := r.playlists().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []dbmongo.PlaylistWithDetails
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.NewApiError(common.KindNotFound, "playlist not found")
	}
	return &results[0], nil
}

func (r *playlistRepository) GetOwned(ctx context.Context, playlistID, owner primitive.ObjectID) (*dbmongo.Playlist, error) {
	var playlist dbmongo.Playlist
	err := r.playlists().FindOne(ctx, bson.M{"_id": playlistID, "owner": owner}).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// unauthorized and nonexistent look the same on purpose
		return nil, common.NewApiError(common.KindNotFound, "playlist not found")
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, publicOnly bool, page common.PageParams) ([]dbmongo.PlaylistWithDetails, error) {
	match := bson.M{"owner": userID}
	if publicOnly {
		match["isPrivate"] = false
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: page.Skip()}},
		{{Key: "$limit", Value: page.Limit64()}},
	}
	pipeline = append(pipeline, detailStages()...)

	cursor, err := r.playlists().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	playlists := []dbmongo.PlaylistWithDetails{}
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// AddVideoOwned appends the video unless it is already a member; the filter
// carries the non-membership condition so a duplicate add matches nothing.
func (r *playlistRepository) AddVideoOwned(ctx context.Context, playlistID, owner, videoID primitive.ObjectID) error {
	res, err := r.playlists().UpdateOne(ctx,
		bson.M{"_id": playlistID, "owner": owner, "videos": bson.M{"$ne": videoID}},
		bson.M{"$push": bson.M{"videos": videoID}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if owned, err := r.ownedExists(ctx, playlistID, owner); err != nil {
			return err
		} else if !owned {
			return common.NewApiError(common.KindNotFound, "playlist not found")
		}
		return common.NewApiError(common.KindInvalidOperation, "video is already in the playlist")
	}
	return nil
}

func (r *playlistRepository) RemoveVideoOwned(ctx context.Context, playlistID, owner, videoID primitive.ObjectID) error {
	res, err := r.playlists().UpdateOne(ctx,
		bson.M{"_id": playlistID, "owner": owner, "videos": videoID},
		bson.M{"$pull": bson.M{"videos": videoID}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if owned, err := r.ownedExists(ctx, playlistID, owner); err != nil {
			return err
		} else if !owned {
			return common.NewApiError(common.KindNotFound, "playlist not found")
		}
		return common.NewApiError(common.KindInvalidOperation, "video is not in the playlist")
	}
	return nil
}

func (r *playlistRepository) ownedExists(ctx context.Context, playlistID, owner primitive.ObjectID) (bool, error) {
	count, err := r.playlists().CountDocuments(ctx, bson.M{"_id": playlistID, "owner": owner})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *playlistRepository) UpdateOwned(ctx context.Context, playlistID, owner primitive.ObjectID, set bson.M) (*dbmongo.Playlist, error) {
	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var playlist dbmongo.Playlist
	err := r.playlists().FindOneAndUpdate(ctx,
		bson.M{"_id": playlistID, "owner": owner},
		bson.M{"$set": set},
		opts,
	).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NewApiError(common.KindNotFound, "playlist not found")
	}
	if err != nil {
		if dbmongo.IsDuplicateKey(err) {
			return nil, common.NewApiError(common.KindInvalidOperation, "a playlist with this name already exists")
		}
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) DeleteOwned(ctx context.Context, playlistID, owner primitive.ObjectID) error {
	res, err := r.playlists().DeleteOne(ctx, bson.M{"_id": playlistID, "owner": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return common.NewApiError(common.KindNotFound, "playlist not found")
	}
	return nil
}

// detailStages join the owner profile and the member video summaries onto a
// playlist document.
func detailStages() []bson.D {
	return []bson.D{
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
		{{Key: "$lookup", Value: bson.M{
			"from":         dbmongo.CollVideos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videoDetails",
			"pipeline": mongo.Pipeline{
				{{Key: "$project", Value: bson.M{"title": 1, "duration": 1, "thumbnail": 1}}},
			},
		}}},
	}
}
