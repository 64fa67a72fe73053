package user

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

// all the user document access lives behind this interface, services and
// tests only ever see it
type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmongo.User) error
	GetUserByID(ctx context.Context, userID primitive.ObjectID) (*dbmongo.User, error)
	GetUserByLogin(ctx context.Context, usernameOrEmail string) (*dbmongo.User, error)
	CheckUserExists(ctx context.Context, username, email string) (bool, error)
	UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error)

	UpdateProfile(ctx context.Context, userID primitive.ObjectID, set bson.M) (*dbmongo.User, error)
	UpdateRefreshToken(ctx context.Context, userID primitive.ObjectID, tokenHash string) error

	AddToWatchHistory(ctx context.Context, userID, videoID primitive.ObjectID) error
	WatchHistory(ctx context.Context, userID primitive.ObjectID, page common.PageParams) ([]dbmongo.VideoWithOwner, error)
	ChannelProfile(ctx context.Context, username string, viewerID primitive.ObjectID) (*dbmongo.ChannelProfile, error)
}

type userRepository struct {
	db *mongo.Database
}

func NewUserRepository(mongoClient *dbmongo.MongoClient) UserRepository {
	return &userRepository{db: mongoClient.Database}
}

func (r *userRepository) users() *mongo.Collection {
	return r.db.Collection(dbmongo.CollUsers)
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbmongo.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.WatchHistory == nil {
		user.WatchHistory = []primitive.ObjectID{}
	}

	res, err := r.users().InsertOne(ctx, user)
	if err != nil {
		if dbmongo.IsDuplicateKey(err) {
			return common.NewApiError(common.KindInvalidOperation, "username or email already taken")
		}
		return err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID primitive.ObjectID) (*dbmongo.User, error) {
	var user dbmongo.User
	err := r.users().FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NewApiError(common.KindNotFound, "user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByLogin(ctx context.Context, usernameOrEmail string) (*dbmongo.User, error) {
	login := common.NormalizeUsername(usernameOrEmail)
	var user dbmongo.User
	err := r.users().FindOne(ctx, bson.M{
		"$or": bson.A{
			bson.M{"username": login},
			bson.M{"email": login},
		},
	}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NewApiError(common.KindNotFound, "user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CheckUserExists(ctx context.Context, username, email string) (bool, error) {
	count, err := r.users().CountDocuments(ctx, bson.M{
		"$or": bson.A{
			bson.M{"username": common.NormalizeUsername(username)},
			bson.M{"email": common.NormalizeEmail(email)},
		},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	count, err := r.users().CountDocuments(ctx, bson.M{"_id": userID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID primitive.ObjectID, set bson.M) (*dbmongo.User, error) {
	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user dbmongo.User
	err := r.users().FindOneAndUpdate(ctx, bson.M{"_id": userID}, bson.M{"$set": set}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NewApiError(common.KindNotFound, "user not found")
	}
	if err != nil {
		if dbmongo.IsDuplicateKey(err) {
			return nil, common.NewApiError(common.KindInvalidOperation, "email already taken")
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID primitive.ObjectID, tokenHash string) error {
	update := bson.M{"$set": bson.M{"refreshToken": tokenHash, "updatedAt": time.Now()}}
	if tokenHash == "" {
		update = bson.M{
			"$unset": bson.M{"refreshToken": ""},
			"$set":   bson.M{"updatedAt": time.Now()},
		}
	}
	res, err := r.users().UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return common.NewApiError(common.KindNotFound, "user not found")
	}
	return nil
}

// AddToWatchHistory keeps the history most-recent-first and deduplicated:
// pull the video if already present, then push it to the front.
func (r *userRepository) AddToWatchHistory(ctx context.Context, userID, videoID primitive.ObjectID) error {
	if _, err := r.users().UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"watchHistory": videoID}},
	); err != nil {
		return err
	}
	_, err := r.users().UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"watchHistory": bson.M{"$each": bson.A{videoID}, "$position": 0}}},
	)
	return err
}

func (r *userRepository) WatchHistory(ctx context.Context, userID primitive.ObjectID, page common.PageParams) ([]dbmongo.VideoWithOwner, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": userID}}},
		{{Key: "$unwind", Value: bson.M{"path": "$watchHistory", "includeArrayIndex": "historyIndex"}}},
		{{Key: "$skip", Value: page.Skip()}},
		{{Key: "$limit", Value: page.Limit64()}},
		{{Key: "$lookup", Value: bson.M{
			"from":         dbmongo.CollVideos,
			"localField":   "watchHistory",
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

	cursor, err := r.users().Aggregate(ctx, pipeline)
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

// ChannelProfile joins subscriber and subscribed-to counts onto the public
// profile in one pass, plus whether the viewer already subscribes.
func (r *userRepository) ChannelProfile(ctx context.Context, username string, viewerID primitive.ObjectID) (*dbmongo.ChannelProfile, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"username": common.NormalizeUsername(username)}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         dbmongo.CollSubscriptions,
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "subscribers",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         dbmongo.CollSubscriptions,
			"localField":   "_id",
			"foreignField": "subscriber",
			"as":           "subscribedTo",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"subscriberCount": bson.M{"$size": "$subscribers"},
			"subscribedTo":    bson.M{"$size": "$subscribedTo"},
			"isSubscribed":    bson.M{"$in": bson.A{viewerID, "$subscribers.subscriber"}},
		}}},
		{{Key: "$project", Value: bson.M{
			"username": 1, "fullName": 1, "avatar": 1, "coverImage": 1,
			"subscriberCount": 1, "subscribedTo": 1, "isSubscribed": 1,
		}}},
	}

	cursor, err := r.users().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []dbmongo.ChannelProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, common.NewApiError(common.KindNotFound, "channel not found")
	}
	return &profiles[0], nil
}
