package dbmongo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names, used by every repository and the index bootstrap.
const (
	CollUsers         = "users"
	CollVideos        = "videos"
	CollComments      = "comments"
	CollTweets        = "tweets"
	CollLikes         = "likes"
	CollSubscriptions = "subscriptions"
	CollPlaylists     = "playlists"
)

// MediaRef is a stored asset: the delegate's stable locator plus the
// public id we can overwrite or delete it by.
type MediaRef struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"publicId" json:"publicId"`
}

type User struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username         string               `bson:"username" json:"username"`
	Email            string               `bson:"email" json:"email"`
	FullName         string               `bson:"fullName" json:"fullName"`
	Avatar           MediaRef             `bson:"avatar" json:"avatar"`
	CoverImage       MediaRef             `bson:"coverImage" json:"coverImage"`
	WatchHistory     []primitive.ObjectID `bson:"watchHistory" json:"-"`
	PasswordHash     string               `bson:"password" json:"-"`
	RefreshTokenHash string               `bson:"refreshToken,omitempty" json:"-"`
	CreatedAt        time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt" json:"updatedAt"`
}

type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner       primitive.ObjectID `bson:"owner" json:"owner"`
	VideoFile   MediaRef           `bson:"videoFile" json:"videoFile"`
	Thumbnail   MediaRef           `bson:"thumbnail" json:"thumbnail"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Video     primitive.ObjectID `bson:"video" json:"video"`
	Owner     primitive.ObjectID `bson:"owner" json:"owner"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Tweet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner     primitive.ObjectID `bson:"owner" json:"owner"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// LikeTargetKind discriminates what a like points at.
type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

// LikeTarget is a tagged union: one kind, one id. Multi-target likes are
// unrepresentable, NewLikeTarget is the only way to build one.
type LikeTarget struct {
	Kind LikeTargetKind     `bson:"kind" json:"kind"`
	ID   primitive.ObjectID `bson:"id" json:"id"`
}

func NewLikeTarget(kind LikeTargetKind, id primitive.ObjectID) (LikeTarget, error) {
	switch kind {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
	default:
		return LikeTarget{}, fmt.Errorf("unknown like target kind %q", kind)
	}
	if id.IsZero() {
		return LikeTarget{}, fmt.Errorf("like target id is required")
	}
	return LikeTarget{Kind: kind, ID: id}, nil
}

// Valid re-checks the invariant at the write path; a violation there means
// some caller bypassed NewLikeTarget.
func (t LikeTarget) Valid() bool {
	switch t.Kind {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return !t.ID.IsZero()
	}
	return false
}

type Like struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LikedBy   primitive.ObjectID `bson:"likedBy" json:"likedBy"`
	Target    LikeTarget         `bson:"target" json:"target"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Subscription struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Subscriber primitive.ObjectID `bson:"subscriber" json:"subscriber"`
	Channel    primitive.ObjectID `bson:"channel" json:"channel"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

type Playlist struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	IsPrivate   bool                 `bson:"isPrivate" json:"isPrivate"`
	Videos      []primitive.ObjectID `bson:"videos" json:"videos"`
	Owner       primitive.ObjectID   `bson:"owner" json:"owner"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// CondensedProfile is the minimal owner projection embedded into joined
// read responses.
type CondensedProfile struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Username string             `bson:"username" json:"username"`
	FullName string             `bson:"fullName" json:"fullName"`
	Avatar   MediaRef           `bson:"avatar" json:"avatar"`
}

// VideoWithOwner is a video with its owner's condensed profile joined in.
type VideoWithOwner struct {
	Video `bson:",inline"`
	Owner CondensedProfile `bson:"ownerDetails" json:"owner"`
}

type CommentWithOwner struct {
	Comment `bson:",inline"`
	Owner   CondensedProfile `bson:"ownerDetails" json:"owner"`
}

type TweetWithOwner struct {
	Tweet `bson:",inline"`
	Owner CondensedProfile `bson:"ownerDetails" json:"owner"`
}

// VideoSummary is the membership projection embedded in playlist reads.
type VideoSummary struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Duration  float64            `bson:"duration" json:"duration"`
	Thumbnail MediaRef           `bson:"thumbnail" json:"thumbnail"`
}

type PlaylistWithDetails struct {
	Playlist `bson:",inline"`
	Owner    CondensedProfile `bson:"ownerDetails" json:"owner"`
	Videos   []VideoSummary   `bson:"videoDetails" json:"videos"`
}

// ChannelStats is the dashboard rollup, aggregates default to zero.
type ChannelStats struct {
	TotalVideos             int64 `bson:"totalVideos" json:"totalVideos"`
	TotalViews              int64 `bson:"totalViews" json:"totalViews"`
	TotalLikes              int64 `bson:"totalLikes" json:"totalLikes"`
	TotalSubscribers        int64 `bson:"totalSubscribers" json:"totalSubscribers"`
	TotalChannelsSubscribed int64 `bson:"totalChannelsSubscribed" json:"totalChannelsSubscribed"`
}

// ChannelProfile is the public channel page for a username.
type ChannelProfile struct {
	ID              primitive.ObjectID `bson:"_id" json:"id"`
	Username        string             `bson:"username" json:"username"`
	FullName        string             `bson:"fullName" json:"fullName"`
	Avatar          MediaRef           `bson:"avatar" json:"avatar"`
	CoverImage      MediaRef           `bson:"coverImage" json:"coverImage"`
	SubscriberCount int64              `bson:"subscriberCount" json:"subscriberCount"`
	SubscribedTo    int64              `bson:"subscribedTo" json:"subscribedTo"`
	IsSubscribed    bool               `bson:"isSubscribed" json:"isSubscribed"`
}
