//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"vidtube/internal/comment"
	"vidtube/internal/dashboard"
	"vidtube/internal/dbmongo"
	"vidtube/internal/like"
	"vidtube/internal/media"
	"vidtube/internal/playlist"
	"vidtube/internal/subscription"
	"vidtube/internal/tweet"
	"vidtube/internal/user"
	"vidtube/internal/video"
)

// InitializeAPI's real body lives in wire_gen.go.
func InitializeAPI(mongoClient *dbmongo.MongoClient, delegate media.Delegate, staging *media.Staging) *API {
	wire.Build(
		user.NewUserRepository,
		user.NewUserService,
		user.NewHandler,

		video.NewVideoRepository,
		video.NewVideoService,
		video.NewHandler,
		wire.Bind(new(video.HistoryRecorder), new(user.UserRepository)),

		comment.NewCommentRepository,
		comment.NewCommentService,
		comment.NewHandler,

		tweet.NewTweetRepository,
		tweet.NewTweetService,
		tweet.NewHandler,

		like.NewLikeRepository,
		like.NewLikeService,
		like.NewHandler,

		subscription.NewSubscriptionRepository,
		subscription.NewSubscriptionService,
		subscription.NewHandler,

		playlist.NewPlaylistRepository,
		playlist.NewPlaylistService,
		playlist.NewHandler,

		dashboard.NewDashboardRepository,
		dashboard.NewDashboardService,
		dashboard.NewHandler,

		wire.Struct(new(API), "*"),
	)
	return &API{} // dummy for compilation
}
