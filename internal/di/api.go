package di

import (
	"vidtube/internal/comment"
	"vidtube/internal/dashboard"
	"vidtube/internal/like"
	"vidtube/internal/playlist"
	"vidtube/internal/subscription"
	"vidtube/internal/tweet"
	"vidtube/internal/user"
	"vidtube/internal/video"

	"github.com/gorilla/mux"
)

// API bundles every domain handler so main can mount them in one place.
type API struct {
	User         *user.Handler
	Video        *video.Handler
	Comment      *comment.Handler
	Tweet        *tweet.Handler
	Like         *like.Handler
	Subscription *subscription.Handler
	Playlist     *playlist.Handler
	Dashboard    *dashboard.Handler
}

// RegisterRoutes mounts the full API surface: the user handler owns the only
// public endpoints, everything else sits behind auth.
func (a *API) RegisterRoutes(public, protected *mux.Router) {
	a.User.RegisterRoutes(public, protected)
	a.Video.RegisterRoutes(protected)
	a.Comment.RegisterRoutes(protected)
	a.Tweet.RegisterRoutes(protected)
	a.Like.RegisterRoutes(protected)
	a.Subscription.RegisterRoutes(protected)
	a.Playlist.RegisterRoutes(protected)
	a.Dashboard.RegisterRoutes(protected)
}
