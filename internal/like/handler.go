package like

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
)

type Handler struct {
	likeService LikeService
}

func NewHandler(likeService LikeService) *Handler {
	return &Handler{likeService: likeService}
}

func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/likes/toggle/v/{videoId}", h.ToggleVideoLike).Methods("POST")
	protected.HandleFunc("/likes/toggle/c/{commentId}", h.ToggleCommentLike).Methods("POST")
	protected.HandleFunc("/likes/toggle/t/{tweetId}", h.ToggleTweetLike).Methods("POST")
	protected.HandleFunc("/likes/videos", h.LikedVideos).Methods("GET")
}

func (h *Handler) ToggleVideoLike(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	result, err := h.likeService.ToggleVideoLike(r.Context(), callerID, mux.Vars(r)["videoId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, result, "Video like toggled successfully")
}

func (h *Handler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	result, err := h.likeService.ToggleCommentLike(r.Context(), callerID, mux.Vars(r)["commentId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, result, "Comment like toggled successfully")
}

func (h *Handler) ToggleTweetLike(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	result, err := h.likeService.ToggleTweetLike(r.Context(), callerID, mux.Vars(r)["tweetId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, result, "Tweet like toggled successfully")
}

func (h *Handler) LikedVideos(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	page := common.ParsePageParams(r.URL.Query())
	videos, err := h.likeService.LikedVideos(r.Context(), callerID, page)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, videos, "Liked videos fetched successfully")
}
