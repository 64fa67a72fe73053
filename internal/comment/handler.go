package comment

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
)

type Handler struct {
	commentService CommentService
}

func NewHandler(commentService CommentService) *Handler {
	return &Handler{commentService: commentService}
}

func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/comments/{videoId}", h.ListForVideo).Methods("GET")
	protected.HandleFunc("/comments/{videoId}", h.Add).Methods("POST")
	protected.HandleFunc("/comments/c/{commentId}", h.Update).Methods("PATCH")
	protected.HandleFunc("/comments/c/{commentId}", h.Delete).Methods("DELETE")
}

func (h *Handler) ListForVideo(w http.ResponseWriter, r *http.Request) {
	page := common.ParsePageParams(r.URL.Query())
	comments, err := h.commentService.ListForVideo(r.Context(), mux.Vars(r)["videoId"], page)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, comments, "Comments fetched successfully")
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := common.DecodeBody(r, &body); err != nil {
		common.WriteError(w, err)
		return
	}

	comment, err := h.commentService.Add(r.Context(), callerID, mux.Vars(r)["videoId"], body.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusCreated, comment, "Comment added successfully")
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := common.DecodeBody(r, &body); err != nil {
		common.WriteError(w, err)
		return
	}

	comment, err := h.commentService.Update(r.Context(), callerID, mux.Vars(r)["commentId"], body.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, comment, "Comment updated successfully")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.commentService.Delete(r.Context(), callerID, mux.Vars(r)["commentId"]); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, map[string]string{"result": "ok"}, "Comment deleted successfully")
}
