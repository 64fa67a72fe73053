package tweet

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
)

type Handler struct {
	tweetService TweetService
}

func NewHandler(tweetService TweetService) *Handler {
	return &Handler{tweetService: tweetService}
}

func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/tweets", h.Create).Methods("POST")
	protected.HandleFunc("/tweets/user/{userId}", h.ListByUser).Methods("GET")
	protected.HandleFunc("/tweets/{tweetId}", h.Update).Methods("PATCH")
	protected.HandleFunc("/tweets/{tweetId}", h.Delete).Methods("DELETE")
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
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

	tweet, err := h.tweetService.Create(r.Context(), callerID, body.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusCreated, tweet, "Tweet created successfully")
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	page := common.ParsePageParams(r.URL.Query())
	tweets, err := h.tweetService.ListByUser(r.Context(), mux.Vars(r)["userId"], page)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, tweets, "Tweets fetched successfully")
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

	tweet, err := h.tweetService.Update(r.Context(), callerID, mux.Vars(r)["tweetId"], body.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, tweet, "Tweet updated successfully")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.tweetService.Delete(r.Context(), callerID, mux.Vars(r)["tweetId"]); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, map[string]string{"result": "ok"}, "Tweet deleted successfully")
}
