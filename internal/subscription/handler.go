package subscription

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
)

type Handler struct {
	subscriptionService SubscriptionService
}

func NewHandler(subscriptionService SubscriptionService) *Handler {
	return &Handler{subscriptionService: subscriptionService}
}

func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/subscriptions/c/{channelId}", h.Toggle).Methods("POST")
	protected.HandleFunc("/subscriptions/c/{channelId}", h.Subscribers).Methods("GET")
	protected.HandleFunc("/subscriptions/u/{subscriberId}", h.SubscribedChannels).Methods("GET")
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	result, err := h.subscriptionService.Toggle(r.Context(), callerID, mux.Vars(r)["channelId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, result, "Subscription toggled successfully")
}

func (h *Handler) Subscribers(w http.ResponseWriter, r *http.Request) {
	page := common.ParsePageParams(r.URL.Query())
	subscribers, err := h.subscriptionService.Subscribers(r.Context(), mux.Vars(r)["channelId"], page)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, subscribers, "Subscribers fetched successfully")
}

func (h *Handler) SubscribedChannels(w http.ResponseWriter, r *http.Request) {
	page := common.ParsePageParams(r.URL.Query())
	channels, err := h.subscriptionService.SubscribedChannels(r.Context(), mux.Vars(r)["subscriberId"], page)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, channels, "Subscribed channels fetched successfully")
}
