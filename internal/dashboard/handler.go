package dashboard

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
)

type Handler struct {
	dashboardService DashboardService
}

func NewHandler(dashboardService DashboardService) *Handler {
	return &Handler{dashboardService: dashboardService}
}

func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/dashboard/stats", h.ChannelStats).Methods("GET")
	protected.HandleFunc("/dashboard/videos", h.ChannelVideos).Methods("GET")
}

func (h *Handler) ChannelStats(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	stats, err := h.dashboardService.ChannelStats(r.Context(), callerID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, stats, "Channel stats fetched successfully")
}

func (h *Handler) ChannelVideos(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	page := common.ParsePageParams(r.URL.Query())
	videos, err := h.dashboardService.ChannelVideos(r.Context(), callerID, r.URL.Query().Get("isPublished"), page)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, videos, "Channel videos fetched successfully")
}
