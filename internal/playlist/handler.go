package playlist

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
)

type Handler struct {
	playlistService PlaylistService
}

func NewHandler(playlistService PlaylistService) *Handler {
	return &Handler{playlistService: playlistService}
}

func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/playlist", h.Create).Methods("POST")
	protected.HandleFunc("/playlist/user/{userId}", h.ListByUser).Methods("GET")
	protected.HandleFunc("/playlist/{playlistId}", h.Get).Methods("GET")
	protected.HandleFunc("/playlist/{playlistId}", h.Update).Methods("PATCH")
	protected.HandleFunc("/playlist/{playlistId}", h.Delete).Methods("DELETE")
	protected.HandleFunc("/playlist/add/{videoId}/{playlistId}", h.AddVideo).Methods("PATCH")
	protected.HandleFunc("/playlist/remove/{videoId}/{playlistId}", h.RemoveVideo).Methods("PATCH")
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	var input CreateInput
	if err := common.DecodeBody(r, &input); err != nil {
		common.WriteError(w, err)
		return
	}

	playlist, err := h.playlistService.Create(r.Context(), callerID, input)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusCreated, playlist, "Playlist created successfully")
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	playlist, err := h.playlistService.Get(r.Context(), callerID, mux.Vars(r)["playlistId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, playlist, "Playlist fetched successfully")
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	page := common.ParsePageParams(r.URL.Query())
	playlists, err := h.playlistService.ListByUser(r.Context(), callerID, mux.Vars(r)["userId"], page)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, playlists, "Playlists fetched successfully")
}

func (h *Handler) AddVideo(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	vars := mux.Vars(r)
	playlist, err := h.playlistService.AddVideo(r.Context(), callerID, vars["playlistId"], vars["videoId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, playlist, "Video added to playlist successfully")
}

func (h *Handler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	vars := mux.Vars(r)
	playlist, err := h.playlistService.RemoveVideo(r.Context(), callerID, vars["playlistId"], vars["videoId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, playlist, "Video removed from playlist successfully")
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	var input UpdateInput
	if err := common.DecodeBody(r, &input); err != nil {
		common.WriteError(w, err)
		return
	}

	playlist, err := h.playlistService.Update(r.Context(), callerID, mux.Vars(r)["playlistId"], input)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, playlist, "Playlist updated successfully")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.playlistService.Delete(r.Context(), callerID, mux.Vars(r)["playlistId"]); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, map[string]string{"result": "ok"}, "Playlist deleted successfully")
}
