package video

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
	"vidtube/internal/media"
)

type Handler struct {
	videoService VideoService
	staging      *media.Staging
}

func NewHandler(videoService VideoService, staging *media.Staging) *Handler {
	return &Handler{videoService: videoService, staging: staging}
}

func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/videos", h.List).Methods("GET")
	protected.HandleFunc("/videos", h.Publish).Methods("POST")
	protected.HandleFunc("/videos/{videoId}", h.Get).Methods("GET")
	protected.HandleFunc("/videos/{videoId}", h.Update).Methods("PATCH")
	protected.HandleFunc("/videos/{videoId}", h.Delete).Methods("DELETE")
	protected.HandleFunc("/videos/toggle/publish/{videoId}", h.TogglePublish).Methods("PATCH")
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	page := common.ParsePageParams(r.URL.Query())
	videos, err := h.videoService.List(r.Context(), callerID, page, r.URL.Query().Get("userId"))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, videos, "Videos fetched successfully")
}

func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := r.ParseMultipartForm(256 << 20); err != nil {
		common.WriteError(w, common.NewApiError(common.KindInvalidInput, "invalid multipart form"))
		return
	}

	input := PublishInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}

	videoPath, err := h.stageFormFile(r, "videoFile")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	defer h.staging.Cleanup(videoPath)
	input.VideoPath = videoPath

	thumbPath, err := h.stageFormFile(r, "thumbnail")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	defer h.staging.Cleanup(thumbPath)
	input.ThumbnailPath = thumbPath

	video, err := h.videoService.Publish(r.Context(), callerID, input)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusCreated, video, "Video published successfully")
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	video, err := h.videoService.Get(r.Context(), callerID, mux.Vars(r)["videoId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, video, "Video fetched successfully")
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	input := UpdateInput{}
	if err := r.ParseMultipartForm(16 << 20); err == nil {
		if _, ok := r.MultipartForm.Value["title"]; ok {
			title := r.FormValue("title")
			input.Title = &title
		}
		if _, ok := r.MultipartForm.Value["description"]; ok {
			description := r.FormValue("description")
			input.Description = &description
		}
		thumbPath, err := h.stageOptionalFormFile(r, "thumbnail")
		if err != nil {
			common.WriteError(w, err)
			return
		}
		defer h.staging.Cleanup(thumbPath)
		input.ThumbnailPath = thumbPath
	} else {
		var body struct {
			Title       *string `json:"title"`
			Description *string `json:"description"`
		}
		if err := common.DecodeBody(r, &body); err != nil {
			common.WriteError(w, err)
			return
		}
		input.Title = body.Title
		input.Description = body.Description
	}

	video, err := h.videoService.Update(r.Context(), callerID, mux.Vars(r)["videoId"], input)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, video, "Video updated successfully")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.videoService.Delete(r.Context(), callerID, mux.Vars(r)["videoId"]); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, map[string]string{"result": "ok"}, "Video deleted successfully")
}

func (h *Handler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	video, err := h.videoService.TogglePublish(r.Context(), callerID, mux.Vars(r)["videoId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, video, "Publish status toggled successfully")
}

func (h *Handler) stageFormFile(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", common.NewApiError(common.KindInvalidInput, field+" file is required")
	}
	localPath, err := h.staging.Save(file, header)
	if err != nil {
		return "", common.WrapInternal("failed to stage uploaded file", err)
	}
	return localPath, nil
}

func (h *Handler) stageOptionalFormFile(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", common.NewApiError(common.KindInvalidInput, "invalid "+field+" file")
	}
	localPath, err := h.staging.Save(file, header)
	if err != nil {
		return "", common.WrapInternal("failed to stage uploaded file", err)
	}
	return localPath, nil
}
