package user

import (
	"net/http"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
	"vidtube/internal/media"
)

// Handler wires the HTTP surface to the user service. File-bearing routes
// stage uploads locally first and always clean them up afterwards.
type Handler struct {
	userService UserService
	staging     *media.Staging
}

func NewHandler(userService UserService, staging *media.Staging) *Handler {
	return &Handler{userService: userService, staging: staging}
}

// RegisterRoutes mounts the public auth routes and the protected profile
// routes on their respective routers.
func (h *Handler) RegisterRoutes(public, protected *mux.Router) {
	public.HandleFunc("/users/register", h.Register).Methods("POST")
	public.HandleFunc("/users/login", h.Login).Methods("POST")
	public.HandleFunc("/users/refresh-token", h.Refresh).Methods("POST")

	protected.HandleFunc("/users/logout", h.Logout).Methods("POST")
	protected.HandleFunc("/users/change-password", h.ChangePassword).Methods("POST")
	protected.HandleFunc("/users/current-user", h.CurrentUser).Methods("GET")
	protected.HandleFunc("/users/update-account", h.UpdateAccount).Methods("PATCH")
	protected.HandleFunc("/users/avatar", h.UpdateAvatar).Methods("PATCH")
	protected.HandleFunc("/users/cover-image", h.UpdateCover).Methods("PATCH")
	protected.HandleFunc("/users/history", h.WatchHistory).Methods("GET")
	protected.HandleFunc("/users/c/{username}", h.ChannelProfile).Methods("GET")
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		common.WriteError(w, common.NewApiError(common.KindInvalidInput, "invalid multipart form"))
		return
	}

	input := RegisterInput{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		FullName: r.FormValue("fullName"),
		Password: r.FormValue("password"),
	}

	avatarPath, err := h.stageFormFile(r, "avatar")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	defer h.staging.Cleanup(avatarPath)
	input.AvatarPath = avatarPath

	coverPath, err := h.stageOptionalFormFile(r, "coverImage")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	defer h.staging.Cleanup(coverPath)
	input.CoverPath = coverPath

	user, err := h.userService.Register(r.Context(), input)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusCreated, user, "User registered successfully")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := common.DecodeBody(r, &body); err != nil {
		common.WriteError(w, err)
		return
	}

	login := body.Username
	if login == "" {
		login = body.Email
	}

	user, tokens, err := h.userService.Login(r.Context(), login, body.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"user":         user,
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	}, "Login successful")
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if err := h.userService.Logout(r.Context(), callerID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, map[string]bool{"loggedOut": true}, "Logged out successfully")
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := common.DecodeBody(r, &body); err != nil {
		common.WriteError(w, err)
		return
	}

	tokens, err := h.userService.Refresh(r.Context(), body.RefreshToken)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, tokens, "Token refreshed successfully")
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	var body struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := common.DecodeBody(r, &body); err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.userService.ChangePassword(r.Context(), callerID, body.OldPassword, body.NewPassword); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, map[string]bool{"changed": true}, "Password changed successfully")
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	user, err := h.userService.CurrentUser(r.Context(), callerID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, user, "Current user fetched successfully")
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	var body struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
	}
	if err := common.DecodeBody(r, &body); err != nil {
		common.WriteError(w, err)
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), callerID, body.FullName, body.Email)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, user, "Account updated successfully")
}

func (h *Handler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	h.replaceMedia(w, r, "avatar")
}

func (h *Handler) UpdateCover(w http.ResponseWriter, r *http.Request) {
	h.replaceMedia(w, r, "coverImage")
}

func (h *Handler) replaceMedia(w http.ResponseWriter, r *http.Request, field string) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := r.ParseMultipartForm(16 << 20); err != nil {
		common.WriteError(w, common.NewApiError(common.KindInvalidInput, "invalid multipart form"))
		return
	}

	localPath, err := h.stageFormFile(r, field)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	defer h.staging.Cleanup(localPath)

	var user interface{}
	if field == "avatar" {
		user, err = h.userService.UpdateAvatar(r.Context(), callerID, localPath)
	} else {
		user, err = h.userService.UpdateCover(r.Context(), callerID, localPath)
	}
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, user, field+" updated successfully")
}

func (h *Handler) WatchHistory(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	page := common.ParsePageParams(r.URL.Query())
	videos, err := h.userService.WatchHistory(r.Context(), callerID, page)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, videos, "Watch history fetched successfully")
}

func (h *Handler) ChannelProfile(w http.ResponseWriter, r *http.Request) {
	callerID, err := common.CallerID(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	username := mux.Vars(r)["username"]
	profile, err := h.userService.ChannelProfile(r.Context(), username, callerID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteSuccess(w, http.StatusOK, profile, "Channel profile fetched successfully")
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
