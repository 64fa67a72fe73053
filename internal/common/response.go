package common

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ApiResponse is the uniform success envelope, same shape for entities,
// lists and small result objects.
type ApiResponse struct {
	Status  int         `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ApiResponse{Status: status, Data: data, Message: message}); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

// WriteError shapes any error through the envelope. Internal causes get
// logged here, once, right at the boundary.
func WriteError(w http.ResponseWriter, err error) {
	apiErr, _ := AsApiError(err)
	if apiErr.Kind == KindInternal || apiErr.Kind == KindInvalidState {
		logrus.WithError(err).Error("request failed")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	if encErr := json.NewEncoder(w).Encode(apiErr); encErr != nil {
		logrus.WithError(encErr).Error("failed to encode error response")
	}
}

// DecodeBody reads a JSON body into dst, tolerating an empty body so
// handlers can apply their own required-field checks.
func DecodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return NewApiError(KindInvalidInput, "invalid request body").WithCause(err)
	}
	return nil
}
