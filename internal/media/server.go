package media

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"vidtube/internal/dbmongo"
)

// HTTPServer serves GridFS-hosted assets back to clients. Only mounted
// when the delegate mode is gridfs; hosted assets are served by the
// external host directly.
type HTTPServer struct {
	mongoClient *dbmongo.MongoClient
}

func NewHTTPServer(mongoClient *dbmongo.MongoClient) *HTTPServer {
	return &HTTPServer{mongoClient: mongoClient}
}

func (s *HTTPServer) Register(router *mux.Router) {
	router.HandleFunc("/media/{publicId}", s.serveAsset).Methods("GET")
}

func (s *HTTPServer) serveAsset(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	publicID := vars["publicId"]

	stream, err := s.mongoClient.GridFS.OpenDownloadStreamByName(publicID)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer stream.Close()

	file := stream.GetFile()
	w.Header().Set("Content-Type", s.getContentType(file.Name))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", file.Length))

	if _, err := io.Copy(w, stream); err != nil {
		logrus.WithError(err).Error("error streaming media file")
	}
}

func (s *HTTPServer) getContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	default:
		return "application/octet-stream"
	}
}
