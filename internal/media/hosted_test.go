package media

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube/internal/config"
)

func newHostedForTest(t *testing.T, handler http.HandlerFunc) *HostedDelegate {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewHostedDelegate(config.MediaConfig{
		BaseURL:    server.URL,
		APIKey:     "key",
		APISecret:  "secret",
		TimeoutSec: 5,
	})
}

func stagedFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHostedStore(t *testing.T) {
	var gotPublicID, gotOverwrite string
	delegate := newHostedForTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotPublicID = r.FormValue("public_id")
		gotOverwrite = r.FormValue("overwrite")

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		file.Close()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(hostedUploadResponse{
			URL:      "http://host/video-abc.mp4",
			PublicID: "video-abc",
			Duration: 12.5,
		})
	})

	asset, err := delegate.Store(context.Background(), stagedFile(t, "clip.mp4", "bytes"), "video-abc")
	require.NoError(t, err)
	assert.Equal(t, "video-abc", asset.PublicID)
	assert.Equal(t, 12.5, asset.Duration)
	assert.Equal(t, "video-abc", gotPublicID)
	assert.Equal(t, "true", gotOverwrite)
}

func TestHostedStore_Rejected(t *testing.T) {
	delegate := newHostedForTest(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too large", http.StatusBadRequest)
	})

	_, err := delegate.Store(context.Background(), stagedFile(t, "clip.mp4", "bytes"), "")
	require.Error(t, err)
}

// A host that replies 200 with something other than JSON must surface an
// error, never a zero-valued asset.
func TestHostedStore_NonJSONReply(t *testing.T) {
	delegate := newHostedForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>maintenance</html>"))
	})

	asset, err := delegate.Store(context.Background(), stagedFile(t, "clip.mp4", "bytes"), "video-abc")
	require.Error(t, err)
	assert.Nil(t, asset)
}

func TestHostedRemove(t *testing.T) {
	var gotKind string
	delegate := newHostedForTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/destroy", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotKind = r.FormValue("resource_type")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(hostedStatusResponse{Result: "ok"})
	})

	require.NoError(t, delegate.Remove(context.Background(), "thumbnail-abc", KindImage))
	assert.Equal(t, "image", gotKind)
}

func TestHostedRename(t *testing.T) {
	delegate := newHostedForTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rename", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "avatar-temp-1", r.FormValue("from_public_id"))
		require.Equal(t, "avatar-1", r.FormValue("to_public_id"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(hostedUploadResponse{URL: "http://host/avatar-1.png", PublicID: "avatar-1"})
	})

	asset, err := delegate.Rename(context.Background(), "avatar-temp-1", "avatar-1")
	require.NoError(t, err)
	assert.Equal(t, "avatar-1", asset.PublicID)
}

func TestDetectKind(t *testing.T) {
	assert.Equal(t, KindVideo, DetectKind("video/mp4"))
	assert.Equal(t, KindImage, DetectKind("image/png"))
	assert.Equal(t, KindImage, DetectKind("application/octet-stream"))
}
