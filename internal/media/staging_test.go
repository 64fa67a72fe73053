package media

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, filename, content string) (multipart.File, *multipart.FileHeader) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	return file, header
}

func TestStagingSaveAndCleanup(t *testing.T) {
	staging := NewStaging(t.TempDir())

	file, header := multipartFile(t, "thumb.png", "image bytes")
	path, err := staging.Save(file, header)
	require.NoError(t, err)

	// keeps the extension, fresh name
	assert.Equal(t, ".png", filepath.Ext(path))
	assert.NotContains(t, filepath.Base(path), "thumb")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))

	staging.Cleanup(path)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStagingCleanup_ToleratesMissingFile(t *testing.T) {
	staging := NewStaging(t.TempDir())

	// neither of these should panic or log an error path fatal
	staging.Cleanup("")
	staging.Cleanup(filepath.Join(t.TempDir(), "never-created.mp4"))
}
