package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Staging writes uploaded multipart files to local disk before they are
// forwarded to the delegate. Staged files are always removed after the
// attempt, success or failure.
type Staging struct {
	dir string
}

func NewStaging(dir string) *Staging {
	return &Staging{dir: dir}
}

// Save copies one multipart file into the staging dir under a fresh name,
// keeping the original extension so MIME detection still works.
func (s *Staging) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	localPath := filepath.Join(s.dir, "staged-"+uuid.NewString()+ext)

	out, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("create staged file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(localPath)
		return "", fmt.Errorf("write staged file: %w", err)
	}
	return localPath, nil
}

// Cleanup removes a staged file, logging rather than failing the request
// when the remove itself errors.
func (s *Staging) Cleanup(localPath string) {
	if localPath == "" {
		return
	}
	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("path", localPath).Warn("failed to remove staged file")
	}
}
