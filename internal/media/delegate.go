// Package media is the Media Delegate boundary: raw video/image bytes live
// outside the entity store, behind a stable public id. Two implementations
// exist, the hosted HTTP service and a GridFS bucket inside Mongo.
package media

import (
	"context"
	"strings"
)

// Kind represents the asset class the delegate tracks per object.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	return k == KindImage || k == KindVideo
}

// DetectKind classifies an upload by MIME type, images are the fallback.
func DetectKind(mimeType string) Kind {
	lower := strings.ToLower(mimeType)
	if strings.HasPrefix(lower, "video/") {
		return KindVideo
	}
	return KindImage
}

// Asset is what the delegate hands back for a stored object. Duration is
// only meaningful for video assets and only on implementations that probe
// the media, zero otherwise.
type Asset struct {
	URL      string  `json:"url"`
	PublicID string  `json:"publicId"`
	Duration float64 `json:"duration,omitempty"`
}

// Delegate is the external media host as this system consumes it. Calls are
// blocking and are not retried; a transient failure surfaces immediately.
type Delegate interface {
	// Store uploads the locally staged file. A non-empty desiredPublicID
	// asks the delegate to overwrite that object in place.
	Store(ctx context.Context, localPath, desiredPublicID string) (*Asset, error)

	// Remove deletes the object, kind disambiguates the delegate's
	// storage class.
	Remove(ctx context.Context, publicID string, kind Kind) error

	// Rename promotes a temporary upload to its permanent public id,
	// used once at account creation.
	Rename(ctx context.Context, fromID, toID string) (*Asset, error)
}
