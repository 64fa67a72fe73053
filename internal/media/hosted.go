package media

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"vidtube/internal/config"
)

// HostedDelegate talks to the external media host over its upload API.
type HostedDelegate struct {
	client *resty.Client
}

type hostedUploadResponse struct {
	URL      string  `json:"url"`
	PublicID string  `json:"public_id"`
	Duration float64 `json:"duration"`
}

type hostedStatusResponse struct {
	Result string `json:"result"`
}

func NewHostedDelegate(cfg config.MediaConfig) *HostedDelegate {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSec) * time.Second).
		SetBasicAuth(cfg.APIKey, cfg.APISecret)
	return &HostedDelegate{client: client}
}

func (d *HostedDelegate) Store(ctx context.Context, localPath, desiredPublicID string) (*Asset, error) {
	var out hostedUploadResponse

	req := d.client.R().
		SetContext(ctx).
		SetFile("file", localPath).
		SetFormData(map[string]string{"resource_type": "auto"}).
		SetResult(&out).
		ForceContentType("application/json")
	if desiredPublicID != "" {
		req.SetFormData(map[string]string{
			"public_id":  desiredPublicID,
			"overwrite":  "true",
			"invalidate": "true",
		})
	}

	resp, err := req.Post("/upload")
	if err != nil {
		return nil, fmt.Errorf("media upload failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("media upload rejected: %s", resp.Status())
	}
	return &Asset{URL: out.URL, PublicID: out.PublicID, Duration: out.Duration}, nil
}

func (d *HostedDelegate) Remove(ctx context.Context, publicID string, kind Kind) error {
	var out hostedStatusResponse

	resp, err := d.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"public_id":     publicID,
			"resource_type": kind.String(),
		}).
		SetResult(&out).
		ForceContentType("application/json").
		Post("/destroy")
	if err != nil {
		return fmt.Errorf("media delete failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("media delete rejected: %s", resp.Status())
	}
	return nil
}

func (d *HostedDelegate) Rename(ctx context.Context, fromID, toID string) (*Asset, error) {
	var out hostedUploadResponse

	resp, err := d.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"from_public_id": fromID,
			"to_public_id":   toID,
		}).
		SetResult(&out).
		ForceContentType("application/json").
		Post("/rename")
	if err != nil {
		return nil, fmt.Errorf("media rename failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("media rename rejected: %s", resp.Status())
	}
	return &Asset{URL: out.URL, PublicID: out.PublicID}, nil
}
