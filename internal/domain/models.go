package domain

import (
	"context"
	"encoding/json"
)

// Payload is the clean data structure written to disk, one file per app.
// Field order here is the field order in the output JSON.
type Payload struct {
	AppID  string `json:"app_id"`
	Name   string `json:"name"`
	Source string `json:"source"`
	Images Images `json:"images"`
}

type Images struct {
	// Header is null in the output when the store record carries no
	// header image.
	Header *string `json:"header"`
	// Screenshots is always present, possibly empty, never null.
	Screenshots []string `json:"screenshots"`
}

// ImageCount reports how many image URLs the payload carries. An empty
// header string counts as no header.
func (p Payload) ImageCount() int {
	n := len(p.Images.Screenshots)
	if p.Images.Header != nil && *p.Images.Header != "" {
		n++
	}
	return n
}

// Result is the per-URL outcome of one batch item.
type Result struct {
	URL        string
	AppID      string
	Path       string
	ImageCount int
	Err        error
}

// Fetcher defines the interface for retrieving the raw store record of
// a single app. Implementations make exactly one attempt per call.
type Fetcher interface {
	FetchAppDetails(ctx context.Context, appID string) (json.RawMessage, error)
}
