package collector

import (
	"fmt"
	"time"

	"steamgrab/internal/domain"
)

// NewFetcher selects the correct implementation based on the MODE
func NewFetcher(mode, apiURL string, timeout time.Duration) (domain.Fetcher, error) {
	switch mode {
	case "steam":
		return NewSteamClient(apiURL, timeout), nil
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown EXTRACTOR_MODE: %s (use 'steam' or 'mock')", mode)
	}
}
