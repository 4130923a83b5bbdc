package collector

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"time"

	"github.com/go-resty/resty/v2"

	apperrors "steamgrab/internal/errors"
)

const defaultAPIURL = "https://store.steampowered.com/api/appdetails?appids=%s"

// SteamClient fetches app details from the public appdetails endpoint.
type SteamClient struct {
	client *resty.Client
	apiURL string
}

// NewSteamClient builds a client against the given endpoint template
// (one %s placeholder for the app id). An empty template selects the
// public store endpoint.
func NewSteamClient(apiURL string, timeout time.Duration) *SteamClient {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	client := resty.New().SetTimeout(timeout)
	return &SteamClient{client: client, apiURL: apiURL}
}

// appEnvelope is the per-id wrapper the API returns:
// {"<id>": {"success": bool, "data": {...}}}
type appEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// FetchAppDetails makes a single GET for one app id and returns the raw
// data record from its envelope. No retry: one failed attempt is
// terminal for the item.
func (sc *SteamClient) FetchAppDetails(ctx context.Context, appID string) (json.RawMessage, error) {
	resp, err := sc.client.R().SetContext(ctx).Get(fmt.Sprintf(sc.apiURL, appID))
	if err != nil {
		var netErr net.Error
		if stderrors.As(err, &netErr) && netErr.Timeout() {
			return nil, apperrors.NewTimeout("api request timed out", err)
		}
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewTimeout("api request timed out", err)
		}
		return nil, apperrors.NewNetwork("api request failed", err)
	}
	if resp.IsError() {
		return nil, apperrors.NewNetwork(fmt.Sprintf("api returned status %d", resp.StatusCode()), nil)
	}

	var envelopes map[string]appEnvelope
	if err := json.Unmarshal(resp.Body(), &envelopes); err != nil {
		return nil, apperrors.NewInvalidResponse("api response is not valid JSON")
	}

	env, ok := envelopes[appID]
	if !ok {
		return nil, apperrors.NewInvalidResponse("api response missing app id " + appID)
	}
	if !env.Success {
		return nil, apperrors.NewRemoteFailure("api reported success=false for app " + appID)
	}
	return env.Data, nil
}
