package normalize

import (
	"encoding/json"

	"steamgrab/internal/domain"
)

const nameFallback = "Unknown"

// rawDetails is the slice of the store record this tool cares about.
// Pointer fields distinguish "absent" from "present but empty".
type rawDetails struct {
	Name        *string         `json:"name"`
	HeaderImage *string         `json:"header_image"`
	Screenshots json.RawMessage `json:"screenshots"`
}

type screenshotEntry struct {
	PathFull *string `json:"path_full"`
}

// BuildPayload maps a raw store record into the normalized output shape.
// It never fails: missing or malformed fields degrade to their defaults.
func BuildPayload(appID, source string, record json.RawMessage) domain.Payload {
	var raw rawDetails
	// Type mismatches leave the affected fields at their zero value.
	_ = json.Unmarshal(record, &raw)

	name := nameFallback
	if raw.Name != nil {
		name = *raw.Name
	}

	return domain.Payload{
		AppID:  appID,
		Name:   name,
		Source: source,
		Images: domain.Images{
			Header:      raw.HeaderImage,
			Screenshots: screenshotURLs(raw.Screenshots),
		},
	}
}

// screenshotURLs collects path_full from every entry that has one,
// preserving source order. Anything that is not a well-formed entry
// list yields an empty slice, never nil.
func screenshotURLs(raw json.RawMessage) []string {
	urls := []string{}

	var entries []screenshotEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return urls
	}
	for _, e := range entries {
		if e.PathFull != nil {
			urls = append(urls, *e.PathFull)
		}
	}
	return urls
}
