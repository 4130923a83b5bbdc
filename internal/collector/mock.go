package collector

import (
	"context"
	"encoding/json"
	"fmt"
)

// MockClient implements domain.Fetcher but returns fake data
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (mc *MockClient) FetchAppDetails(ctx context.Context, appID string) (json.RawMessage, error) {
	record := fmt.Sprintf(`{
		"name": "Mock Game %s",
		"header_image": "http://localhost/mock/%s/header.jpg",
		"screenshots": [
			{"path_full": "http://localhost/mock/%s/ss_1.jpg"},
			{"path_full": "http://localhost/mock/%s/ss_2.jpg"}
		]
	}`, appID, appID, appID, appID)
	return json.RawMessage(record), nil
}
