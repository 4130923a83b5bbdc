package runner

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "steamgrab/internal/errors"
	"steamgrab/internal/storage"
)

type fetcherFunc func(ctx context.Context, appID string) (json.RawMessage, error)

func (f fetcherFunc) FetchAppDetails(ctx context.Context, appID string) (json.RawMessage, error) {
	return f(ctx, appID)
}

func newTestRunner(t *testing.T, f fetcherFunc) (*Runner, string) {
	dir := t.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(f, storage.NewWriter(dir), log), dir
}

func okFetcher(ctx context.Context, appID string) (json.RawMessage, error) {
	return json.RawMessage(`{
		"name": "Game X",
		"header_image": "http://h.jpg",
		"screenshots": [
			{"path_full": "http://s1.jpg"},
			{"id": 2},
			{"path_full": "http://s3.jpg"}
		]
	}`), nil
}

func TestProcessURL(t *testing.T) {
	r, dir := newTestRunner(t, okFetcher)

	res := r.ProcessURL(context.Background(), "https://store.steampowered.com/app/10/")
	require.NoError(t, res.Err)
	require.Equal(t, "10", res.AppID)
	require.Equal(t, 3, res.ImageCount)
	require.FileExists(t, filepath.Join(dir, "app_10.json"))
}

func TestRunContinuesPastBadURL(t *testing.T) {
	r, dir := newTestRunner(t, okFetcher)

	results := r.Run(context.Background(), []string{
		"https://store.steampowered.com/app/10/",
		"https://store.steampowered.com/sub/999/",
		"https://store.steampowered.com/app/20/",
	})
	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
	require.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(results[1].Err))
	require.NoError(t, results[2].Err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestProcessURLRemoteFailureWritesNothing(t *testing.T) {
	r, dir := newTestRunner(t, func(ctx context.Context, appID string) (json.RawMessage, error) {
		return nil, apperrors.NewRemoteFailure("api reported success=false for app " + appID)
	})

	res := r.ProcessURL(context.Background(), "https://store.steampowered.com/app/10/")
	require.Error(t, res.Err)
	require.Equal(t, apperrors.KindRemoteFailure, apperrors.KindOf(res.Err))
	require.NoFileExists(t, filepath.Join(dir, "app_10.json"))
}

func TestProcessURLRecoversFromPanic(t *testing.T) {
	r, _ := newTestRunner(t, func(ctx context.Context, appID string) (json.RawMessage, error) {
		panic("boom")
	})

	res := r.ProcessURL(context.Background(), "https://store.steampowered.com/app/10/")
	require.Error(t, res.Err)
	require.Equal(t, apperrors.KindUnknown, apperrors.KindOf(res.Err))

	// a panicking item must not take the rest of the batch down
	results := r.Run(context.Background(), []string{
		"https://store.steampowered.com/app/10/",
		"https://store.steampowered.com/app/20/",
	})
	require.Len(t, results, 2)
}
