package runner

import (
	"context"
	"fmt"
	"log/slog"

	"steamgrab/internal/domain"
	apperrors "steamgrab/internal/errors"
	"steamgrab/internal/extract"
	"steamgrab/internal/normalize"
	"steamgrab/internal/storage"
)

// Runner processes URLs one at a time: extract id, fetch, normalize,
// persist. Item failures are reported and never abort the batch.
type Runner struct {
	fetcher domain.Fetcher
	store   *storage.Writer
	log     *slog.Logger
}

func New(fetcher domain.Fetcher, store *storage.Writer, log *slog.Logger) *Runner {
	return &Runner{fetcher: fetcher, store: store, log: log}
}

// Run processes every URL in input order and returns one Result per URL.
func (r *Runner) Run(ctx context.Context, urls []string) []domain.Result {
	results := make([]domain.Result, 0, len(urls))
	for _, u := range urls {
		res := r.ProcessURL(ctx, u)
		r.report(res)
		results = append(results, res)
	}
	return results
}

// ProcessURL runs the four stages for a single URL. Every failure,
// including a panic in a stage, comes back as Result.Err.
func (r *Runner) ProcessURL(ctx context.Context, url string) (res domain.Result) {
	res.URL = url
	defer func() {
		if p := recover(); p != nil {
			res.Err = apperrors.NewUnknown(fmt.Errorf("panic: %v", p))
		}
	}()

	r.log.Info("processing", "url", url)

	appID, err := extract.AppID(url)
	if err != nil {
		res.Err = err
		return
	}
	res.AppID = appID

	record, err := r.fetcher.FetchAppDetails(ctx, appID)
	if err != nil {
		res.Err = err
		return
	}

	payload := normalize.BuildPayload(appID, url, record)

	path, err := r.store.Save(payload)
	if err != nil {
		res.Err = err
		return
	}

	res.Path = path
	res.ImageCount = payload.ImageCount()
	return
}

// report emits exactly one status line per item.
func (r *Runner) report(res domain.Result) {
	if res.Err == nil {
		r.log.Info("saved", "url", res.URL, "app_id", res.AppID, "path", res.Path, "images", res.ImageCount)
		return
	}

	switch kind := apperrors.KindOf(res.Err); kind {
	case apperrors.KindInvalidInput,
		apperrors.KindTimeout,
		apperrors.KindNetwork,
		apperrors.KindInvalidResponse,
		apperrors.KindRemoteFailure,
		apperrors.KindPersistence:
		r.log.Error("item failed", "url", res.URL, "kind", string(kind), "err", res.Err.Error())
	default:
		r.log.Error("unexpected item failure", "url", res.URL, "err", res.Err.Error())
	}
}
