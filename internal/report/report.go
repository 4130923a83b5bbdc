package report

import (
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"steamgrab/internal/domain"
)

// Write renders a one-page HTML summary of the batch: image counts per
// saved app and the overall success/failure split.
func Write(path string, results []domain.Result) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Images per App"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)

	var barX []string
	var barY []opts.BarData
	succeeded := 0
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			continue
		}
		succeeded++
		barX = append(barX, res.AppID)
		barY = append(barY, opts.BarData{Value: res.ImageCount})
	}
	bar.SetXAxis(barX).AddSeries("Images", barY)

	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Batch Outcome"}))
	pie.AddSeries("URLs", []opts.PieData{
		{Name: "succeeded", Value: succeeded},
		{Name: "failed", Value: failed},
	})

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return err
	}
	return pie.Render(f)
}
