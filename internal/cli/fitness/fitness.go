package fitness

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"trackctl/internal/cli"
	"trackctl/internal/metrics"
	"trackctl/internal/models"
	"trackctl/internal/utils"
)

// WeightCmd records a weight measurement.
type WeightCmd struct {
	Value float64 `arg:"" help:"Weight in pounds."`
	Day   string  `help:"Day (YYYY-MM-DD). Defaults to today." short:"d"`
}

func (c *WeightCmd) Run(ctx *cli.Context) error {
	if c.Value <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	day, err := ctx.DayOrToday(c.Day)
	if err != nil {
		return err
	}
	saved, err := ctx.Client.AddWeight(context.Background(), models.WeightCreate{
		Day:       day,
		WeightLbs: c.Value,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Recorded %.1f lbs on %s\n", saved.Value, saved.Day)
	return nil
}

// WaistCmd records a waist measurement.
type WaistCmd struct {
	Value float64 `arg:"" help:"Waist in inches."`
	Day   string  `help:"Day (YYYY-MM-DD). Defaults to today." short:"d"`
}

func (c *WaistCmd) Run(ctx *cli.Context) error {
	if c.Value <= 0 {
		return fmt.Errorf("waist must be positive")
	}
	day, err := ctx.DayOrToday(c.Day)
	if err != nil {
		return err
	}
	saved, err := ctx.Client.AddWaist(context.Background(), models.WaistCreate{
		Day:        day,
		BodyFatPct: c.Value,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Recorded waist %.1f on %s\n", saved.Value, saved.Day)
	return nil
}

// PhotoCmd uploads a progress photo. The file is validated locally before
// any request is made.
type PhotoCmd struct {
	Path string `arg:"" help:"Path to a .jpg, .jpeg, .png, or .webp file."`
	Day  string `help:"Day (YYYY-MM-DD). Defaults to today." short:"d"`
}

func (c *PhotoCmd) Run(ctx *cli.Context) error {
	if err := utils.ValidatePhotoPath(c.Path); err != nil {
		return err
	}
	day, err := ctx.DayOrToday(c.Day)
	if err != nil {
		return err
	}
	f, err := os.Open(c.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	saved, err := ctx.Client.UploadPhoto(context.Background(), day, filepath.Base(c.Path), f)
	if err != nil {
		return err
	}
	fmt.Printf("Uploaded %s for %s\n", saved.Filename, saved.Day)
	return nil
}

// ListCmd prints the merged measurement series over a lookback window.
type ListCmd struct {
	Days int `help:"Lookback window in days." default:"90"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	start, end, err := utils.RangeEndingAt(ctx.Today, c.Days)
	if err != nil {
		return err
	}
	data, err := ctx.Client.FitnessMetrics(context.Background(), start, end)
	if err != nil {
		return err
	}

	series := metrics.MergeFitnessSeries(data.Metrics)
	if len(series) == 0 {
		fmt.Printf("No measurements between %s and %s.\n", start, end)
	} else {
		fmt.Printf("%-12s %10s %10s\n", "Day", "Weight", "Waist")
		for _, row := range series {
			fmt.Printf("%-12s %10s %10s\n", row.Day, formatValue(row.Weight), formatValue(row.Waist))
		}
	}

	if len(data.Photos) > 0 {
		fmt.Printf("\n%d progress photo(s):\n", len(data.Photos))
		for _, p := range data.Photos {
			fmt.Printf("  %s  %s\n", p.Day, ctx.Client.PhotoURL(p.URL))
		}
	}
	return nil
}

func formatValue(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}
