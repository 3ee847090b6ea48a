package checkins

import (
	"context"
	"fmt"

	"trackctl/internal/cli"
	"trackctl/internal/metrics"
	"trackctl/internal/models"
	"trackctl/internal/sync"
	"trackctl/internal/utils"
)

// CheckInCmd records or updates the daily check-in. Running it twice for
// the same day overwrites the earlier record.
type CheckInCmd struct {
	Day     string `help:"Day to record (YYYY-MM-DD). Defaults to today." short:"d"`
	Wakeup  bool   `help:"Woke up at 5am."`
	Workout bool   `help:"Completed a workout."`
	Video   bool   `help:"Captured a video."`
	Notes   string `help:"Freeform notes." short:"n"`
}

func (c *CheckInCmd) Run(ctx *cli.Context) error {
	day, err := ctx.DayOrToday(c.Day)
	if err != nil {
		return err
	}
	saved, err := ctx.Client.UpsertCheckIn(context.Background(), models.CheckInUpsert{
		Day:           day,
		Wakeup5AM:     c.Wakeup,
		Workout:       c.Workout,
		VideoCaptured: c.Video,
		Notes:         c.Notes,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Saved check-in for %s: wakeup %s  workout %s  video %s\n",
		saved.Day, cli.Flag(saved.Wakeup5AM), cli.Flag(saved.Workout), cli.Flag(saved.VideoCaptured))
	return nil
}

// CheckInListCmd lists check-ins over a date range, oldest first.
type CheckInListCmd struct {
	Days int `help:"Lookback window in days." default:"14"`
}

func (c *CheckInListCmd) Run(ctx *cli.Context) error {
	start, end, err := utils.RangeEndingAt(ctx.Today, c.Days)
	if err != nil {
		return err
	}
	list, err := ctx.Client.CheckIns(context.Background(), start, end)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Printf("No check-ins between %s and %s.\n", start, end)
		return nil
	}
	fmt.Printf("%-12s %-6s %-7s %-5s %s\n", "Day", "Wake", "Workout", "Video", "Notes")
	for _, ci := range list {
		fmt.Printf("%-12s %-6s %-7s %-5s %s\n",
			ci.Day, cli.Flag(ci.Wakeup5AM), cli.Flag(ci.Workout), cli.Flag(ci.VideoCaptured), ci.Notes)
	}
	return nil
}

// StatusCmd prints the dashboard snapshot: the four top figures plus any
// reminder badges.
type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	resources := []sync.Resource{sync.ResourceSummary, sync.ResourceMortgageSummary}
	snap, err := ctx.Fetcher.Fetch(context.Background(), resources, ctx.DefaultView())
	if err != nil {
		return err
	}

	for _, kpi := range metrics.TopKPIs(snap.Summary, snap.MortgageSummary) {
		fmt.Printf("%-20s %s\n", kpi.Label, kpi.Value)
	}

	badges := metrics.ReminderBadges(snap.Summary.Reminders)
	if len(badges) > 0 {
		fmt.Println()
		for _, b := range badges {
			marker := "·"
			if b.Warning {
				marker = "!"
			}
			fmt.Printf("%s [%s] %s\n", marker, b.Area, b.Message)
		}
	}
	return nil
}

// ReviewCmd prints the weekly scorecard for the week containing a day.
type ReviewCmd struct {
	Day string `help:"Anchor day (YYYY-MM-DD). Defaults to today." short:"d"`
}

func (c *ReviewCmd) Run(ctx *cli.Context) error {
	day, err := ctx.DayOrToday(c.Day)
	if err != nil {
		return err
	}
	review, err := ctx.Client.WeeklyReview(context.Background(), day)
	if err != nil {
		return err
	}

	score, total := metrics.WeeklyScore(review)
	fmt.Printf("Week %s to %s: %d/%d\n\n", review.WeekStart, review.WeekEnd, score, total)
	fmt.Printf("  %s 4+ early wakeups\n", cli.Flag(review.WakeupsGE4))
	fmt.Printf("  %s 5 workouts\n", cli.Flag(review.WorkoutsCompleted5))
	fmt.Printf("  %s at least 1 video\n", cli.Flag(review.CapturedAtLeast1Video))
	fmt.Printf("  %s mortgage action\n", cli.Flag(review.MortgageActionTaken))
	fmt.Printf("  %s relationship action\n", cli.Flag(review.RelationshipActionTaken))
	return nil
}
