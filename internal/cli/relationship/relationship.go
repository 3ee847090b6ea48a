package relationship

import (
	"context"
	"fmt"

	"trackctl/internal/cli"
	"trackctl/internal/constants"
	"trackctl/internal/models"
	"trackctl/internal/utils"
)

// TripShowCmd prints the current trip-planning record.
type TripShowCmd struct{}

func (c *TripShowCmd) Run(ctx *cli.Context) error {
	trip, err := ctx.Client.Trip(context.Background())
	if err != nil {
		return err
	}
	if trip == nil {
		fmt.Println("No trip planned yet. Use 'trip set' to start one.")
		return nil
	}
	printTrip(*trip)
	return nil
}

// TripSetCmd replaces the trip record. Unset flags keep their current
// value; the save appends a history snapshot server-side.
type TripSetCmd struct {
	Start     string  `help:"Start date (YYYY-MM-DD)."`
	End       string  `help:"End date (YYYY-MM-DD)."`
	Dates     string  `help:"Freeform dates text (legacy field)."`
	Adults    *bool   `help:"Adults only." negatable:""`
	Lodging   *bool   `help:"Lodging booked." negatable:""`
	Childcare *bool   `help:"Childcare confirmed." negatable:""`
	Notes     *string `help:"Notes." short:"n"`
}

func (c *TripSetCmd) Run(ctx *cli.Context) error {
	for _, day := range []string{c.Start, c.End} {
		if day != "" {
			if err := utils.ValidateDate(day); err != nil {
				return fmt.Errorf("invalid date %q: %w", day, err)
			}
		}
	}

	// Merge over the current record so one flag can be set on its own.
	current, err := ctx.Client.Trip(context.Background())
	if err != nil {
		return err
	}
	payload := models.TripUpdate{}
	if current != nil {
		payload = models.TripUpdate{
			StartDate:          current.StartDate,
			EndDate:            current.EndDate,
			Dates:              current.Dates,
			AdultsOnly:         current.AdultsOnly,
			LodgingBooked:      current.LodgingBooked,
			ChildcareConfirmed: current.ChildcareConfirmed,
			Notes:              current.Notes,
		}
	}
	if c.Start != "" {
		payload.StartDate = c.Start
	}
	if c.End != "" {
		payload.EndDate = c.End
	}
	if c.Dates != "" {
		payload.Dates = c.Dates
	}
	if c.Adults != nil {
		payload.AdultsOnly = *c.Adults
	}
	if c.Lodging != nil {
		payload.LodgingBooked = *c.Lodging
	}
	if c.Childcare != nil {
		payload.ChildcareConfirmed = *c.Childcare
	}
	if c.Notes != nil {
		payload.Notes = *c.Notes
	}

	saved, err := ctx.Client.UpdateTrip(context.Background(), payload)
	if err != nil {
		return err
	}
	fmt.Println("Trip saved.")
	printTrip(*saved)
	return nil
}

// TripHistoryCmd lists trip snapshots, newest first.
type TripHistoryCmd struct {
	Limit int `help:"Maximum snapshots to show." default:"25"`
}

func (c *TripHistoryCmd) Run(ctx *cli.Context) error {
	limit := c.Limit
	if limit <= 0 {
		limit = constants.DefaultTripHistoryLimit
	}
	history, err := ctx.Client.TripHistory(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Println("No snapshots yet. Saving the trip records one.")
		return nil
	}
	for _, h := range history {
		s := h.Snapshot
		fmt.Printf("%s  %s  lodging %s  childcare %s\n",
			h.CreatedAt, tripDates(s), cli.YesNo(s.LodgingBooked), cli.YesNo(s.ChildcareConfirmed))
	}
	return nil
}

// GiftAddCmd logs a gift or gesture.
type GiftAddCmd struct {
	Description string  `arg:"" help:"What the gift or gesture was."`
	Amount      float64 `help:"Optional dollar amount." short:"a"`
	Day         string  `help:"Day (YYYY-MM-DD). Defaults to today." short:"d"`
}

func (c *GiftAddCmd) Run(ctx *cli.Context) error {
	if c.Description == "" {
		return fmt.Errorf("description cannot be empty")
	}
	if c.Amount < 0 {
		return fmt.Errorf("amount must be >= 0")
	}
	day, err := ctx.DayOrToday(c.Day)
	if err != nil {
		return err
	}
	saved, err := ctx.Client.AddGift(context.Background(), models.GiftCreate{
		Day:         day,
		Description: c.Description,
		Amount:      c.Amount,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Logged gift on %s: %s\n", saved.Day, saved.Description)
	return nil
}

// GiftListCmd lists gifts for one calendar month.
type GiftListCmd struct {
	Year  int `help:"Calendar year. Defaults to the current month's."`
	Month int `help:"Calendar month 1-12. Defaults to the current month."`
}

func (c *GiftListCmd) Run(ctx *cli.Context) error {
	year, month := c.Year, c.Month
	if year == 0 || month == 0 {
		y, m, err := utils.MonthOf(ctx.Today)
		if err != nil {
			return err
		}
		if year == 0 {
			year = y
		}
		if month == 0 {
			month = m
		}
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be 1-12")
	}

	gifts, err := ctx.Client.Gifts(context.Background(), year, month)
	if err != nil {
		return err
	}
	if len(gifts) == 0 {
		fmt.Printf("No gifts logged for %04d-%02d.\n", year, month)
		return nil
	}
	for _, g := range gifts {
		line := fmt.Sprintf("%s  %s", g.Day, g.Description)
		if g.Amount > 0 {
			line += fmt.Sprintf("  (%s)", cli.Money(g.Amount))
		}
		fmt.Println(line)
	}
	return nil
}

func printTrip(t models.Trip) {
	fmt.Printf("Dates:               %s\n", tripDates(t))
	fmt.Printf("Adults only:         %s\n", cli.YesNo(t.AdultsOnly))
	fmt.Printf("Lodging booked:      %s\n", cli.YesNo(t.LodgingBooked))
	fmt.Printf("Childcare confirmed: %s\n", cli.YesNo(t.ChildcareConfirmed))
	if t.Notes != "" {
		fmt.Printf("Notes:               %s\n", t.Notes)
	}
}

func tripDates(t models.Trip) string {
	switch {
	case t.StartDate != "" && t.EndDate != "":
		return t.StartDate + " to " + t.EndDate
	case t.StartDate != "":
		return "from " + t.StartDate
	case t.Dates != "":
		return t.Dates
	default:
		return "not set"
	}
}
