package mortgage

import (
	"context"
	"fmt"

	"trackctl/internal/cli"
	"trackctl/internal/constants"
	"trackctl/internal/metrics"
	"trackctl/internal/models"
	"trackctl/internal/utils"
)

// PayCmd records an extra principal payment.
type PayCmd struct {
	Amount float64 `arg:"" help:"Payment amount in dollars."`
	Day    string  `help:"Day (YYYY-MM-DD). Defaults to today." short:"d"`
	Note   string  `help:"Optional note." short:"n"`
}

func (c *PayCmd) Run(ctx *cli.Context) error {
	if c.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	day, err := ctx.DayOrToday(c.Day)
	if err != nil {
		return err
	}
	saved, err := ctx.Client.AddPrincipalPayment(context.Background(), models.PrincipalPaymentCreate{
		Day:    day,
		Amount: c.Amount,
		Note:   c.Note,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Recorded extra payment of %s on %s\n", cli.Money(saved.Amount), saved.Day)
	return nil
}

// BalanceCmd records a principal balance check.
type BalanceCmd struct {
	Balance float64 `arg:"" help:"Current principal balance in dollars."`
	Day     string  `help:"Day (YYYY-MM-DD). Defaults to today." short:"d"`
	Note    string  `help:"Optional note." short:"n"`
}

func (c *BalanceCmd) Run(ctx *cli.Context) error {
	if c.Balance <= 0 {
		return fmt.Errorf("balance must be positive")
	}
	day, err := ctx.DayOrToday(c.Day)
	if err != nil {
		return err
	}
	saved, err := ctx.Client.AddBalanceCheck(context.Background(), models.BalanceCheckCreate{
		Day:              day,
		PrincipalBalance: c.Balance,
		Note:             c.Note,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Recorded balance %s on %s\n", cli.Money(saved.Amount), saved.Day)
	return nil
}

// EventsCmd lists paydown events over a date range, newest first.
type EventsCmd struct {
	Days int `help:"Lookback window in days. 0 means year to date." default:"0"`
}

func (c *EventsCmd) Run(ctx *cli.Context) error {
	var start, end string
	var err error
	if c.Days > 0 {
		start, end, err = utils.RangeEndingAt(ctx.Today, c.Days)
	} else {
		start, end, err = utils.YearStartTo(ctx.Today)
	}
	if err != nil {
		return err
	}

	events, err := ctx.Client.MortgageEvents(context.Background(), start, end)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Printf("No events between %s and %s.\n", start, end)
		return nil
	}
	// Backend returns ascending by day; display newest first like the
	// dashboard does.
	for i := len(events) - 1; i >= 0; i-- {
		ev := events[i]
		label := "balance"
		if ev.Kind == constants.MortgageKindPayment {
			label = "payment"
		}
		line := fmt.Sprintf("%s  %-8s %12s", ev.Day, label, cli.Money(ev.Amount))
		if ev.Note != "" {
			line += "  " + ev.Note
		}
		fmt.Println(line)
	}
	return nil
}

// SummaryCmd prints the paydown summary and progress ratio.
type SummaryCmd struct{}

func (c *SummaryCmd) Run(ctx *cli.Context) error {
	ms, err := ctx.Client.MortgageSummary(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Start principal:   %s\n", cli.Money(ms.StartPrincipal))
	fmt.Printf("Target principal:  %s\n", cli.Money(ms.TargetPrincipal))
	if ms.LatestPrincipalBalance != nil {
		fmt.Printf("Latest balance:    %s\n", cli.Money(*ms.LatestPrincipalBalance))
	} else {
		fmt.Println("Latest balance:    (no balance check yet)")
	}
	fmt.Printf("Paid extra YTD:    %s\n", cli.Money(ms.PaidExtraYTD))
	fmt.Printf("Paid extra month:  %s\n", cli.Money(ms.PaidExtraMonth))
	fmt.Printf("Progress:          %s\n", metrics.FormatPercent(metrics.MortgageProgress(ms)))
	return nil
}
