package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"trackctl/internal/api"
	"trackctl/internal/cli"
	"trackctl/internal/cli/checkins"
	"trackctl/internal/cli/fitness"
	"trackctl/internal/cli/mortgage"
	"trackctl/internal/cli/relationship"
	"trackctl/internal/cli/settings"
	"trackctl/internal/cli/system"
	"trackctl/internal/config"
	"trackctl/internal/constants"
	"trackctl/internal/errors"
	"trackctl/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string `help:"Backend URL. Overrides TRACKCTL_SERVER_URL and the config file." short:"s"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Tui     system.TuiCmd        `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Status  checkins.StatusCmd   `cmd:"" help:"Show streaks, videos, mortgage progress, and reminders."`
	Review  checkins.ReviewCmd   `cmd:"" help:"Show the weekly scorecard."`
	Checkin checkins.CheckInCmd  `cmd:"" help:"Record or update a daily check-in."`
	Doctor  system.DoctorCmd     `cmd:"" help:"Check server connectivity and credential setup."`
	Reset   system.ResetCmd      `cmd:"" help:"Delete every record on the server."`
	Checkins struct {
		List checkins.CheckInListCmd `cmd:"" help:"List recent check-ins." default:"1"`
	} `cmd:"" help:"Browse recorded check-ins."`
	Fitness struct {
		Weight fitness.WeightCmd `cmd:"" help:"Record a weight measurement."`
		Waist  fitness.WaistCmd  `cmd:"" help:"Record a waist measurement."`
		Photo  fitness.PhotoCmd  `cmd:"" help:"Upload a progress photo."`
		List   fitness.ListCmd   `cmd:"" help:"List measurements and photos." default:"1"`
	} `cmd:"" help:"Track weight, waist, and progress photos."`
	Mortgage struct {
		Pay     mortgage.PayCmd     `cmd:"" help:"Record an extra principal payment."`
		Balance mortgage.BalanceCmd `cmd:"" help:"Record a principal balance check."`
		Events  mortgage.EventsCmd  `cmd:"" help:"List paydown events."`
		Summary mortgage.SummaryCmd `cmd:"" help:"Show the paydown summary." default:"1"`
	} `cmd:"" help:"Track the mortgage paydown."`
	Trip struct {
		Show    relationship.TripShowCmd    `cmd:"" help:"Show the current trip plan." default:"1"`
		Set     relationship.TripSetCmd     `cmd:"" help:"Update the trip plan."`
		History relationship.TripHistoryCmd `cmd:"" help:"List trip plan snapshots."`
	} `cmd:"" help:"Plan the trip."`
	Gift struct {
		Add  relationship.GiftAddCmd  `cmd:"" help:"Log a gift or gesture."`
		List relationship.GiftListCmd `cmd:"" help:"List gifts for a month." default:"1"`
	} `cmd:"" help:"Track gifts and gestures."`
	Settings struct {
		Show settings.ShowCmd `cmd:"" help:"Show current settings." default:"1"`
		Set  settings.SetCmd  `cmd:"" help:"Update settings."`
	} `cmd:"" help:"Manage reminder settings."`
	Auth struct {
		Set   system.AuthSetCmd   `cmd:"" help:"Store the app password in the OS keyring." default:"withargs"`
		Clear system.AuthClearCmd `cmd:"" help:"Remove the stored app password."`
	} `cmd:"" help:"Manage the app password."`
	Config struct {
		Show system.ConfigShowCmd `cmd:"" help:"Show the persisted configuration." default:"1"`
		Set  system.ConfigSetCmd  `cmd:"" help:"Persist configuration values."`
	} `cmd:"" help:"Manage the config file."`
}

func main() {
	// A .env in the working directory is a convenience for development;
	// missing is the normal case.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Accountability dashboard companion: habits, fitness, mortgage paydown, relationship"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.ReadFromFile(config.DefaultPath())
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:     config.DebugEnabled(CLI.Debug, cfg),
		ConfigDir: config.DefaultDir(),
	}); err != nil {
		errors.Fatal(err)
	}

	client := api.New(config.ResolveServerURL(CLI.Server, cfg))
	appCtx := cli.NewContext(client)

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
