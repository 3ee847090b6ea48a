package system

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"trackctl/internal/cli"
	"trackctl/internal/constants"
	"trackctl/internal/keyring"
	"trackctl/internal/tui"
)

// TuiCmd launches the interactive dashboard.
type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.Client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// DoctorCmd checks connectivity and local credential setup.
type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Printf("Server: %s\n", ctx.Client.BaseURL())

	health, err := ctx.Client.Health(context.Background())
	if err != nil {
		fmt.Printf("  ✗ unreachable: %v\n", err)
	} else {
		fmt.Printf("  ✓ %s (%s)\n", health.Status, health.App)
	}

	_, err = keyring.GetAppPassword()
	switch {
	case err == nil:
		fmt.Println("Password: ✓ stored in OS keyring")
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Println("Password: not set. Run 'trackctl auth set' if the server requires one.")
	default:
		fmt.Printf("Password: ✗ keyring unavailable: %v\n", err)
	}
	return nil
}

// AuthSetCmd stores the shared app password in the OS keyring. With no
// argument it prompts without echo.
type AuthSetCmd struct {
	Password string `arg:"" optional:"" help:"Password value. Omit to be prompted."`
}

func (c *AuthSetCmd) Run(ctx *cli.Context) error {
	password := c.Password
	if password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("App password").
					EchoMode(huh.EchoModePassword).
					Value(&password),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if err := keyring.SetAppPassword(password); err != nil {
		return err
	}
	fmt.Println("Password stored in OS keyring.")
	return nil
}

// AuthClearCmd removes the stored app password.
type AuthClearCmd struct{}

func (c *AuthClearCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAppPassword(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No password was stored.")
			return nil
		}
		return err
	}
	fmt.Println("Password removed from OS keyring.")
	return nil
}

// ResetCmd wipes every record on the server. The confirmation token must
// be passed explicitly; there is no prompt and no default.
type ResetCmd struct {
	Confirm string `help:"Must be exactly RESET." required:""`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if c.Confirm != constants.ResetConfirmToken {
		return fmt.Errorf("refusing to reset: pass --confirm %s", constants.ResetConfirmToken)
	}
	result, err := ctx.Client.AdminReset(context.Background(), c.Confirm)
	if err != nil {
		return err
	}
	fmt.Println("All data deleted.")
	for table, n := range result.Deleted {
		fmt.Printf("  %-16s %d\n", table, n)
	}
	if result.Note != "" {
		fmt.Println(result.Note)
	}
	return nil
}
