package system

import (
	"fmt"

	"trackctl/internal/cli"
	"trackctl/internal/config"
)

// ConfigShowCmd prints the persisted configuration and where it lives.
type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *cli.Context) error {
	cfg, err := config.ReadFromFile(config.DefaultPath())
	if err != nil {
		return err
	}
	fmt.Printf("Config file: %s\n", config.DefaultPath())
	if cfg.ServerURL == "" {
		fmt.Println("server_url = (unset)")
	} else {
		fmt.Printf("server_url = %s\n", cfg.ServerURL)
	}
	fmt.Printf("debug = %v\n", cfg.Debug)
	fmt.Printf("\nResolved server: %s\n", ctx.Client.BaseURL())
	return nil
}

// ConfigSetCmd persists configuration values to the config file.
type ConfigSetCmd struct {
	Server string `help:"Backend URL to persist."`
	Debug  *bool  `help:"Persist debug logging on or off." negatable:""`
}

func (c *ConfigSetCmd) Run(ctx *cli.Context) error {
	if c.Server == "" && c.Debug == nil {
		return fmt.Errorf("nothing to set: pass --server or --debug")
	}

	path := config.DefaultPath()
	cfg, err := config.ReadFromFile(path)
	if err != nil {
		return err
	}
	if c.Server != "" {
		cfg.ServerURL = c.Server
	}
	if c.Debug != nil {
		cfg.Debug = *c.Debug
	}
	if err := config.WriteToFile(path, cfg); err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", path)
	return nil
}
