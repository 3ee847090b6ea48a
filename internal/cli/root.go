package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"trackctl/internal/api"
	"trackctl/internal/sync"
	"trackctl/internal/utils"
)

// Context is the shared dependency bundle passed to every command's Run.
type Context struct {
	Client  *api.Client
	Fetcher *sync.Fetcher
	Today   string
}

// DefaultView builds fetch scoping for today with the standard ranges.
func (c *Context) DefaultView() sync.View {
	return sync.NewState(c.Today).View()
}

// NewContext wires a command context over the given transport client.
func NewContext(client *api.Client) *Context {
	return &Context{
		Client:  client,
		Fetcher: sync.NewFetcher(client),
		Today:   utils.Today(),
	}
}

// Money formats a dollar amount for terminal output.
func Money(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 2)
}

// YesNo renders a boolean the way every listing in the CLI does.
func YesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// Flag renders a habit flag as a fixed-width marker.
func Flag(v bool) string {
	if v {
		return "x"
	}
	return "-"
}

// DayOrToday substitutes today's date for an empty day argument and
// validates the result.
func (c *Context) DayOrToday(day string) (string, error) {
	if day == "" {
		return c.Today, nil
	}
	if err := utils.ValidateDate(day); err != nil {
		return "", fmt.Errorf("invalid day %q: %w", day, err)
	}
	return day, nil
}
