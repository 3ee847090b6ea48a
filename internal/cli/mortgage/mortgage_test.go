package mortgage

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"trackctl/internal/api"
	"trackctl/internal/cli"
	"trackctl/internal/constants"
	"trackctl/internal/models"
	"trackctl/internal/sync"
)

func TestEventsListNewestFirst(t *testing.T) {
	// Backend order is ascending by day.
	events := []models.MortgageEvent{
		{ID: "1", Day: "2026-01-05", Kind: constants.MortgageKindPayment, Amount: 500},
		{ID: "2", Day: "2026-02-10", Kind: constants.MortgageKindBalance, Amount: 310000},
		{ID: "3", Day: "2026-03-01", Kind: constants.MortgageKindPayment, Amount: 750},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/mortgage/events" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(events)
	}))
	defer srv.Close()

	client := api.NewWithSecret(srv.URL, func() (string, error) { return "", nil })
	ctx := &cli.Context{Client: client, Fetcher: sync.NewFetcher(client), Today: "2026-03-15"}

	out := captureStdout(t, func() {
		cmd := &EventsCmd{}
		if err := cmd.Run(ctx); err != nil {
			t.Errorf("events: %v", err)
		}
	})

	newest := strings.Index(out, "2026-03-01")
	oldest := strings.Index(out, "2026-01-05")
	if newest == -1 || oldest == -1 {
		t.Fatalf("listing missing events:\n%s", out)
	}
	if newest > oldest {
		t.Errorf("events not newest first:\n%s", out)
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	w.Close()

	buf, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured output: %v", err)
	}
	return string(buf)
}
