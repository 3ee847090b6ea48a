package sync

import (
	"errors"
	"fmt"
	"testing"

	"trackctl/internal/api"
)

func TestNormalizeServerDetailWins(t *testing.T) {
	err := &api.Error{Status: 422, Detail: "day is required"}
	if got := Normalize(err, "Failed to save check-in"); got != "day is required" {
		t.Errorf("expected server detail verbatim, got %q", got)
	}
}

func TestNormalizeDetaillessServerErrorUsesFallback(t *testing.T) {
	err := &api.Error{Status: 500}
	if got := Normalize(err, "Failed to add payment"); got != "Failed to add payment" {
		t.Errorf("expected fixed fallback, got %q", got)
	}
}

func TestNormalizeWrappedServerError(t *testing.T) {
	err := fmt.Errorf("saving: %w", &api.Error{Status: 409, Detail: "duplicate day"})
	if got := Normalize(err, "Failed to save check-in"); got != "duplicate day" {
		t.Errorf("expected detail through the wrap, got %q", got)
	}
}

func TestNormalizeTransportError(t *testing.T) {
	err := errors.New("dial tcp: connection refused")
	if got := Normalize(err, "Failed to load data"); got != "dial tcp: connection refused" {
		t.Errorf("expected transport message, got %q", got)
	}
}

func TestNormalizeNil(t *testing.T) {
	if got := Normalize(nil, "anything"); got != "" {
		t.Errorf("nil error must normalize to empty, got %q", got)
	}
}
