package sync

import (
	"errors"

	"trackctl/internal/api"
)

// Normalize converts any failure into the single user-facing message:
// server-provided detail first, then the fixed per-operation fallback for
// detail-less server errors, then the transport-level message.
func Normalize(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return fallback
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
