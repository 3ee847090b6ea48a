// Package keyring stores the shared backend password in the OS keyring. The
// password is the sole auth mechanism for the single-user backend; requests
// read it at build time so an external `trackctl auth set` takes effect
// without restarting a running session.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"trackctl/internal/constants"
)

var (
	// ErrNotFound is returned when no password is stored in the keyring
	ErrNotFound = errors.New("app password not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAppPassword retrieves the shared backend password from the OS keyring.
// Returns ErrNotFound if none is stored.
func GetAppPassword() (string, error) {
	secret, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

// SetAppPassword stores the shared backend password in the OS keyring.
func SetAppPassword(secret string) error {
	if secret == "" {
		return errors.New("password cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, secret); err != nil {
		return fmt.Errorf("failed to store password in keyring: %w", err)
	}
	return nil
}

// DeleteAppPassword removes the shared backend password from the OS keyring.
func DeleteAppPassword() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete password from keyring: %w", err)
	}
	return nil
}
