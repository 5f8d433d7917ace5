package keyring

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/ib-ingenieria/horas-cli/internal/constants"
)

var (
	// ErrNotFound is returned when no credentials are found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

type storedCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GetCredentials retrieves the remembered login credentials from the OS
// keyring. Returns ErrNotFound if none are stored.
func GetCredentials() (username, password string, err error) {
	raw, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", "", ErrNotFound
		}
		return "", "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}

	var creds storedCredentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return "", "", fmt.Errorf("stored credentials are corrupt: %w", err)
	}
	return creds.Username, creds.Password, nil
}

// SetCredentials stores login credentials in the OS keyring.
func SetCredentials(username, password string) error {
	if username == "" || password == "" {
		return errors.New("username and password cannot be empty")
	}

	raw, err := json.Marshal(storedCredentials{Username: username, Password: password})
	if err != nil {
		return err
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, string(raw)); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// DeleteCredentials removes remembered credentials from the OS keyring.
func DeleteCredentials() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	return err == nil || err == keyring.ErrNotFound
}
