// Package keyring keeps the bot's secrets in the OS keyring so they do not
// have to live in .env files.
package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const service = "meal-schedule-bot"

var (
	// ErrNotFound is returned when no secret is stored under the name
	ErrNotFound = errors.New("secret not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Secrets lists the names the bot looks up when the environment lacks them.
var Secrets = []string{"SLACK_BOT_TOKEN", "SLACK_SIGNING_SECRET", "REMOTE_STORE_TOKEN"}

func Get(name string) (string, error) {
	value, err := keyring.Get(service, name)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return value, nil
}

func Set(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	if err := keyring.Set(service, name, value); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", name, err)
	}
	return nil
}

func Delete(name string) error {
	err := keyring.Delete(service, name)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete %s from keyring: %w", name, err)
	}
	return nil
}

// IsKnown reports whether name is one of Secrets.
func IsKnown(name string) bool {
	for _, s := range Secrets {
		if s == name {
			return true
		}
	}
	return false
}
