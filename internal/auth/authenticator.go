// Package auth wraps the external identity provider behind a single
// capability so the rest of the app never cares which backend is configured.
package auth

import (
	"context"
	"fmt"

	"mindtrackerd/internal/models"
	"mindtrackerd/internal/providers"
	"mindtrackerd/internal/structures"
)

// Error is an authentication failure carrying a user-readable message.
// It is never fatal; the user re-initiates on failure.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var ErrMissingCredentials = &Error{Message: "enter email and password"}

type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*models.Account, error)
	SignUp(ctx context.Context, email, password string) (*models.Account, error)
}

// NewAuthenticator selects the variant from config at construction time.
func NewAuthenticator(conf *structures.Config, logger providers.Logger) (Authenticator, error) {
	switch conf.Auth.Mode {
	case "mock":
		return NewMockAuthenticator(), nil
	case "remote":
		return NewRemoteAuthenticator(conf, logger), nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", conf.Auth.Mode)
	}
}
