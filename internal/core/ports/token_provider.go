package ports

import (
	"context"
	"errors"
)

// ErrAuthentication is returned for any failed credential check or token
// validation. The cause is deliberately not distinguished to avoid leaking
// which part of the credentials was wrong.
var ErrAuthentication = errors.New("authentication failed")

// TokenProvider issues and validates opaque bearer credentials for the HTTP
// boundary. The core consumes this interface; it does not implement credential
// storage or token cryptography itself.
type TokenProvider interface {
	// Authenticate checks the supplied credentials and returns a signed
	// bearer token on success, or ErrAuthentication.
	Authenticate(ctx context.Context, username, password string) (string, error)

	// Validate checks a bearer token and returns the authenticated identity,
	// or ErrAuthentication.
	Validate(ctx context.Context, token string) (string, error)
}
