package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassphrase = errors.New("invalid admin passphrase")
	ErrPassphraseNotSet  = errors.New("admin passphrase is not configured")
)

// Authenticator decides whether a secret grants admin access.
type Authenticator interface {
	Authenticate(ctx context.Context, secret string) error
}

type PassphraseAuthenticator struct {
	hash []byte
}

// NewPassphraseAuthenticator accepts a bcrypt hash, or a plain passphrase
// that is hashed once here. The hash wins when both are given.
func NewPassphraseAuthenticator(hash, plain string) (*PassphraseAuthenticator, error) {
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("admin passphrase hash is not a bcrypt hash: %w", err)
		}
		return &PassphraseAuthenticator{hash: []byte(hash)}, nil
	}
	if plain == "" {
		return nil, ErrPassphraseNotSet
	}

	hashed, err := HashPassphrase(plain)
	if err != nil {
		return nil, err
	}
	return &PassphraseAuthenticator{hash: []byte(hashed)}, nil
}

func (a *PassphraseAuthenticator) Authenticate(_ context.Context, secret string) error {
	if secret == "" {
		return ErrInvalidPassphrase
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(secret)); err != nil {
		return ErrInvalidPassphrase
	}
	return nil
}

func HashPassphrase(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passphrase: %w", err)
	}
	return string(bytes), nil
}
