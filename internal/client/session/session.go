// Package session owns the authentication token: persistence, retrieval,
// and lazy expiry evaluation. Absence of a token means logged out; a
// token that cannot be decoded is treated the same way, never as an
// error the caller has to handle.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pvolkovs/staffdesk/internal/client/storage"
	"github.com/pvolkovs/staffdesk/internal/logging"
)

// tokenKey is the only key the client keeps in durable storage.
const tokenKey = "auth_token"

// ErrStorageUnavailable is returned by Set when no durable storage is
// attached (e.g. the storage file could not be opened at startup).
var ErrStorageUnavailable = errors.New("session storage unavailable")

// Store holds at most one active session token. It is written by the
// login/signup flow, cleared by logout, and read by everything else.
// Validity is recomputed on every check, so an expiring token is caught
// on the next check rather than evicted proactively.
type Store struct {
	kv  storage.Store
	log logging.Logger
}

// New builds a session store over kv. kv may be nil, which models an
// execution context without durable storage: reads report logged out and
// writes fail with ErrStorageUnavailable.
func New(kv storage.Store, log logging.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Set persists the raw token string. The token is not validated at write
// time; malformed tokens surface as "not logged in" on the next check.
func (s *Store) Set(ctx context.Context, token string) error {
	if s.kv == nil {
		return ErrStorageUnavailable
	}
	if err := s.kv.Set(ctx, tokenKey, token); err != nil {
		return fmt.Errorf("failed to persist session token: %w", err)
	}
	return nil
}

// Get returns the persisted token, or an empty string when no token
// exists or the storage layer is unavailable. It never fails: storage
// errors are logged and reported as absence.
func (s *Store) Get(ctx context.Context) string {
	if s.kv == nil {
		return ""
	}
	token, err := s.kv.Get(ctx, tokenKey)
	if err != nil {
		s.log.Error(ctx, "failed to read session token", "error", err)
		return ""
	}
	return token
}

// Clear removes the token. Clearing an absent token is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}
	if err := s.kv.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}

// IsValid reports whether a well-formed, unexpired token is present.
// The payload is decoded without signature verification: the client
// holds no signing secret, and the server remains the authority on
// authenticity. A decode failure downgrades to "not logged in".
func (s *Store) IsValid(ctx context.Context) bool {
	claims := s.claims(ctx)
	if claims == nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		s.log.Warn(ctx, "session token has no usable expiry")
		return false
	}
	return exp.After(time.Now())
}

// Subject returns the token's subject identity for display purposes, or
// an empty string when no decodable token is present.
func (s *Store) Subject(ctx context.Context) string {
	claims := s.claims(ctx)
	if claims == nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

func (s *Store) claims(ctx context.Context) jwt.MapClaims {
	token := s.Get(ctx)
	if token == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		s.log.Warn(ctx, "failed to decode session token", "error", err)
		return nil
	}
	return claims
}
