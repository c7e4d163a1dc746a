// Package common defines shared constants and sentinel errors used across
// tgpolish components. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
	"time"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Authentication handshake errors.
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrNoActiveAttempt  = errors.New("no active authentication attempt")
	ErrInvalidCode      = errors.New("invalid confirmation code")
	ErrPasswordRequired = errors.New("2fa password required")
	ErrInvalidPassword  = errors.New("invalid 2fa password")

	// Connection lifecycle errors.
	ErrConnectFailed = errors.New("connect failed")

	// Storage / crypto errors.
	ErrPersistence      = errors.New("persistence failure")
	ErrDecryptionFailed = errors.New("decryption failed")

	// Correction pipeline errors (internal, never user-facing).
	ErrOracleFailure = errors.New("oracle failure")

	// Control API token errors.
	ErrInvalidToken = errors.New("invalid token")
)

// ErrRateLimited is the sentinel matched by RateLimitedError.
var ErrRateLimited = errors.New("rate limited")

// RateLimitedError reports that the provider refused an operation and asked
// the caller to retry later. Matches ErrRateLimited via errors.Is.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

func (e *RateLimitedError) Is(target error) bool {
	return target == ErrRateLimited
}
