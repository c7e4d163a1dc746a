// Package session contains the multi-tenant session core: the interactive
// authentication handshake (Authenticator), the live-connection registry
// (Registry), and the facade the presentation layer drives (Manager).
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/tgpolish/internal/common"
	"github.com/dmitrijs2005/tgpolish/internal/logging"
	"github.com/dmitrijs2005/tgpolish/internal/models"
	"github.com/dmitrijs2005/tgpolish/internal/telegram"
	"github.com/dmitrijs2005/tgpolish/internal/vault"
	"github.com/google/uuid"
)

// codeLength is the exact confirmation code length the provider sends.
const codeLength = 5

// Code buffer edge errors. Neither reaches the protocol layer; the buffer is
// left unchanged in both cases.
var (
	ErrCodeBufferFull  = errors.New("confirmation code already complete")
	ErrCodeBufferEmpty = errors.New("confirmation code is empty")
)

// CredentialStore is the slice of the persistence collaborator the
// authenticator and manager need for durable credentials.
type CredentialStore interface {
	// PutActive stores the credential and supersedes any prior active
	// credential for the user, atomically.
	PutActive(ctx context.Context, cred *models.Credential) error
	// GetActive returns the most recent active credential, or
	// common.ErrorNotFound.
	GetActive(ctx context.Context, userID int64) (*models.Credential, error)
	// Deactivate marks all of the user's credentials inactive.
	Deactivate(ctx context.Context, userID int64) error
}

type attemptState int

const (
	stateAwaitingCode attemptState = iota
	stateAwaitingPassword
)

// attempt is the transient, in-memory handshake state for one user. Never
// persisted. Exactly one per user; Begin silently discards the previous one.
type attempt struct {
	client telegram.Client
	phone  string
	code   []byte
	state  attemptState
}

// Authenticator drives the phone → code → (2FA password) handshake and, on
// success, seals and persists the resulting credential.
//
// Network calls run outside the attempt lock, so Cancel stays responsive
// while a sign-in is in flight. A sign-in whose attempt was cancelled (or
// superseded) before it returned is discarded: nothing is persisted and the
// caller gets common.ErrNoActiveAttempt.
type Authenticator struct {
	dialer      telegram.Dialer
	vault       *vault.Vault
	credentials CredentialStore
	logger      logging.Logger

	attempts *attemptMap
}

// NewAuthenticator wires the handshake driver.
func NewAuthenticator(dialer telegram.Dialer, v *vault.Vault, credentials CredentialStore, logger logging.Logger) *Authenticator {
	return &Authenticator{
		dialer:      dialer,
		vault:       v,
		credentials: credentials,
		logger:      logger.With("module", "authenticator"),
		attempts:    newAttemptMap(),
	}
}

// NormalizePhone massages a user-supplied phone number into provider form:
// digits only, with a leading plus.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return "+" + b.String()
}

// Begin opens an unauthenticated protocol session and asks for a
// confirmation code to be sent to phone. On success the attempt is recorded,
// replacing (and disconnecting) any stale attempt for the same user. On
// failure no attempt is created.
func (a *Authenticator) Begin(ctx context.Context, userID int64, phone string) error {
	phone = NormalizePhone(phone)

	client, err := a.dialer.Dial(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrConnectFailed, err)
	}

	if err := client.RequestCode(ctx, phone); err != nil {
		_ = client.Close(ctx)
		return err
	}

	if prev, ok := a.attempts.swap(userID, &attempt{client: client, phone: phone}); ok {
		// stale handshake superseded, release its connection quietly
		_ = prev.client.Close(ctx)
	}

	a.logger.Info(ctx, "confirmation code requested", "user_id", userID)
	return nil
}

// InputDigit appends one digit to the code buffer. A sixth digit is rejected
// with ErrCodeBufferFull and the buffer stays unchanged. Returns the buffer
// after the operation.
func (a *Authenticator) InputDigit(userID int64, digit byte) (string, error) {
	var buffer string
	err := a.attempts.update(userID, func(att *attempt) error {
		if digit < '0' || digit > '9' {
			buffer = string(att.code)
			return common.ErrInvalidCode
		}
		if len(att.code) >= codeLength {
			buffer = string(att.code)
			return ErrCodeBufferFull
		}
		att.code = append(att.code, digit)
		buffer = string(att.code)
		return nil
	})
	return buffer, err
}

// InputBackspace removes the last buffered digit. Backspace on an empty
// buffer is rejected with ErrCodeBufferEmpty; nothing reaches the protocol
// layer either way.
func (a *Authenticator) InputBackspace(userID int64) (string, error) {
	var buffer string
	err := a.attempts.update(userID, func(att *attempt) error {
		if len(att.code) == 0 {
			return ErrCodeBufferEmpty
		}
		att.code = att.code[:len(att.code)-1]
		buffer = string(att.code)
		return nil
	})
	return buffer, err
}

// CodeBuffer returns the current buffer contents for display.
func (a *Authenticator) CodeBuffer(userID int64) (string, error) {
	var buffer string
	err := a.attempts.update(userID, func(att *attempt) error {
		buffer = string(att.code)
		return nil
	})
	return buffer, err
}

// SubmitCode submits the buffered confirmation code.
//
// Outcomes:
//   - nil: authenticated, credential sealed and persisted, attempt closed.
//   - common.ErrPasswordRequired: the account has a second factor; the
//     attempt stays open awaiting SubmitPassword.
//   - common.ErrInvalidCode: the buffer is not 5 digits, or the provider
//     rejected the code (then the buffer is cleared); the attempt stays open.
//   - common.ErrPersistence: authentication succeeded but the sealed
//     credential could not be stored; the attempt is closed and the user
//     must re-authenticate.
func (a *Authenticator) SubmitCode(ctx context.Context, userID int64) error {
	var client telegram.Client
	var phone, code string

	err := a.attempts.update(userID, func(att *attempt) error {
		if att.state != stateAwaitingCode {
			return common.ErrNoActiveAttempt
		}
		if len(att.code) != codeLength {
			return common.ErrInvalidCode
		}
		client = att.client
		phone = att.phone
		code = string(att.code)
		return nil
	})
	if err != nil {
		return err
	}

	// network call without holding the attempt lock
	signInErr := client.SignIn(ctx, phone, code)

	err = a.attempts.update(userID, func(att *attempt) error {
		if att.client != client {
			return common.ErrNoActiveAttempt
		}
		switch {
		case signInErr == nil:
			return nil
		case errors.Is(signInErr, common.ErrPasswordRequired):
			att.state = stateAwaitingPassword
			return common.ErrPasswordRequired
		case errors.Is(signInErr, common.ErrInvalidCode):
			att.code = att.code[:0]
			return common.ErrInvalidCode
		default:
			return signInErr
		}
	})
	if err != nil {
		return err
	}

	return a.finish(ctx, userID, client, phone)
}

// SubmitPassword submits the 2FA password for an attempt in the
// password-required state. On provider rejection the attempt stays open for
// another try.
func (a *Authenticator) SubmitPassword(ctx context.Context, userID int64, password string) error {
	var client telegram.Client
	var phone string

	err := a.attempts.update(userID, func(att *attempt) error {
		if att.state != stateAwaitingPassword {
			return common.ErrNoActiveAttempt
		}
		client = att.client
		phone = att.phone
		return nil
	})
	if err != nil {
		return err
	}

	signInErr := client.SignInPassword(ctx, password)

	err = a.attempts.update(userID, func(att *attempt) error {
		if att.client != client {
			return common.ErrNoActiveAttempt
		}
		if signInErr != nil {
			return fmt.Errorf("%w: %v", common.ErrInvalidPassword, signInErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return a.finish(ctx, userID, client, phone)
}

// Cancel discards the attempt from any non-terminal state and releases its
// connection. Safe to call with no attempt open or while a sign-in for the
// same user is still in flight.
func (a *Authenticator) Cancel(ctx context.Context, userID int64) {
	if att, ok := a.attempts.remove(userID); ok {
		_ = att.client.Close(ctx)
		a.logger.Info(ctx, "authentication attempt cancelled", "user_id", userID)
	}
}

// HasAttempt reports whether a handshake is currently open for the user.
func (a *Authenticator) HasAttempt(userID int64) bool {
	return a.attempts.update(userID, func(*attempt) error { return nil }) == nil
}

// finish runs the successful terminal transition: export the session, seal
// it, persist it as the new active credential, and close the attempt. The
// result is reported as success only after persistence succeeds.
func (a *Authenticator) finish(ctx context.Context, userID int64, client telegram.Client, phone string) error {
	// claim the attempt atomically so a concurrent Cancel (or a fresh Begin)
	// wins cleanly: if it is no longer ours, the result is discarded
	if _, ok := a.attempts.removeIf(userID, func(att *attempt) bool { return att.client == client }); !ok {
		return common.ErrNoActiveAttempt
	}
	defer func() { _ = client.Close(ctx) }()

	session, err := client.ExportSession(ctx)
	if err != nil {
		return fmt.Errorf("%w: session export: %v", common.ErrPersistence, err)
	}

	sealed, err := a.vault.Seal(session)
	if err != nil {
		return fmt.Errorf("%w: seal: %v", common.ErrPersistence, err)
	}

	cred := &models.Credential{
		ID:          uuid.NewString(),
		UserID:      userID,
		PhoneNumber: phone,
		SealedBlob:  sealed,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	if err := a.credentials.PutActive(ctx, cred); err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	a.logger.Info(ctx, "user authenticated, credential stored", "user_id", userID)
	return nil
}
