package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tgpolish/internal/common"
	"github.com/dmitrijs2005/tgpolish/internal/logging"
	"github.com/dmitrijs2005/tgpolish/internal/models"
	"github.com/dmitrijs2005/tgpolish/internal/vault"
)

// Status describes a user's connection state as the presentation layer
// shows it.
type Status int

const (
	// StatusNotConnected: no active credential on file.
	StatusNotConnected Status = iota
	// StatusConnectedStopped: credential on file, no live connection.
	StatusConnectedStopped
	// StatusConnectedActive: live connection running.
	StatusConnectedActive
)

func (s Status) String() string {
	switch s {
	case StatusConnectedStopped:
		return "connected_stopped"
	case StatusConnectedActive:
		return "connected_active"
	default:
		return "not_connected"
	}
}

// SettingsStore is the slice of the persistence collaborator covering
// per-user policy. Settings creates defaults on first access.
type SettingsStore interface {
	Settings(ctx context.Context, userID int64) (*models.UserSettings, error)
	SetAutoCorrect(ctx context.Context, userID int64, enabled bool) error
	SetMinMessageLength(ctx context.Context, userID int64, length int) error
	SetExtra(ctx context.Context, userID int64, key string, value any) error
}

// UserStore is the read-mostly user bookkeeping the core touches: the row is
// owned by the presentation/auth boundary.
type UserStore interface {
	Upsert(ctx context.Context, user *models.User) error
	UpdatePhone(ctx context.Context, userID int64, phone string) error
}

// Manager is the facade composing the authenticator, the registry and the
// stores into the operations the presentation layer calls.
type Manager struct {
	auth        *Authenticator
	registry    *Registry
	vault       *vault.Vault
	credentials CredentialStore
	settings    SettingsStore
	users       UserStore
	logger      logging.Logger
}

// NewManager wires the facade.
func NewManager(auth *Authenticator, registry *Registry, v *vault.Vault, credentials CredentialStore,
	settings SettingsStore, users UserStore, logger logging.Logger) *Manager {
	return &Manager{
		auth:        auth,
		registry:    registry,
		vault:       v,
		credentials: credentials,
		settings:    settings,
		users:       users,
		logger:      logger.With("module", "session_manager"),
	}
}

// BeginConnect starts the handshake for the user's phone number and records
// the phone on the user row. Phone bookkeeping failures are logged, not
// surfaced: they do not affect the handshake.
func (m *Manager) BeginConnect(ctx context.Context, userID int64, phone string) error {
	if err := m.auth.Begin(ctx, userID, phone); err != nil {
		return err
	}
	if err := m.users.UpdatePhone(ctx, userID, NormalizePhone(phone)); err != nil {
		m.logger.Warn(ctx, "phone bookkeeping failed", "user_id", userID, "error", err.Error())
	}
	return nil
}

// InputCodeDigit appends a digit to the user's code buffer.
func (m *Manager) InputCodeDigit(userID int64, digit byte) (string, error) {
	return m.auth.InputDigit(userID, digit)
}

// InputCodeBackspace removes the last buffered digit.
func (m *Manager) InputCodeBackspace(userID int64) (string, error) {
	return m.auth.InputBackspace(userID)
}

// SubmitCode submits the buffered code; see Authenticator.SubmitCode for
// the outcome contract.
func (m *Manager) SubmitCode(ctx context.Context, userID int64) error {
	return m.auth.SubmitCode(ctx, userID)
}

// SubmitPassword submits the 2FA password.
func (m *Manager) SubmitPassword(ctx context.Context, userID int64, password string) error {
	return m.auth.SubmitPassword(ctx, userID, password)
}

// CancelAuth discards the user's handshake, if any.
func (m *Manager) CancelAuth(ctx context.Context, userID int64) {
	m.auth.Cancel(ctx, userID)
}

// Start brings up the user's connection from the stored credential.
// A missing credential surfaces as common.ErrorNotFound; an unsealable one
// is reported as ErrConnectFailed (the credential is effectively lost) and
// logged distinctly for operability.
func (m *Manager) Start(ctx context.Context, userID int64) error {
	cred, err := m.credentials.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("%w: %v", common.ErrConnectFailed, err)
	}

	session, err := m.vault.Unseal(cred.SealedBlob)
	if err != nil {
		m.logger.Error(ctx, "credential unseal failed, re-authentication required",
			"user_id", userID, "error", err.Error())
		return fmt.Errorf("%w: credential unusable", common.ErrConnectFailed)
	}

	return m.registry.Start(ctx, userID, session)
}

// Stop tears down the user's live connection; the credential stays active
// so Start can bring the connection back.
func (m *Manager) Stop(ctx context.Context, userID int64) bool {
	return m.registry.Stop(ctx, userID)
}

// Disconnect is Stop plus credential deactivation: the user must repeat the
// handshake to connect again. Returns whether a live connection was stopped.
func (m *Manager) Disconnect(ctx context.Context, userID int64) (bool, error) {
	stopped := m.registry.Stop(ctx, userID)
	if err := m.credentials.Deactivate(ctx, userID); err != nil {
		return stopped, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	m.logger.Info(ctx, "userbot disconnected", "user_id", userID)
	return stopped, nil
}

// Status reports the user's connection state.
func (m *Manager) Status(ctx context.Context, userID int64) (Status, error) {
	if m.registry.IsActive(userID) {
		return StatusConnectedActive, nil
	}

	_, err := m.credentials.GetActive(ctx, userID)
	switch {
	case err == nil:
		return StatusConnectedStopped, nil
	case errors.Is(err, common.ErrorNotFound):
		return StatusNotConnected, nil
	default:
		return StatusNotConnected, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
}

// Settings returns the user's policy, created with defaults on first access.
func (m *Manager) Settings(ctx context.Context, userID int64) (*models.UserSettings, error) {
	return m.settings.Settings(ctx, userID)
}

// SetAutoCorrect toggles the correction feature for the user.
func (m *Manager) SetAutoCorrect(ctx context.Context, userID int64, enabled bool) error {
	return m.settings.SetAutoCorrect(ctx, userID, enabled)
}

// SetMinMessageLength updates the minimum length bound. Values outside
// [5, 100] are rejected at this edit interface.
func (m *Manager) SetMinMessageLength(ctx context.Context, userID int64, length int) error {
	if length < models.MinMessageLengthFloor || length > models.MinMessageLengthCeiling {
		return fmt.Errorf("min message length must be between %d and %d",
			models.MinMessageLengthFloor, models.MinMessageLengthCeiling)
	}
	return m.settings.SetMinMessageLength(ctx, userID, length)
}

// SetExtra stores an open-ended named setting.
func (m *Manager) SetExtra(ctx context.Context, userID int64, key string, value any) error {
	return m.settings.SetExtra(ctx, userID, key, value)
}

// RegisterUser upserts the user row on first interaction.
func (m *Manager) RegisterUser(ctx context.Context, user *models.User) error {
	return m.users.Upsert(ctx, user)
}
