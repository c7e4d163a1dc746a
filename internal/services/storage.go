// Package services bridges the session core to PostgreSQL persistence. This
// file implements StorageService, which satisfies the store interfaces the
// core consumes (credentials, settings, users) on top of repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tgpolish/internal/common"
	"github.com/dmitrijs2005/tgpolish/internal/dbx"
	"github.com/dmitrijs2005/tgpolish/internal/models"
	"github.com/dmitrijs2005/tgpolish/internal/repositories/repomanager"
)

// StorageService provides the persistence operations the session core needs:
// - credentials: supersede-on-insert active credential per user
// - settings: created with defaults on first access
// - users: upsert bookkeeping
type StorageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewStorageService constructs a StorageService using repositories.
func NewStorageService(db *sql.DB, m repomanager.RepositoryManager) *StorageService {
	return &StorageService{db: db, repomanager: m}
}

// PutActive stores a freshly sealed credential, transactionally deactivating
// any previous rows so at most one active credential per user survives.
func (s *StorageService) PutActive(ctx context.Context, cred *models.Credential) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Credentials(tx)
		if err := repo.DeactivateAll(ctx, cred.UserID); err != nil {
			return fmt.Errorf("error superseding credential: %v", err)
		}
		if err := repo.Insert(ctx, cred); err != nil {
			return fmt.Errorf("error storing credential: %v", err)
		}
		return nil
	})
}

// GetActive returns the user's active credential; common.ErrorNotFound when
// none exists.
func (s *StorageService) GetActive(ctx context.Context, userID int64) (*models.Credential, error) {
	return s.repomanager.Credentials(s.db).GetActive(ctx, userID)
}

// Deactivate retires every credential for the user; a user with none is not
// an error.
func (s *StorageService) Deactivate(ctx context.Context, userID int64) error {
	return s.repomanager.Credentials(s.db).DeactivateAll(ctx, userID)
}

// Settings returns the user's policy, transactionally creating the default
// row on first access.
func (s *StorageService) Settings(ctx context.Context, userID int64) (*models.UserSettings, error) {
	got, err := s.repomanager.Settings(s.db).Get(ctx, userID)
	if err == nil {
		return got, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	defaults := models.DefaultSettings(userID)
	if err := s.repomanager.Settings(s.db).Insert(ctx, defaults); err != nil {
		return nil, fmt.Errorf("error creating default settings: %v", err)
	}
	// a concurrent first access may have inserted other values; reread
	return s.repomanager.Settings(s.db).Get(ctx, userID)
}

// SetAutoCorrect toggles the correction feature, creating the settings row
// first if needed.
func (s *StorageService) SetAutoCorrect(ctx context.Context, userID int64, enabled bool) error {
	if err := s.ensureSettings(ctx, userID); err != nil {
		return err
	}
	return s.repomanager.Settings(s.db).UpdateAutoCorrect(ctx, userID, enabled)
}

// SetMinMessageLength updates the minimum length bound; range checks live at
// the facade.
func (s *StorageService) SetMinMessageLength(ctx context.Context, userID int64, length int) error {
	if err := s.ensureSettings(ctx, userID); err != nil {
		return err
	}
	return s.repomanager.Settings(s.db).UpdateMinMessageLength(ctx, userID, length)
}

// SetExtra stores one named setting in the open-ended document, read-modify-
// write under a transaction.
func (s *StorageService) SetExtra(ctx context.Context, userID int64, key string, value any) error {
	if err := s.ensureSettings(ctx, userID); err != nil {
		return err
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Settings(tx)
		got, err := repo.Get(ctx, userID)
		if err != nil {
			return err
		}
		if got.Extra == nil {
			got.Extra = map[string]any{}
		}
		got.Extra[key] = value
		return repo.UpdateExtra(ctx, userID, got.Extra)
	})
}

// Upsert creates or refreshes the user row.
func (s *StorageService) Upsert(ctx context.Context, user *models.User) error {
	return s.repomanager.Users(s.db).Upsert(ctx, user)
}

// UpdatePhone records the user's phone number.
func (s *StorageService) UpdatePhone(ctx context.Context, userID int64, phone string) error {
	return s.repomanager.Users(s.db).UpdatePhone(ctx, userID, phone)
}

// GetUser returns the user row.
func (s *StorageService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

func (s *StorageService) ensureSettings(ctx context.Context, userID int64) error {
	_, err := s.Settings(ctx, userID)
	return err
}
