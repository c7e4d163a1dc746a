package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tgpolish/internal/common"
	"github.com/dmitrijs2005/tgpolish/internal/dbx"
	"github.com/dmitrijs2005/tgpolish/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, cred *models.Credential) error {

	query :=
		`INSERT INTO telegram_credentials (id, user_id, phone_number, sealed_session, is_active)
         VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		cred.ID, cred.UserID, cred.PhoneNumber, cred.SealedBlob, cred.IsActive)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetActive(ctx context.Context, userID int64) (*models.Credential, error) {
	query :=
		`SELECT id, user_id, phone_number, sealed_session, is_active, created_at FROM telegram_credentials
		 WHERE user_id = $1 AND is_active
		 ORDER BY created_at DESC
		 LIMIT 1
		 `

	cred := &models.Credential{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&cred.ID, &cred.UserID, &cred.PhoneNumber, &cred.SealedBlob, &cred.IsActive, &cred.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cred, nil
}

func (r *PostgresRepository) DeactivateAll(ctx context.Context, userID int64) error {
	query :=
		`UPDATE telegram_credentials SET is_active = FALSE
		 WHERE user_id = $1 AND is_active
		 `

	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
