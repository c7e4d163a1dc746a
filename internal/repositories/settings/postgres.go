package settings

import (
	"context"
	"database/sql"
	"encoding/json"
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

func (r *PostgresRepository) Get(ctx context.Context, userID int64) (*models.UserSettings, error) {
	query :=
		`SELECT user_id, auto_correct_enabled, min_message_length, extra FROM user_settings
		 WHERE user_id = $1
		 `

	s := &models.UserSettings{}
	var extra []byte
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.UserID, &s.AutoCorrectEnabled, &s.MinMessageLength, &extra)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	s.Extra = map[string]any{}
	if len(extra) > 0 {
		if err := json.Unmarshal(extra, &s.Extra); err != nil {
			return nil, fmt.Errorf("settings document: %w", err)
		}
	}

	return s, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, s *models.UserSettings) error {

	extra, err := json.Marshal(s.Extra)
	if err != nil {
		return fmt.Errorf("settings document: %w", err)
	}

	query :=
		`INSERT INTO user_settings (user_id, auto_correct_enabled, min_message_length, extra)
         VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO NOTHING
		 `

	_, err = r.db.ExecContext(ctx, query, s.UserID, s.AutoCorrectEnabled, s.MinMessageLength, extra)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) UpdateAutoCorrect(ctx context.Context, userID int64, enabled bool) error {
	query :=
		`UPDATE user_settings SET auto_correct_enabled = $2
		 WHERE user_id = $1
		 `

	return r.exec(ctx, query, userID, enabled)
}

func (r *PostgresRepository) UpdateMinMessageLength(ctx context.Context, userID int64, length int) error {
	query :=
		`UPDATE user_settings SET min_message_length = $2
		 WHERE user_id = $1
		 `

	return r.exec(ctx, query, userID, length)
}

func (r *PostgresRepository) UpdateExtra(ctx context.Context, userID int64, extra map[string]any) error {
	doc, err := json.Marshal(extra)
	if err != nil {
		return fmt.Errorf("settings document: %w", err)
	}

	query :=
		`UPDATE user_settings SET extra = $2
		 WHERE user_id = $1
		 `

	return r.exec(ctx, query, userID, doc)
}

func (r *PostgresRepository) exec(ctx context.Context, query string, userID int64, arg any) error {
	res, err := r.db.ExecContext(ctx, query, userID, arg)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
