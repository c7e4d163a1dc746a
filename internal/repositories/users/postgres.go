package users

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

func (r *PostgresRepository) Upsert(ctx context.Context, user *models.User) error {

	query :=
		`INSERT INTO users (id, username, first_name, is_active)
         VALUES ($1, $2, $3, TRUE)
		 ON CONFLICT (id) DO UPDATE
		 SET username = EXCLUDED.username, first_name = EXCLUDED.first_name, is_active = TRUE
		 `

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.FirstName)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	query :=
		`SELECT id, username, first_name, phone_number, created_at, is_active FROM users
		 WHERE id = $1
		 `

	user := &models.User{}
	var phone sql.NullString
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID, &user.Username, &user.FirstName, &phone, &user.CreatedAt, &user.IsActive)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	user.PhoneNumber = phone.String

	return user, nil
}

func (r *PostgresRepository) UpdatePhone(ctx context.Context, userID int64, phone string) error {
	query :=
		`UPDATE users SET phone_number = $2
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, userID, phone)
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
