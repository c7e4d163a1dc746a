package users

import (
	"context"

	"github.com/dmitrijs2005/tgpolish/internal/models"
)

type Repository interface {
	Upsert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	UpdatePhone(ctx context.Context, userID int64, phone string) error
}
