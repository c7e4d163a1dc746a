package settings

import (
	"context"

	"github.com/dmitrijs2005/tgpolish/internal/models"
)

type Repository interface {
	Get(ctx context.Context, userID int64) (*models.UserSettings, error)
	Insert(ctx context.Context, s *models.UserSettings) error
	UpdateAutoCorrect(ctx context.Context, userID int64, enabled bool) error
	UpdateMinMessageLength(ctx context.Context, userID int64, length int) error
	UpdateExtra(ctx context.Context, userID int64, extra map[string]any) error
}
