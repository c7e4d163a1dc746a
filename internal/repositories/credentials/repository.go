package credentials

import (
	"context"

	"github.com/dmitrijs2005/tgpolish/internal/models"
)

// Repository stores sealed provider sessions. Supersede semantics (at most
// one active row per user) are composed transactionally at the service
// layer: DeactivateAll then Insert.
type Repository interface {
	Insert(ctx context.Context, cred *models.Credential) error
	GetActive(ctx context.Context, userID int64) (*models.Credential, error)
	DeactivateAll(ctx context.Context, userID int64) error
}
