package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tgpolish/internal/dbx"
	"github.com/dmitrijs2005/tgpolish/internal/repositories/credentials"
	"github.com/dmitrijs2005/tgpolish/internal/repositories/settings"
	"github.com/dmitrijs2005/tgpolish/internal/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Credentials(db dbx.DBTX) credentials.Repository
	Settings(db dbx.DBTX) settings.Repository
}
