package repomanager

import (
	"context"
	"database/sql"

	"github.com/devmoodys/cls-node-final/internal/dbx"
	"github.com/devmoodys/cls-node-final/internal/repositories/accounts"
	"github.com/devmoodys/cls-node-final/internal/repositories/permissions"
	"github.com/devmoodys/cls-node-final/internal/repositories/weights"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Permissions(db dbx.DBTX) permissions.Repository
	Weights(db dbx.DBTX) weights.Repository
}
