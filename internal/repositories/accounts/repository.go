// Package accounts persists user account rows, hash material included.
// Every update is sparse: it touches exactly its columns plus updated_at.
package accounts

import (
	"context"
	"time"

	"github.com/devmoodys/cls-node-final/internal/models"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	ListByCompany(ctx context.Context, companyID string) ([]*models.Account, error)
	ListByStatus(ctx context.Context, status string) ([]*models.Account, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	UpdatePasswordHash(ctx context.Context, id string, hash string) error
	UpdateTempPassword(ctx context.Context, id string, hash string, expires time.Time) error
	UpdateTosAccepted(ctx context.Context, id string, acceptedAt time.Time) error
	UpdateLoginTypes(ctx context.Context, id string, loginTypes []string) error
	UpdateNoticeEmailSent(ctx context.Context, id string, sent bool) error
	Delete(ctx context.Context, id string) error
}
