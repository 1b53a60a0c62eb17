// Package weights persists custom score weighting profiles, one row per
// (user, property type) pair. Writes are single-statement upserts against
// that key, so concurrent saves cannot interleave a lookup and a write.
package weights

import (
	"context"

	"github.com/devmoodys/cls-node-final/internal/models"
)

type Repository interface {
	Upsert(ctx context.Context, profile *models.WeightProfile) (*models.WeightProfile, error)
	GetByUserAndType(ctx context.Context, userID string, propertyType string) (*models.WeightProfile, error)
	ListByUser(ctx context.Context, userID string) ([]*models.WeightProfile, error)
	DeleteByUser(ctx context.Context, userID string) error
}
