package services

import (
	"context"
	"database/sql"

	"github.com/devmoodys/cls-node-final/internal/logging"
	"github.com/devmoodys/cls-node-final/internal/models"
	"github.com/devmoodys/cls-node-final/internal/repositories/repomanager"
)

// WeightingService stores per-user custom score weightings, one profile per
// (user, property type) pair.
type WeightingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewWeightingService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *WeightingService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &WeightingService{db: db, repomanager: m, log: log}
}

// SaveProfile creates or overwrites the profile for the given key. The write
// is a single upsert statement, so concurrent saves for the same key cannot
// interleave; one of them wins whole.
func (s *WeightingService) SaveProfile(ctx context.Context, profile *models.WeightProfile) (*models.WeightProfile, error) {
	saved, err := s.repomanager.Weights(s.db).Upsert(ctx, profile)
	if err != nil {
		return nil, err
	}

	s.log.Debug(ctx, "weight profile saved", "user_id", saved.UserID, "property_type", saved.PropertyType)
	return saved, nil
}

// GetProfile returns the profile for the given key, or
// common.ErrWeightProfileNotFound when none exists.
func (s *WeightingService) GetProfile(ctx context.Context, userID string, propertyType string) (*models.WeightProfile, error) {
	return s.repomanager.Weights(s.db).GetByUserAndType(ctx, userID, propertyType)
}

// ListProfiles returns all of the user's profiles ordered by property type.
func (s *WeightingService) ListProfiles(ctx context.Context, userID string) ([]*models.WeightProfile, error) {
	return s.repomanager.Weights(s.db).ListByUser(ctx, userID)
}

// DeleteProfiles removes all of the user's profiles, typically on account
// removal.
func (s *WeightingService) DeleteProfiles(ctx context.Context, userID string) error {
	return s.repomanager.Weights(s.db).DeleteByUser(ctx, userID)
}
