package weights

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/devmoodys/cls-node-final/internal/common"
	"github.com/devmoodys/cls-node-final/internal/dbx"
	"github.com/devmoodys/cls-node-final/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const weightColumns = `user_id, property_type, business, amenity, transit, employment, demographic, housing, created_at, updated_at`

func scanProfile(row interface{ Scan(dest ...any) error }) (*models.WeightProfile, error) {
	p := &models.WeightProfile{}
	err := row.Scan(
		&p.UserID, &p.PropertyType,
		&p.Business, &p.Amenity, &p.Transit, &p.Employment, &p.Demographic, &p.Housing,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, profile *models.WeightProfile) (*models.WeightProfile, error) {

	query :=
		`INSERT INTO custom_weights (user_id, property_type, business, amenity, transit, employment, demographic, housing)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id, property_type) DO UPDATE
		 SET business = EXCLUDED.business, amenity = EXCLUDED.amenity, transit = EXCLUDED.transit, employment = EXCLUDED.employment, demographic = EXCLUDED.demographic, housing = EXCLUDED.housing, updated_at = now()
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		profile.UserID, profile.PropertyType,
		profile.Business, profile.Amenity, profile.Transit,
		profile.Employment, profile.Demographic, profile.Housing,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	return profile, nil
}

func (r *PostgresRepository) GetByUserAndType(ctx context.Context, userID string, propertyType string) (*models.WeightProfile, error) {
	query := `SELECT ` + weightColumns + ` FROM custom_weights WHERE user_id = $1 AND property_type = $2`

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, userID, propertyType))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrWeightProfileNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return profile, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.WeightProfile, error) {
	query := `SELECT ` + weightColumns + ` FROM custom_weights WHERE user_id = $1 ORDER BY property_type`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	defer rows.Close()

	var profiles []*models.WeightProfile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return profiles, nil
}

func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID string) error {
	query := `DELETE FROM custom_weights WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return nil
}
