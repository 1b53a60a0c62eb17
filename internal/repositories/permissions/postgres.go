package permissions

import (
	"context"
	"fmt"

	"github.com/devmoodys/cls-node-final/internal/common"
	"github.com/devmoodys/cls-node-final/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByCompany(ctx context.Context, companyID string) ([]string, error) {
	query :=
		`SELECT partner FROM partner_permissions
		 WHERE company_id = $1
		 ORDER BY position
		 `

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	defer rows.Close()

	var partners []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
		}
		partners = append(partners, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return partners, nil
}

func (r *PostgresRepository) DeleteByCompany(ctx context.Context, companyID string) error {
	query := `DELETE FROM partner_permissions WHERE company_id = $1`

	if _, err := r.db.ExecContext(ctx, query, companyID); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return nil
}

func (r *PostgresRepository) Insert(ctx context.Context, companyID string, position int, partner string) error {
	query :=
		`INSERT INTO partner_permissions (company_id, position, partner)
		 VALUES ($1, $2, $3)
		 `

	if _, err := r.db.ExecContext(ctx, query, companyID, position, partner); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return nil
}
