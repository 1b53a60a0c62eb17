package services

import (
	"context"
	"database/sql"

	"github.com/devmoodys/cls-node-final/internal/dbx"
	"github.com/devmoodys/cls-node-final/internal/logging"
	"github.com/devmoodys/cls-node-final/internal/repositories/repomanager"
)

// DefaultPartnerSet is the partner list served to any company without
// override rows. Order matters to the frontends and is part of the contract.
var DefaultPartnerSet = []string{
	"cls",
	"cmbs",
	"reis",
	"rca",
	"catylist",
	"compstak",
	"rockportval",
	"dealx",
	"edr",
	"infabode",
	"walkscore",
	"fourtwentyseven",
}

// EntitlementService resolves which data partners a company's users may see.
type EntitlementService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewEntitlementService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *EntitlementService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &EntitlementService{db: db, repomanager: m, log: log}
}

// PartnerPermissions returns the company's override rows in stored order
// when any exist, otherwise a copy of DefaultPartnerSet. An override fully
// replaces the default set; the two are never merged.
func (s *EntitlementService) PartnerPermissions(ctx context.Context, companyID string) ([]string, error) {
	partners, err := s.repomanager.Permissions(s.db).ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if len(partners) == 0 {
		return append([]string(nil), DefaultPartnerSet...), nil
	}
	return partners, nil
}

// ReplacePartnerPermissions swaps the company's override rows for the given
// list inside one transaction so readers never observe a partial set.
// Positions are assigned from the slice order. An empty list clears the
// override and puts the company back on the default set.
func (s *EntitlementService) ReplacePartnerPermissions(ctx context.Context, companyID string, partners []string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Permissions(tx)
		if err := repo.DeleteByCompany(ctx, companyID); err != nil {
			return err
		}
		for position, partner := range partners {
			if err := repo.Insert(ctx, companyID, position, partner); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "partner permissions replaced", "company_id", companyID, "partners", len(partners))
	return nil
}
