// Package permissions persists per-company partner permission overrides.
// Zero rows for a company means the platform default set applies; that
// resolution lives in the entitlement service, not here.
package permissions

import "context"

type Repository interface {
	// ListByCompany returns the company's partners ordered by position.
	ListByCompany(ctx context.Context, companyID string) ([]string, error)
	DeleteByCompany(ctx context.Context, companyID string) error
	Insert(ctx context.Context, companyID string, position int, partner string) error
}
