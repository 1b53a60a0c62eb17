// Package companydir talks to the external company directory, the system of
// record for tenant companies and their subscription windows. Accounts hold
// only a company id; everything else about a tenant is fetched through here.
package companydir

import (
	"context"
	"time"

	"github.com/devmoodys/cls-node-final/internal/models"
)

// Directory is the lookup surface the services depend on.
type Directory interface {
	// GetByID resolves a company by id. A blank id and an unknown id both
	// yield (nil, nil): tenant-less accounts are legal and gate nothing.
	GetByID(ctx context.Context, id string) (*models.Company, error)
	GetByName(ctx context.Context, name string) (*models.Company, error)
	Create(ctx context.Context, in CompanyInput) (*models.Company, error)
	Update(ctx context.Context, id string, in CompanyUpdate) (*models.Company, error)
}

// CompanyInput carries the fields needed to register a company.
type CompanyInput struct {
	Name       string    `json:"name"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	NoticeDate time.Time `json:"notice_date"`
	MaxUsers   int       `json:"max_users"`
}

// CompanyUpdate is a sparse update: nil fields are left untouched by the
// directory.
type CompanyUpdate struct {
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	NoticeDate *time.Time `json:"notice_date,omitempty"`
	MaxUsers   *int       `json:"max_users,omitempty"`
}
