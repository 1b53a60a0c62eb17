package services

// Shared test doubles for the service tests: hand-written fakes for the
// repositories and the company directory, plus a sqlmock-backed *sql.DB for
// flows that open transactions.

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/devmoodys/cls-node-final/internal/companydir"
	"github.com/devmoodys/cls-node-final/internal/dbx"
	"github.com/devmoodys/cls-node-final/internal/models"
	"github.com/devmoodys/cls-node-final/internal/password"
	"github.com/devmoodys/cls-node-final/internal/repositories/accounts"
	"github.com/devmoodys/cls-node-final/internal/repositories/permissions"
	"github.com/devmoodys/cls-node-final/internal/repositories/weights"
)

var errBoom = errors.New("boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func mustHash(t *testing.T, h *password.Hasher, secret string) *string {
	t.Helper()
	hash, err := h.Hash(secret)
	if err != nil {
		t.Fatalf("hashing %q: %v", secret, err)
	}
	return &hash
}

func strPtr(s string) *string { return &s }

type fakeAccountsRepo struct {
	createOut *models.Account
	createErr error
	createIn  *models.Account

	getByIDOut   *models.Account
	getByIDErr   error
	getByIDCalls int

	getByEmailOut   *models.Account
	getByEmailErr   error
	getByEmailIn    string
	getByEmailCalls int

	listByCompanyOut []*models.Account
	listByCompanyErr error

	listByStatusOut []*models.Account
	listByStatusErr error

	updateStatusErr error
	updateStatusID  string
	updateStatusVal string

	updatePasswordErr  error
	updatePasswordID   string
	updatePasswordHash string

	updateTempErr     error
	updateTempID      string
	updateTempHash    string
	updateTempExpires time.Time

	updateTosErr error
	updateTosID  string
	updateTosAt  time.Time

	updateLoginTypesErr   error
	updateLoginTypesID    string
	updateLoginTypesVal   []string
	updateLoginTypesCalls int

	updateNoticeErr error
	updateNoticeID  string
	updateNoticeVal bool

	deleteErr error
	deleteID  string
}

var _ accounts.Repository = (*fakeAccountsRepo)(nil)

func (f *fakeAccountsRepo) Create(_ context.Context, account *models.Account) (*models.Account, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createIn = account
	if f.createOut != nil {
		return f.createOut, nil
	}
	return account, nil
}

func (f *fakeAccountsRepo) GetByID(context.Context, string) (*models.Account, error) {
	f.getByIDCalls++
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDOut, nil
}

func (f *fakeAccountsRepo) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	f.getByEmailCalls++
	f.getByEmailIn = email
	if f.getByEmailErr != nil {
		return nil, f.getByEmailErr
	}
	return f.getByEmailOut, nil
}

func (f *fakeAccountsRepo) ListByCompany(context.Context, string) ([]*models.Account, error) {
	return f.listByCompanyOut, f.listByCompanyErr
}

func (f *fakeAccountsRepo) ListByStatus(context.Context, string) ([]*models.Account, error) {
	return f.listByStatusOut, f.listByStatusErr
}

func (f *fakeAccountsRepo) UpdateStatus(_ context.Context, id string, status string) error {
	f.updateStatusID = id
	f.updateStatusVal = status
	return f.updateStatusErr
}

func (f *fakeAccountsRepo) UpdatePasswordHash(_ context.Context, id string, hash string) error {
	f.updatePasswordID = id
	f.updatePasswordHash = hash
	return f.updatePasswordErr
}

func (f *fakeAccountsRepo) UpdateTempPassword(_ context.Context, id string, hash string, expires time.Time) error {
	f.updateTempID = id
	f.updateTempHash = hash
	f.updateTempExpires = expires
	return f.updateTempErr
}

func (f *fakeAccountsRepo) UpdateTosAccepted(_ context.Context, id string, acceptedAt time.Time) error {
	f.updateTosID = id
	f.updateTosAt = acceptedAt
	return f.updateTosErr
}

func (f *fakeAccountsRepo) UpdateLoginTypes(_ context.Context, id string, loginTypes []string) error {
	f.updateLoginTypesCalls++
	f.updateLoginTypesID = id
	f.updateLoginTypesVal = loginTypes
	return f.updateLoginTypesErr
}

func (f *fakeAccountsRepo) UpdateNoticeEmailSent(_ context.Context, id string, sent bool) error {
	f.updateNoticeID = id
	f.updateNoticeVal = sent
	return f.updateNoticeErr
}

func (f *fakeAccountsRepo) Delete(_ context.Context, id string) error {
	f.deleteID = id
	return f.deleteErr
}

type insertedPartner struct {
	companyID string
	position  int
	partner   string
}

type fakePermissionsRepo struct {
	listOut []string
	listErr error

	deleteErr     error
	deleteCompany string
	deleteCalls   int

	insertErr error
	inserted  []insertedPartner
}

var _ permissions.Repository = (*fakePermissionsRepo)(nil)

func (f *fakePermissionsRepo) ListByCompany(context.Context, string) ([]string, error) {
	return f.listOut, f.listErr
}

func (f *fakePermissionsRepo) DeleteByCompany(_ context.Context, companyID string) error {
	f.deleteCalls++
	f.deleteCompany = companyID
	return f.deleteErr
}

func (f *fakePermissionsRepo) Insert(_ context.Context, companyID string, position int, partner string) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, insertedPartner{companyID: companyID, position: position, partner: partner})
	return nil
}

type fakeWeightsRepo struct {
	upsertOut *models.WeightProfile
	upsertErr error
	upsertIn  *models.WeightProfile

	getOut *models.WeightProfile
	getErr error

	listOut []*models.WeightProfile
	listErr error

	deleteErr    error
	deleteUserID string
}

var _ weights.Repository = (*fakeWeightsRepo)(nil)

func (f *fakeWeightsRepo) Upsert(_ context.Context, profile *models.WeightProfile) (*models.WeightProfile, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.upsertIn = profile
	if f.upsertOut != nil {
		return f.upsertOut, nil
	}
	return profile, nil
}

func (f *fakeWeightsRepo) GetByUserAndType(context.Context, string, string) (*models.WeightProfile, error) {
	return f.getOut, f.getErr
}

func (f *fakeWeightsRepo) ListByUser(context.Context, string) ([]*models.WeightProfile, error) {
	return f.listOut, f.listErr
}

func (f *fakeWeightsRepo) DeleteByUser(_ context.Context, userID string) error {
	f.deleteUserID = userID
	return f.deleteErr
}

// fakeRepoManager hands out the same fakes regardless of the DBTX it is
// given, which lets transactional flows run against sqlmock.
type fakeRepoManager struct {
	accounts    *fakeAccountsRepo
	permissions *fakePermissionsRepo
	weights     *fakeWeightsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository { return m.accounts }

func (m *fakeRepoManager) Permissions(dbx.DBTX) permissions.Repository { return m.permissions }

func (m *fakeRepoManager) Weights(dbx.DBTX) weights.Repository { return m.weights }

type fakeDirectory struct {
	getByIDOut   *models.Company
	getByIDErr   error
	getByIDIn    string
	getByIDCalls int
}

var _ companydir.Directory = (*fakeDirectory)(nil)

func (f *fakeDirectory) GetByID(_ context.Context, id string) (*models.Company, error) {
	f.getByIDCalls++
	f.getByIDIn = id
	return f.getByIDOut, f.getByIDErr
}

func (f *fakeDirectory) GetByName(context.Context, string) (*models.Company, error) {
	return nil, nil
}

func (f *fakeDirectory) Create(context.Context, companydir.CompanyInput) (*models.Company, error) {
	return nil, nil
}

func (f *fakeDirectory) Update(context.Context, string, companydir.CompanyUpdate) (*models.Company, error) {
	return nil, nil
}
