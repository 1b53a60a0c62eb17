// Package services contains the business logic of the account authority.
// This file implements AccountService: account lifecycle, authentication,
// and login provenance.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/devmoodys/cls-node-final/internal/common"
	"github.com/devmoodys/cls-node-final/internal/companydir"
	"github.com/devmoodys/cls-node-final/internal/logging"
	"github.com/devmoodys/cls-node-final/internal/models"
	"github.com/devmoodys/cls-node-final/internal/password"
	"github.com/devmoodys/cls-node-final/internal/repositories/repomanager"
)

// AccountService provides account-related operations:
// - Authenticate: gate-ordered credential verification
// - Create: register accounts with clamped roles and optional secrets
// - lifecycle updates: terms acceptance, status, provenance, removal
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	companies   companydir.Directory
	hasher      *password.Hasher
	log         logging.Logger
	now         func() time.Time
}

// NewAccountService constructs an AccountService. The company directory
// client is injected here; nothing in the package reaches for a shared
// instance.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, companies companydir.Directory, hasher *password.Hasher, log logging.Logger) *AccountService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &AccountService{
		db:          db,
		repomanager: m,
		companies:   companies,
		hasher:      hasher,
		log:         log,
		now:         time.Now,
	}
}

// CreateAccountInput carries the fields accepted on account creation.
type CreateAccountInput struct {
	Email     string
	Secret    *string // nil creates the account with no stored credential
	Role      string
	CompanyID *string
	CreatedBy *string
	LoginType string // optional initial provenance tag
}

// Authenticate verifies an email/secret pair and returns the account
// projection on success. The gate order is fixed: missing secret, account
// lookup, status, company term, stored-credential presence, hash check.
// An empty secret fails before any storage read. Credential-shaped failures
// all collapse into ErrInvalidCredential so callers cannot probe which part
// failed; logs carry the distinction.
func (s *AccountService) Authenticate(ctx context.Context, email string, secret string) (*models.PublicAccount, error) {
	if secret == "" {
		return nil, common.ErrInvalidCredential
	}

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	if account.Status != models.StatusActive {
		return nil, common.ErrAccountDeactivated
	}

	if account.CompanyID != nil {
		company, err := s.companies.GetByID(ctx, *account.CompanyID)
		if err != nil {
			return nil, err
		}
		if company != nil && !company.TermValid(s.now()) {
			return nil, common.ErrTermExpired
		}
	}

	if account.PasswordHash == nil {
		s.log.Debug(ctx, "authentication failed", "account_id", account.ID, "reason", "no stored credential")
		return nil, common.ErrInvalidCredential
	}

	ok, err := s.hasher.Verify(*account.PasswordHash, secret)
	if err != nil {
		s.log.Error(ctx, "credential check failed", "account_id", account.ID, "error", err)
		return nil, common.ErrInvalidCredential
	}
	if !ok {
		s.log.Debug(ctx, "authentication failed", "account_id", account.ID, "reason", "secret mismatch")
		return nil, common.ErrInvalidCredential
	}

	return account.Public(), nil
}

// Create registers an account. The email is lowercased, the role clamped to
// the closed set, and the optional secret hashed before storage.
func (s *AccountService) Create(ctx context.Context, in CreateAccountInput) (*models.PublicAccount, error) {
	account := &models.Account{
		ID:        uuid.NewString(),
		Email:     models.NormalizeEmail(in.Email),
		Role:      models.ClampRole(in.Role),
		Status:    models.StatusActive,
		CompanyID: in.CompanyID,
		CreatedBy: in.CreatedBy,
	}

	if in.Secret != nil {
		hash, err := s.hasher.Hash(*in.Secret)
		if err != nil {
			return nil, fmt.Errorf("hashing secret: %w", err)
		}
		account.PasswordHash = &hash
	}
	if in.LoginType != "" {
		account.LoginTypes = []string{in.LoginType}
	}

	created, err := s.repomanager.Accounts(s.db).Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "account created", "account_id", created.ID, "role", created.Role)
	return created.Public(), nil
}

// AcceptTerms stamps the terms-of-service acceptance time with the current
// clock. Re-acceptance is legal and simply moves the stamp; the last call
// wins.
func (s *AccountService) AcceptTerms(ctx context.Context, accountID string) error {
	return s.repomanager.Accounts(s.db).UpdateTosAccepted(ctx, accountID, s.now())
}

// Activate marks the account active. The write is unconditional; an unknown
// id changes nothing and is not an error.
func (s *AccountService) Activate(ctx context.Context, accountID string) error {
	return s.repomanager.Accounts(s.db).UpdateStatus(ctx, accountID, models.StatusActive)
}

// Deactivate marks the account inactive, cutting off authentication.
func (s *AccountService) Deactivate(ctx context.Context, accountID string) error {
	return s.repomanager.Accounts(s.db).UpdateStatus(ctx, accountID, models.StatusInactive)
}

// RecordLoginType notes the authentication path used. A tag the account
// already carries causes no write; otherwise it is appended and the whole
// list persisted. Concurrent calls are last-write-wins. Callers must use
// the returned account, not the one passed in.
func (s *AccountService) RecordLoginType(ctx context.Context, account *models.Account, tag string) (*models.Account, error) {
	if tag == "" || account.HasLoginType(tag) {
		return account, nil
	}

	updated := *account
	updated.LoginTypes = append(append([]string(nil), account.LoginTypes...), tag)

	if err := s.repomanager.Accounts(s.db).UpdateLoginTypes(ctx, account.ID, updated.LoginTypes); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Remove permanently deletes the account row.
func (s *AccountService) Remove(ctx context.Context, accountID string) error {
	if err := s.repomanager.Accounts(s.db).Delete(ctx, accountID); err != nil {
		return err
	}
	s.log.Info(ctx, "account removed", "account_id", accountID)
	return nil
}

// GetByID returns the account projection for the given id.
func (s *AccountService) GetByID(ctx context.Context, accountID string) (*models.PublicAccount, error) {
	account, err := s.repomanager.Accounts(s.db).GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account.Public(), nil
}

// GetByEmail returns the account projection for the given email, lowercased
// the same way Authenticate does.
func (s *AccountService) GetByEmail(ctx context.Context, email string) (*models.PublicAccount, error) {
	account, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	return account.Public(), nil
}

// ListByCompany returns projections of the company's accounts.
func (s *AccountService) ListByCompany(ctx context.Context, companyID string) ([]*models.PublicAccount, error) {
	accounts, err := s.repomanager.Accounts(s.db).ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return projectAll(accounts), nil
}

// ListByStatus returns projections of all accounts in the given status.
func (s *AccountService) ListByStatus(ctx context.Context, status string) ([]*models.PublicAccount, error) {
	accounts, err := s.repomanager.Accounts(s.db).ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return projectAll(accounts), nil
}

// SetNoticeEmailSent flips the expiry-warning flag after the mailer fired
// (or resets it when a term is extended).
func (s *AccountService) SetNoticeEmailSent(ctx context.Context, accountID string, sent bool) error {
	return s.repomanager.Accounts(s.db).UpdateNoticeEmailSent(ctx, accountID, sent)
}

func projectAll(accounts []*models.Account) []*models.PublicAccount {
	out := make([]*models.PublicAccount, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.Public())
	}
	return out
}
