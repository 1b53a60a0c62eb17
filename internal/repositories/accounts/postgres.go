package accounts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

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

const accountColumns = `id, email, password_hash, role, status, company_id, tos_accepted_at, notice_email_sent, login_types, temp_password_hash, temp_password_expires_at, created_by, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	a := &models.Account{}
	var loginTypes []byte

	err := row.Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.Status, &a.CompanyID,
		&a.TosAcceptedAt, &a.NoticeEmailSent, &loginTypes,
		&a.TempPasswordHash, &a.TempPasswordExpiresAt, &a.CreatedBy,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(loginTypes) > 0 {
		if err := json.Unmarshal(loginTypes, &a.LoginTypes); err != nil {
			return nil, fmt.Errorf("decoding login_types: %w", err)
		}
	}
	return a, nil
}

// marshalLoginTypes keeps the column a JSON array even for a nil slice.
func marshalLoginTypes(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encoding login_types: %w", err)
	}
	return b, nil
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO accounts (id, email, password_hash, role, status, company_id, tos_accepted_at, notice_email_sent, login_types, temp_password_hash, temp_password_expires_at, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING created_at, updated_at
		 `

	loginTypes, err := marshalLoginTypes(account.LoginTypes)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, query,
		account.ID, account.Email, account.PasswordHash, account.Role, account.Status,
		account.CompanyID, account.TosAcceptedAt, account.NoticeEmailSent, loginTypes,
		account.TempPasswordHash, account.TempPasswordExpiresAt, account.CreatedBy,
	).Scan(&account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return account, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return account, nil
}

func (r *PostgresRepository) ListByCompany(ctx context.Context, companyID string) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 ORDER BY created_at`
	return r.list(ctx, query, companyID)
}

func (r *PostgresRepository) ListByStatus(ctx context.Context, status string) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE status = $1 ORDER BY created_at`
	return r.list(ctx, query, status)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return accounts, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	query := `UPDATE accounts SET status = $2, updated_at = now() WHERE id = $1`
	return r.exec(ctx, query, id, status)
}

func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, id string, hash string) error {
	query := `UPDATE accounts SET password_hash = $2, updated_at = now() WHERE id = $1`
	return r.exec(ctx, query, id, hash)
}

func (r *PostgresRepository) UpdateTempPassword(ctx context.Context, id string, hash string, expires time.Time) error {
	query := `UPDATE accounts SET temp_password_hash = $2, temp_password_expires_at = $3, updated_at = now() WHERE id = $1`
	return r.exec(ctx, query, id, hash, expires)
}

func (r *PostgresRepository) UpdateTosAccepted(ctx context.Context, id string, acceptedAt time.Time) error {
	query := `UPDATE accounts SET tos_accepted_at = $2, updated_at = now() WHERE id = $1`
	return r.exec(ctx, query, id, acceptedAt)
}

func (r *PostgresRepository) UpdateLoginTypes(ctx context.Context, id string, loginTypes []string) error {
	encoded, err := marshalLoginTypes(loginTypes)
	if err != nil {
		return err
	}
	query := `UPDATE accounts SET login_types = $2, updated_at = now() WHERE id = $1`
	return r.exec(ctx, query, id, encoded)
}

func (r *PostgresRepository) UpdateNoticeEmailSent(ctx context.Context, id string, sent bool) error {
	query := `UPDATE accounts SET notice_email_sent = $2, updated_at = now() WHERE id = $1`
	return r.exec(ctx, query, id, sent)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM accounts WHERE id = $1`
	return r.exec(ctx, query, id)
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return nil
}
