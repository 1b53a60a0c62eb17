package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/devmoodys/cls-node-final/internal/config"
	"github.com/devmoodys/cls-node-final/internal/logging"
	"github.com/devmoodys/cls-node-final/internal/password"
	"github.com/devmoodys/cls-node-final/internal/randx"
	"github.com/devmoodys/cls-node-final/internal/repositories/repomanager"
)

// DefaultTempPasswordValidity is applied when the configuration does not
// carry a usable window.
const DefaultTempPasswordValidity = 10 * time.Minute

// RecoveryService issues and verifies short-lived temporary credentials and
// performs password changes. Temporary credentials live next to the primary
// one: issuing never touches the primary hash, and changing the primary
// never clears a pending temporary credential.
type RecoveryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *password.Hasher
	validity    time.Duration
	log         logging.Logger
	now         func() time.Time
}

func NewRecoveryService(db *sql.DB, m repomanager.RepositoryManager, hasher *password.Hasher, cfg *config.Config, log logging.Logger) *RecoveryService {
	validity := cfg.TempPasswordValidity
	if validity <= 0 {
		validity = DefaultTempPasswordValidity
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &RecoveryService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		validity:    validity,
		log:         log,
		now:         time.Now,
	}
}

// IssueTempPassword hashes the plaintext and stores it with a fresh expiry
// window, replacing whatever temporary credential was pending. Issuing a new
// one is the only way to shorten or extend a pending window.
func (s *RecoveryService) IssueTempPassword(ctx context.Context, accountID string, plaintext string) error {
	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("hashing temporary secret: %w", err)
	}

	expires := s.now().Add(s.validity)
	if err := s.repomanager.Accounts(s.db).UpdateTempPassword(ctx, accountID, hash, expires); err != nil {
		return err
	}

	s.log.Info(ctx, "temporary credential issued", "account_id", accountID, "expires_at", expires)
	return nil
}

// VerifyTempPassword reports whether the candidate matches the account's
// pending temporary credential. Absent, expired, and mismatched credentials
// all come back (false, nil); only lookup failures surface as errors.
// Verification has no side effects and may be repeated until the window
// closes.
func (s *RecoveryService) VerifyTempPassword(ctx context.Context, accountID string, plaintext string) (bool, error) {
	account, err := s.repomanager.Accounts(s.db).GetByID(ctx, accountID)
	if err != nil {
		return false, err
	}

	if !account.TempCredentialUsable(s.now()) {
		return false, nil
	}

	ok, err := s.hasher.Verify(*account.TempPasswordHash, plaintext)
	if err != nil {
		s.log.Error(ctx, "temporary credential check failed", "account_id", accountID, "error", err)
		return false, nil
	}
	return ok, nil
}

// ChangePassword replaces the primary credential. A pending temporary
// credential is left in place and runs out on its own clock.
func (s *RecoveryService) ChangePassword(ctx context.Context, accountID string, plaintext string) error {
	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("hashing secret: %w", err)
	}

	if err := s.repomanager.Accounts(s.db).UpdatePasswordHash(ctx, accountID, hash); err != nil {
		return err
	}

	s.log.Info(ctx, "password changed", "account_id", accountID)
	return nil
}

// MintTempPassword generates the plaintext secret handed to the user
// out-of-band: 8 random bytes as 16 hex characters.
func (s *RecoveryService) MintTempPassword() (string, error) {
	return randx.HexString(8)
}
