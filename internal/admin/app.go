// Package admin implements the clsadmin command line tool: operator commands
// for companies, accounts, temporary credentials, and partner permissions.
package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/devmoodys/cls-node-final/internal/companydir"
	"github.com/devmoodys/cls-node-final/internal/config"
	"github.com/devmoodys/cls-node-final/internal/logging"
	"github.com/devmoodys/cls-node-final/internal/models"
	"github.com/devmoodys/cls-node-final/internal/password"
	"github.com/devmoodys/cls-node-final/internal/repositories/repomanager"
	"github.com/devmoodys/cls-node-final/internal/services"
)

// The command handlers consume these slices of the service surface, which
// keeps them testable with small fakes.
type accountOps interface {
	Create(ctx context.Context, in services.CreateAccountInput) (*models.PublicAccount, error)
	Activate(ctx context.Context, accountID string) error
	Deactivate(ctx context.Context, accountID string) error
	GetByEmail(ctx context.Context, email string) (*models.PublicAccount, error)
}

type recoveryOps interface {
	MintTempPassword() (string, error)
	IssueTempPassword(ctx context.Context, accountID string, plaintext string) error
}

type entitlementOps interface {
	PartnerPermissions(ctx context.Context, companyID string) ([]string, error)
	ReplacePartnerPermissions(ctx context.Context, companyID string, partners []string) error
}

type App struct {
	db          *sql.DB
	accounts    accountOps
	recovery    recoveryOps
	entitlement entitlementOps
	companies   companydir.Directory
	out         io.Writer
}

// NewApp opens the database, runs migrations, and wires the services. Logs
// go to stderr as JSON so command output on stdout stays scriptable.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	manager := repomanager.NewPostgresRepositoryManager()
	if err := manager.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	directory := companydir.NewClient(
		cfg.DirectoryBaseURL,
		cfg.DirectoryAPIKey,
		&http.Client{Timeout: cfg.DirectoryTimeout},
		logger,
	)
	hasher := password.New(cfg.BcryptCost)

	return &App{
		db:          db,
		accounts:    services.NewAccountService(db, manager, directory, hasher, logger),
		recovery:    services.NewRecoveryService(db, manager, hasher, cfg, logger),
		entitlement: services.NewEntitlementService(db, manager, logger),
		companies:   directory,
		out:         os.Stdout,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// Run dispatches a single subcommand. The caller strips the configuration
// flags from args first (config.StripCLIFlags).
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return errors.New("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "create-company":
		return a.createCompany(ctx, rest)
	case "set-term":
		return a.setTerm(ctx, rest)
	case "create-account":
		return a.createAccount(ctx, rest)
	case "set-status":
		return a.setStatus(ctx, rest)
	case "issue-temp":
		return a.issueTemp(ctx, rest)
	case "set-partners":
		return a.setPartners(ctx, rest)
	case "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.out, `Usage: clsadmin [config flags] <command> [command flags]

Commands:
  create-company   register a company with its subscription window
  set-term         update a company's subscription window
  create-account   register an account (prompts for the password)
  set-status       activate or deactivate an account
  issue-temp       mint and store a temporary password for an account
  set-partners     replace a company's partner permission set

Config flags: -c/-config FILE, -d DSN, -e DIRECTORY_URL, -k API_KEY,
-w TIMEOUT_SECONDS, -b BCRYPT_COST, -t TEMP_VALIDITY_MINUTES`)
}

// resolveAccountID accepts either form the account commands take: a direct
// id or an email to look up.
func (a *App) resolveAccountID(ctx context.Context, id string, email string) (string, error) {
	switch {
	case id != "" && email != "":
		return "", errors.New("use -id or -email, not both")
	case id != "":
		return id, nil
	case email != "":
		account, err := a.accounts.GetByEmail(ctx, email)
		if err != nil {
			return "", err
		}
		return account.ID, nil
	default:
		return "", errors.New("-id or -email is required")
	}
}
