package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/devmoodys/cls-node-final/internal/models"
	"github.com/devmoodys/cls-node-final/internal/services"
)

func (a *App) createAccount(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-account", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "account email")
	role := fs.String("role", models.RoleUser, "account role (user, admin, superadmin)")
	companyID := fs.String("company", "", "company id")
	createdBy := fs.String("created-by", "", "operator identifier recorded on the account")
	sso := fs.Bool("sso", false, "create without a password (SSO-only account)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("create-account: -email is required")
	}

	in := services.CreateAccountInput{
		Email: *email,
		Role:  *role,
	}
	if *companyID != "" {
		in.CompanyID = companyID
	}
	if *createdBy != "" {
		in.CreatedBy = createdBy
	}
	if !*sso {
		secret, err := a.promptSecret("Enter password: ")
		if err != nil {
			return err
		}
		s := string(secret)
		in.Secret = &s
	}

	account, err := a.accounts.Create(ctx, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account created: %s (%s, %s)\n", account.ID, account.Email, account.Role)
	return nil
}

func (a *App) setStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set-status", flag.ContinueOnError)
	fs.SetOutput(a.out)
	id := fs.String("id", "", "account id")
	email := fs.String("email", "", "account email (alternative to -id)")
	status := fs.String("status", "", "active or inactive")
	if err := fs.Parse(args); err != nil {
		return err
	}

	accountID, err := a.resolveAccountID(ctx, *id, *email)
	if err != nil {
		return fmt.Errorf("set-status: %w", err)
	}

	switch *status {
	case models.StatusActive:
		err = a.accounts.Activate(ctx, accountID)
	case models.StatusInactive:
		err = a.accounts.Deactivate(ctx, accountID)
	default:
		return fmt.Errorf("set-status: -status must be %q or %q", models.StatusActive, models.StatusInactive)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account %s is now %s\n", accountID, *status)
	return nil
}
