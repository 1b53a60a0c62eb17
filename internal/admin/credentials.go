package admin

import (
	"context"
	"flag"
	"fmt"
)

func (a *App) issueTemp(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("issue-temp", flag.ContinueOnError)
	fs.SetOutput(a.out)
	id := fs.String("id", "", "account id")
	email := fs.String("email", "", "account email (alternative to -id)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	accountID, err := a.resolveAccountID(ctx, *id, *email)
	if err != nil {
		return fmt.Errorf("issue-temp: %w", err)
	}

	plaintext, err := a.recovery.MintTempPassword()
	if err != nil {
		return err
	}
	if err := a.recovery.IssueTempPassword(ctx, accountID, plaintext); err != nil {
		return err
	}

	// Shown once; only the hash is stored.
	fmt.Fprintf(a.out, "Temporary password for %s: %s\n", accountID, plaintext)
	return nil
}
