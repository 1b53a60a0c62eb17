package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
)

func (a *App) setPartners(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set-partners", flag.ContinueOnError)
	fs.SetOutput(a.out)
	companyID := fs.String("company", "", "company id")
	list := fs.String("partners", "", "comma-separated partner list; empty clears the override")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *companyID == "" {
		return errors.New("set-partners: -company is required")
	}

	if err := a.entitlement.ReplacePartnerPermissions(ctx, *companyID, splitPartners(*list)); err != nil {
		return err
	}

	effective, err := a.entitlement.PartnerPermissions(ctx, *companyID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Partners for %s: %s\n", *companyID, strings.Join(effective, ", "))
	return nil
}

func splitPartners(raw string) []string {
	var partners []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			partners = append(partners, p)
		}
	}
	return partners
}
