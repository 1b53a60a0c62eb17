package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/devmoodys/cls-node-final/internal/companydir"
)

const dateLayout = "2006-01-02"

func (a *App) createCompany(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-company", flag.ContinueOnError)
	fs.SetOutput(a.out)
	name := fs.String("name", "", "company name")
	start := fs.String("start", "", "term start date (YYYY-MM-DD)")
	end := fs.String("end", "", "term end date (YYYY-MM-DD)")
	notice := fs.String("notice", "", "notice date (YYYY-MM-DD, default one month before end)")
	maxUsers := fs.Int("max-users", 0, "active account capacity (0 = unlimited)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" {
		return errors.New("create-company: -name is required")
	}
	startDate, err := time.Parse(dateLayout, *start)
	if err != nil {
		return fmt.Errorf("create-company: bad -start: %w", err)
	}
	endDate, err := time.Parse(dateLayout, *end)
	if err != nil {
		return fmt.Errorf("create-company: bad -end: %w", err)
	}

	noticeDate := endDate.AddDate(0, -1, 0)
	if *notice != "" {
		noticeDate, err = time.Parse(dateLayout, *notice)
		if err != nil {
			return fmt.Errorf("create-company: bad -notice: %w", err)
		}
	}

	company, err := a.companies.Create(ctx, companydir.CompanyInput{
		Name:       *name,
		StartDate:  startDate,
		EndDate:    endDate,
		NoticeDate: noticeDate,
		MaxUsers:   *maxUsers,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Company created: %s (%s)\n", company.ID, company.Name)
	return nil
}

func (a *App) setTerm(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set-term", flag.ContinueOnError)
	fs.SetOutput(a.out)
	companyID := fs.String("company", "", "company id")
	fs.String("start", "", "new term start date (YYYY-MM-DD)")
	fs.String("end", "", "new term end date (YYYY-MM-DD)")
	fs.String("notice", "", "new notice date (YYYY-MM-DD)")
	fs.Int("max-users", 0, "new active account capacity")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *companyID == "" {
		return errors.New("set-term: -company is required")
	}

	// Only flags the operator actually passed end up in the update, so the
	// directory leaves the rest of the term untouched.
	var upd companydir.CompanyUpdate
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		if parseErr != nil {
			return
		}
		switch f.Name {
		case "start":
			parseErr = setDate(&upd.StartDate, f.Value.String(), "-start")
		case "end":
			parseErr = setDate(&upd.EndDate, f.Value.String(), "-end")
		case "notice":
			parseErr = setDate(&upd.NoticeDate, f.Value.String(), "-notice")
		case "max-users":
			n, err := strconv.Atoi(f.Value.String())
			if err != nil {
				parseErr = fmt.Errorf("set-term: bad -max-users: %w", err)
				return
			}
			upd.MaxUsers = &n
		}
	})
	if parseErr != nil {
		return parseErr
	}
	if upd.StartDate == nil && upd.EndDate == nil && upd.NoticeDate == nil && upd.MaxUsers == nil {
		return errors.New("set-term: nothing to update")
	}

	company, err := a.companies.Update(ctx, *companyID, upd)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Term updated: %s runs %s to %s\n",
		company.ID, company.StartDate.Format(dateLayout), company.EndDate.Format(dateLayout))
	return nil
}

func setDate(dst **time.Time, raw string, flagName string) error {
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("set-term: bad %s: %w", flagName, err)
	}
	*dst = &parsed
	return nil
}
