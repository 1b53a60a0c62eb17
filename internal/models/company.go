package models

import "time"

// Company is a tenant record as served by the external company directory.
// It is never persisted by this module.
type Company struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	// NoticeDate marks when expiry warnings should begin, typically one
	// subscription unit before EndDate.
	NoticeDate time.Time
	// MaxUsers is the advisory active-account capacity; not enforced here.
	MaxUsers int
}

// TermValid reports whether the subscription window is still open at the
// given instant. An account under a company with an expired term must not
// authenticate.
func (c *Company) TermValid(now time.Time) bool {
	return now.Before(c.EndDate)
}

// NoticeDue reports whether expiry warnings should be going out.
func (c *Company) NoticeDue(now time.Time) bool {
	return !now.Before(c.NoticeDate)
}
