// Package models defines the persistent and wire-facing types of the account
// authority: user accounts, company records served by the directory, and
// custom weighting profiles.
package models

import (
	"strings"
	"time"
)

// Roles form a closed set. Anything else supplied on account creation is
// silently clamped to RoleUser.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// Account statuses. The column is free-form text so new states can be added
// without a migration; only StatusActive authenticates.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Well-known login provenance tags. The set is open: any non-empty tag a
// caller records is kept.
const (
	LoginTypePassword = "password"
	LoginTypeSSO      = "sso"
)

// Account is the stored shape of a user record, hash material included.
// Services hand callers the PublicAccount projection instead.
type Account struct {
	ID           string
	Email        string
	PasswordHash *string // nil when no password is set (SSO-only accounts)
	Role         string
	Status       string
	CompanyID    *string // nil for company-less/system accounts

	TosAcceptedAt   *time.Time
	NoticeEmailSent bool

	// LoginTypes keeps the first-seen order and never holds duplicates.
	LoginTypes []string

	// A temporary credential is usable only while both fields are set and
	// the current time is before the expiry.
	TempPasswordHash      *string
	TempPasswordExpiresAt *time.Time

	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicAccount is what the authority returns to callers: the account minus
// all hash material.
type PublicAccount struct {
	ID              string
	Email           string
	Role            string
	Status          string
	CompanyID       *string
	TosAcceptedAt   *time.Time
	NoticeEmailSent bool
	LoginTypes      []string
	CreatedBy       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Public returns the caller-safe projection of the account.
func (a *Account) Public() *PublicAccount {
	return &PublicAccount{
		ID:              a.ID,
		Email:           a.Email,
		Role:            a.Role,
		Status:          a.Status,
		CompanyID:       a.CompanyID,
		TosAcceptedAt:   a.TosAcceptedAt,
		NoticeEmailSent: a.NoticeEmailSent,
		LoginTypes:      append([]string(nil), a.LoginTypes...),
		CreatedBy:       a.CreatedBy,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// HasLoginType reports whether tag is already part of the provenance set.
func (a *Account) HasLoginType(tag string) bool {
	for _, t := range a.LoginTypes {
		if t == tag {
			return true
		}
	}
	return false
}

// TempCredentialUsable reports whether a temporary credential could still be
// verified at the given instant. A hash without an expiry (or vice versa) is
// never usable.
func (a *Account) TempCredentialUsable(now time.Time) bool {
	if a.TempPasswordHash == nil || a.TempPasswordExpiresAt == nil {
		return false
	}
	return now.Before(*a.TempPasswordExpiresAt)
}

// NormalizeEmail lowercases an identifier the way it is stored and compared.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ClampRole maps arbitrary input onto the closed role set, downgrading
// anything unrecognized to RoleUser.
func ClampRole(role string) string {
	switch role {
	case RoleUser, RoleAdmin, RoleSuperadmin:
		return role
	default:
		return RoleUser
	}
}
