// Package common defines the sentinel errors shared by the account authority
// and its adapters. Callers should match these values with errors.Is; every
// failure is terminal for the invoked operation, nothing here is retried.
package common

import "errors"

var (
	// Account lookup / state errors.
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountDeactivated = errors.New("account deactivated")

	// ErrTermExpired means the account's company subscription window has
	// lapsed. Reported before any credential check so an expired tenant is
	// never mistaken for a bad password.
	ErrTermExpired = errors.New("company term expired")

	// ErrInvalidCredential covers an empty secret, a missing stored hash and
	// a hash mismatch. The cases are deliberately indistinguishable to the
	// caller to avoid account enumeration; logs may differentiate.
	ErrInvalidCredential = errors.New("invalid credential")

	// Company directory errors.
	ErrCompanyLookup   = errors.New("company lookup failed")
	ErrCompanyNotFound = errors.New("company not found")

	// Storage errors.
	ErrStorage               = errors.New("storage failure")
	ErrWeightProfileNotFound = errors.New("weight profile not found")
)
