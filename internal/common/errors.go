// Package common defines shared sentinel errors used across TaskKeeper
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Account directory errors.
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
