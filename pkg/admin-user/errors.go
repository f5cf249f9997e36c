package adminuser

import "errors"

// Error taxonomy of the account guard. Route handlers translate these into
// HTTP responses; anything else coming out of the guard is an infrastructure
// error (storage, token signing) and maps to a 500.
var (
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrAccountLocked      = errors.New("account locked")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWeakPassword       = errors.New("password does not fulfill the password policy")
)
