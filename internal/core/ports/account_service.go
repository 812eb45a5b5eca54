package ports

import "context"

// AccountService implements signup and login for one role namespace. The
// router wires two instances: one over the admins collection signing with the
// admin secret, one over the users collection signing with the user secret.
type AccountService interface {
	// Signup creates the account and returns a signed bearer token. Returns
	// domain.ErrAccountExists when the username is taken.
	Signup(ctx context.Context, username, password string) (string, error)

	// Login verifies the credentials and returns a fresh token. Returns
	// domain.ErrInvalidCredentials on any mismatch; unknown usernames are
	// indistinguishable from wrong passwords.
	Login(ctx context.Context, username, password string) (string, error)
}
