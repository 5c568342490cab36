package ports

import "context"

// AuthService issues bearer tokens for admin console operators.
type AuthService interface {
	// Login verifies the credentials and returns a signed bearer token, or
	// domain.ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, username, password string) (string, error)
}
