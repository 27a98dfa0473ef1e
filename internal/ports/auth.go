package ports

import "context"

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(ctx context.Context, token string) (bool, error)
}

// AdminRepository backs the login path and the one-shot promotion script.
type AdminRepository interface {
	// GetAdminHash returns ("", nil) when no admin row exists for the email.
	GetAdminHash(ctx context.Context, email string) (string, error)
	PromoteAdmin(ctx context.Context, email, passwordHash string) error
}
