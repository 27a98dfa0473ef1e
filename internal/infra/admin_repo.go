package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lowtide-records/label-api/internal/ports"
)

type PostgresAdminRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresAdminRepo(pool *pgxpool.Pool) ports.AdminRepository {
	return &PostgresAdminRepo{pool: pool}
}

func (r *PostgresAdminRepo) GetAdminHash(ctx context.Context, email string) (string, error) {
	var hash string
	err := r.pool.QueryRow(ctx,
		`SELECT password_hash FROM admins WHERE email = $1`,
		email,
	).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get admin hash: %w", err)
	}
	return hash, nil
}

func (r *PostgresAdminRepo) PromoteAdmin(ctx context.Context, email, passwordHash string) error {
	query := `
		INSERT INTO admins (email, password_hash, promoted_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash, promoted_at = NOW()
	`
	_, err := r.pool.Exec(ctx, query, email, passwordHash)
	if err != nil {
		return fmt.Errorf("promote admin: %w", err)
	}
	return nil
}
