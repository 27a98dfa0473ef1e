package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lowtide-records/label-api/internal/config"
	"github.com/lowtide-records/label-api/internal/infra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Upserts the admin row the login endpoint checks against. Re-running
// with the same email just rotates the password.
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: promote-admin <email> <password>")
		os.Exit(2)
	}
	email, password := os.Args[1], os.Args[2]

	zl, _ := zap.NewProduction()
	defer zl.Sync()
	log := zl.Sugar()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()

	pool, err := infra.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalw("cannot connect pgxpool", "err", err)
	}
	defer pool.Close()

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctxPing); err != nil {
		log.Fatalw("postgres ping failed", "err", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalw("hash password failed", "err", err)
	}

	repo := infra.NewPostgresAdminRepo(pool)
	if err := repo.PromoteAdmin(ctx, email, string(hash)); err != nil {
		log.Fatalw("promote failed", "email", email, "err", err)
	}

	log.Infow("admin promoted", "email", email)
}
