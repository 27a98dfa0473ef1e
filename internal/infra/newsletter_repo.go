package infra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lowtide-records/label-api/internal/models"
	"github.com/lowtide-records/label-api/internal/ports"
	"golang.org/x/sync/errgroup"
)

type PostgresNewsletterRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresNewsletterRepo(pool *pgxpool.Pool) ports.NewsletterRepository {
	return &PostgresNewsletterRepo{pool: pool}
}

// Stats fans the four counts out concurrently; they are independent reads.
func (r *PostgresNewsletterRepo) Stats(ctx context.Context) (*models.NewsletterStats, error) {
	var stats models.NewsletterStats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.pool.QueryRow(gctx,
			`SELECT COUNT(*) FROM subscribers`,
		).Scan(&stats.Total)
	})
	g.Go(func() error {
		return r.count(gctx, models.SubscriberActive, &stats.Active)
	})
	g.Go(func() error {
		return r.count(gctx, models.SubscriberPending, &stats.Pending)
	})
	g.Go(func() error {
		return r.count(gctx, models.SubscriberUnsubscribed, &stats.Unsubscribed)
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("newsletter stats: %w", err)
	}
	return &stats, nil
}

func (r *PostgresNewsletterRepo) count(ctx context.Context, status string, dst *int) error {
	return r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM subscribers WHERE status = $1`,
		status,
	).Scan(dst)
}
