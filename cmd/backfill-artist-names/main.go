package main

import (
	"context"
	"time"

	"github.com/lowtide-records/label-api/internal/config"
	"github.com/lowtide-records/label-api/internal/domain"
	"github.com/lowtide-records/label-api/internal/infra"
	"go.uber.org/zap"
)

// One-shot backfill for releases whose artist_name was never filled in.
// Derives the name from the title, row by row. Rows that already carry a
// name are never selected, so re-running after a crash is safe; there is
// no batch transaction and none is needed for a supervised run.
func main() {
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

	repo := infra.NewPostgresContentRepo(pool)

	releases, err := repo.ListReleasesMissingArtist(ctx)
	if err != nil {
		log.Fatalw("list releases failed", "err", err)
	}

	var updated, skipped int
	for _, rel := range releases {
		name := domain.GuessArtistName(rel.Title)
		if name == "" {
			log.Warnw("no artist derivable", "id", rel.ID, "title", rel.Title)
			skipped++
			continue
		}

		if err := repo.SetReleaseArtistName(ctx, rel.ID, name); err != nil {
			log.Errorw("update failed", "id", rel.ID, "err", err)
			skipped++
			continue
		}

		log.Infow("backfilled", "id", rel.ID, "title", rel.Title, "artist", name)
		updated++
	}

	log.Infow("backfill done", "updated", updated, "skipped", skipped)
}
