package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lowtide-records/label-api/internal/models"
	"github.com/lowtide-records/label-api/internal/ports"
	"golang.org/x/sync/errgroup"
)

type PostgresContentRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresContentRepo(pool *pgxpool.Pool) ports.ContentRepository {
	return &PostgresContentRepo{pool: pool}
}

const releaseColumns = `
	id, slug, title, content, COALESCE(artist_name, ''),
	cover_url, preview_url, release_type,
	spotify_url, apple_music_url, youtube_url, soundcloud_url, bandcamp_url,
	categories, published_at, created_at, updated_at
`

func scanRelease(row pgx.Row) (*models.Release, error) {
	var rel models.Release
	err := row.Scan(
		&rel.ID,
		&rel.Slug,
		&rel.Title,
		&rel.Content,
		&rel.ArtistName,
		&rel.CoverURL,
		&rel.PreviewURL,
		&rel.ReleaseType,
		&rel.SpotifyURL,
		&rel.AppleMusicURL,
		&rel.YoutubeURL,
		&rel.SoundcloudURL,
		&rel.BandcampURL,
		&rel.Categories,
		&rel.PublishedAt,
		&rel.CreatedAt,
		&rel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *PostgresContentRepo) GetReleaseBySlug(ctx context.Context, slug string) (*models.Release, error) {
	query := `
		SELECT ` + releaseColumns + `
		FROM releases
		WHERE slug = $1
	`
	rel, err := scanRelease(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get release by slug: %w", err)
	}
	return rel, nil
}

func (r *PostgresContentRepo) GetNewsBySlug(ctx context.Context, slug string) (*models.News, error) {
	query := `
		SELECT id, slug, title, content, published_at, created_at
		FROM news
		WHERE slug = $1
	`

	var n models.News

	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&n.ID,
		&n.Slug,
		&n.Title,
		&n.Content,
		&n.PublishedAt,
		&n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get news by slug: %w", err)
	}

	return &n, nil
}

const artistColumns = `
	id, slug, name, image_url,
	instagram_url, spotify_url, apple_music_url, youtube_url, website_url,
	created_at, updated_at
`

func scanArtist(row pgx.Row) (*models.Artist, error) {
	var a models.Artist
	err := row.Scan(
		&a.ID,
		&a.Slug,
		&a.Name,
		&a.ImageURL,
		&a.InstagramURL,
		&a.SpotifyURL,
		&a.AppleMusicURL,
		&a.YoutubeURL,
		&a.WebsiteURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PostgresContentRepo) GetArtistBySlug(ctx context.Context, slug string) (*models.Artist, error) {
	query := `
		SELECT ` + artistColumns + `
		FROM artists
		WHERE slug = $1
	`
	a, err := scanArtist(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get artist by slug: %w", err)
	}
	return a, nil
}

// Two named list variants, selected up front. Browsing orders by recency;
// searching orders alphabetically — relevance-like ordering wins over
// recency once the visitor is looking for a name.
const (
	artistsRecentQuery = `
		SELECT ` + artistColumns + `
		FROM artists
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	artistsRecentCount = `SELECT COUNT(*) FROM artists`

	artistsSearchQuery = `
		SELECT ` + artistColumns + `
		FROM artists
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`
	artistsSearchCount = `SELECT COUNT(*) FROM artists WHERE name ILIKE '%' || $1 || '%'`
)

func (r *PostgresContentRepo) ListArtists(ctx context.Context, q ports.ArtistQuery) ([]models.Artist, int, error) {
	offset := (q.Page - 1) * q.Limit

	var (
		items []models.Artist
		total int
	)

	// Page and count are independent; run them jointly.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var (
			rows pgx.Rows
			err  error
		)
		if q.Search != "" {
			rows, err = r.pool.Query(gctx, artistsSearchQuery, q.Search, q.Limit, offset)
		} else {
			rows, err = r.pool.Query(gctx, artistsRecentQuery, q.Limit, offset)
		}
		if err != nil {
			return fmt.Errorf("list artists: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			a, err := scanArtist(rows)
			if err != nil {
				return fmt.Errorf("scan artist: %w", err)
			}
			items = append(items, *a)
		}
		return rows.Err()
	})

	g.Go(func() error {
		var err error
		if q.Search != "" {
			err = r.pool.QueryRow(gctx, artistsSearchCount, q.Search).Scan(&total)
		} else {
			err = r.pool.QueryRow(gctx, artistsRecentCount).Scan(&total)
		}
		if err != nil {
			return fmt.Errorf("count artists: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ListReleasesByArtist matches artist_name exactly (case-insensitive) OR
// the title by substring. The substring arm catches releases where the
// artist was left embedded in the title instead of the artist_name field.
func (r *PostgresContentRepo) ListReleasesByArtist(ctx context.Context, artist string) ([]models.Release, error) {
	query := `
		SELECT ` + releaseColumns + `
		FROM releases
		WHERE LOWER(artist_name) = LOWER($1)
		   OR title ILIKE '%' || $1 || '%'
		ORDER BY published_at DESC NULLS LAST
	`

	rows, err := r.pool.Query(ctx, query, artist)
	if err != nil {
		return nil, fmt.Errorf("list releases by artist: %w", err)
	}
	defer rows.Close()

	var out []models.Release
	for rows.Next() {
		rel, err := scanRelease(rows)
		if err != nil {
			return nil, fmt.Errorf("scan release: %w", err)
		}
		out = append(out, *rel)
	}
	return out, rows.Err()
}

func (r *PostgresContentRepo) ListCategories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT UNNEST(categories)
		FROM releases
		ORDER BY 1 ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresContentRepo) ListReleasesMissingArtist(ctx context.Context) ([]models.Release, error) {
	query := `
		SELECT ` + releaseColumns + `
		FROM releases
		WHERE artist_name IS NULL OR artist_name = ''
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list releases missing artist: %w", err)
	}
	defer rows.Close()

	var out []models.Release
	for rows.Next() {
		rel, err := scanRelease(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rel)
	}
	return out, rows.Err()
}

func (r *PostgresContentRepo) SetReleaseArtistName(ctx context.Context, id int64, name string) error {
	query := `
		UPDATE releases
		SET artist_name = $1, updated_at = NOW()
		WHERE id = $2
	`
	_, err := r.pool.Exec(ctx, query, name, id)
	return err
}
