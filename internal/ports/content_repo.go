package ports

import (
	"context"

	"github.com/lowtide-records/label-api/internal/models"
)

// ArtistQuery selects one of two named list variants up front: a browse
// (newest first) or a search (case-insensitive substring on name,
// alphabetical order). Page and Limit are already normalized by the caller.
type ArtistQuery struct {
	Search string
	Page   int
	Limit  int
}

type ContentRepository interface {
	// Get-by-slug lookups return (nil, nil) when no row matches.
	GetReleaseBySlug(ctx context.Context, slug string) (*models.Release, error)
	GetNewsBySlug(ctx context.Context, slug string) (*models.News, error)
	GetArtistBySlug(ctx context.Context, slug string) (*models.Artist, error)

	// ListArtists returns one page plus the total match count.
	ListArtists(ctx context.Context, q ArtistQuery) ([]models.Artist, int, error)

	// ListReleasesByArtist matches artist_name exactly (case-insensitive)
	// OR the title by substring, newest first.
	ListReleasesByArtist(ctx context.Context, artist string) ([]models.Release, error)

	// ListCategories returns the sorted distinct category tags across
	// all releases.
	ListCategories(ctx context.Context) ([]string, error)

	// Backfill support, used by the maintenance script only.
	ListReleasesMissingArtist(ctx context.Context) ([]models.Release, error)
	SetReleaseArtistName(ctx context.Context, id int64, name string) error
}
