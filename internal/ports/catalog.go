package ports

import (
	"context"

	"github.com/lowtide-records/label-api/internal/models"
)

// CatalogService wraps the print-on-demand product catalog. All upstream
// failures surface as *UpstreamError; a missing API token surfaces as
// ErrNotConfigured.
type CatalogService interface {
	// DefaultShopID returns the configured shop when one is set and only
	// falls back to resolving the first shop over the wire.
	DefaultShopID(ctx context.Context) (string, error)
	GetProduct(ctx context.Context, shopID, productID string) (*models.Product, error)
	ListProducts(ctx context.Context, shopID string, page, limit int) (*models.ProductPage, error)
}
