package ports

import (
	"context"

	"github.com/lowtide-records/label-api/internal/models"
)

type NewsletterRepository interface {
	Stats(ctx context.Context) (*models.NewsletterStats, error)
}
