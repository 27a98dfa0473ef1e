package ports

import "context"

type CheckoutRequest struct {
	ShopID    string `json:"shopId"`
	ProductID string `json:"productId"`
	VariantID int64  `json:"variantId"`
	Quantity  int64  `json:"quantity"`
	Country   string `json:"country"` // ISO 3166-1 alpha-2 shipping country
}

// CheckoutService creates a payment-processor session and hands back the
// redirect URL. No local order record is written; order state lives in the
// processor until the webhook path reconciles it.
type CheckoutService interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (url string, err error)
}
