package infra

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/lowtide-records/label-api/internal/models"
	"github.com/lowtide-records/label-api/internal/ports"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

type StripeCheckout struct {
	api        *client.API
	catalog    ports.CatalogService
	successURL string
	cancelURL  string
	configured bool
}

func NewStripeCheckout(secretKey string, catalog ports.CatalogService, successURL, cancelURL string) *StripeCheckout {
	sc := &StripeCheckout{
		catalog:    catalog,
		successURL: successURL,
		cancelURL:  cancelURL,
		configured: secretKey != "",
	}
	if sc.configured {
		sc.api = &client.API{}
		sc.api.Init(secretKey, nil)
	}
	return sc
}

var _ ports.CheckoutService = (*StripeCheckout)(nil)

// CreateSession resolves the product through the catalog, prices the
// requested variant, and opens a payment-mode checkout session. The
// returned URL is handed to the client for a full-page redirect; no
// order row is written here.
func (s *StripeCheckout) CreateSession(ctx context.Context, req ports.CheckoutRequest) (string, error) {
	if !s.configured {
		return "", fmt.Errorf("stripe: %w", ports.ErrNotConfigured)
	}

	shopID := req.ShopID
	if shopID == "" {
		var err error
		shopID, err = s.catalog.DefaultShopID(ctx)
		if err != nil {
			return "", err
		}
	}

	product, err := s.catalog.GetProduct(ctx, shopID, req.ProductID)
	if err != nil {
		return "", err
	}

	variant, err := findVariant(product, req.VariantID)
	if err != nil {
		return "", err
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	name := product.Title
	if variant.Title != "" {
		name = product.Title + " — " + variant.Title
	}

	productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(name),
	}
	if img := defaultImage(product); img != "" {
		productData.Images = stripe.StringSlice([]string{img})
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount:  stripe.Int64(variant.Price),
				ProductData: productData,
			},
			Quantity: stripe.Int64(quantity),
		}},
		SuccessURL:        stripe.String(s.successURL),
		CancelURL:         stripe.String(s.cancelURL),
		ClientReferenceID: stripe.String(uuid.NewString()),
	}
	if req.Country != "" {
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice([]string{req.Country}),
		}
	}
	params.Context = ctx
	params.AddMetadata("shop_id", shopID)
	params.AddMetadata("product_id", req.ProductID)
	params.AddMetadata("variant_id", strconv.FormatInt(req.VariantID, 10))
	params.AddMetadata("quantity", strconv.FormatInt(quantity, 10))

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return "", &ports.UpstreamError{
				Service: "stripe",
				Status:  stripeErr.HTTPStatusCode,
				Detail:  stripeErr.Msg,
			}
		}
		return "", fmt.Errorf("stripe create session: %w", err)
	}

	return sess.URL, nil
}

func findVariant(p *models.Product, variantID int64) (*models.ProductVariant, error) {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i], nil
		}
	}
	return nil, ports.ErrVariantNotFound
}

func defaultImage(p *models.Product) string {
	for _, img := range p.Images {
		if img.IsDefault {
			return img.Src
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].Src
	}
	return ""
}
