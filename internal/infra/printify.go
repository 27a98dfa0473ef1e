package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/lowtide-records/label-api/internal/models"
	"github.com/lowtide-records/label-api/internal/ports"
)

const printifyBaseURL = "https://api.printify.com/v1"

type PrintifyClient struct {
	apiToken      string
	defaultShopID string
	baseURL       string
	client        *http.Client
}

func NewPrintifyClient(apiToken, defaultShopID string) *PrintifyClient {
	return &PrintifyClient{
		apiToken:      apiToken,
		defaultShopID: defaultShopID,
		baseURL:       printifyBaseURL,
		client:        &http.Client{},
	}
}

// NewPrintifyClientWithBaseURL exists for tests pointed at a local server.
func NewPrintifyClientWithBaseURL(apiToken, defaultShopID, baseURL string) *PrintifyClient {
	c := NewPrintifyClient(apiToken, defaultShopID)
	c.baseURL = baseURL
	return c
}

var _ ports.CatalogService = (*PrintifyClient)(nil)

type printifyShop struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func (c *PrintifyClient) DefaultShopID(ctx context.Context) (string, error) {
	if c.defaultShopID != "" {
		return c.defaultShopID, nil
	}

	var shops []printifyShop
	if err := c.get(ctx, "/shops.json", &shops); err != nil {
		return "", err
	}
	if len(shops) == 0 {
		return "", &ports.UpstreamError{Service: "printify", Status: http.StatusNotFound, Detail: "no shops on account"}
	}
	return fmt.Sprintf("%d", shops[0].ID), nil
}

func (c *PrintifyClient) GetProduct(ctx context.Context, shopID, productID string) (*models.Product, error) {
	var p models.Product
	path := fmt.Sprintf("/shops/%s/products/%s.json", shopID, productID)
	if err := c.get(ctx, path, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *PrintifyClient) ListProducts(ctx context.Context, shopID string, page, limit int) (*models.ProductPage, error) {
	var pp models.ProductPage
	path := fmt.Sprintf("/shops/%s/products.json?page=%d&limit=%d", shopID, page, limit)
	if err := c.get(ctx, path, &pp); err != nil {
		return nil, err
	}
	return &pp, nil
}

func (c *PrintifyClient) get(ctx context.Context, path string, out any) error {
	if c.apiToken == "" {
		return fmt.Errorf("printify: %w", ports.ErrNotConfigured)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("printify request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Surface whatever structure Printify answered with; fall back
		// to the raw body when it is not JSON.
		var detail any
		if err := json.Unmarshal(raw, &detail); err != nil {
			detail = string(raw)
		}
		return &ports.UpstreamError{Service: "printify", Status: resp.StatusCode, Detail: detail}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("printify decode: %w", err)
	}
	return nil
}
