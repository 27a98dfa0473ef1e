package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lowtide-records/label-api/internal/models"
	"github.com/lowtide-records/label-api/internal/ports"
	"go.uber.org/zap"
)

type ShopHandler struct {
	catalog  ports.CatalogService
	checkout ports.CheckoutService
	enabled  bool
	log      *zap.SugaredLogger
}

func NewShopHandler(catalog ports.CatalogService, checkout ports.CheckoutService, enabled bool, log *zap.SugaredLogger) *ShopHandler {
	return &ShopHandler{
		catalog:  catalog,
		checkout: checkout,
		enabled:  enabled,
		log:      log,
	}
}

type productListResponse struct {
	ShopID   string              `json:"shopId"`
	Products *models.ProductPage `json:"products"`
}

// GET /api/printify/products?shopId=&page=&limit=
//
// The route exists regardless of the flag; reachability is what the flag
// controls. Disabled shop answers 404 before any upstream call.
func (h *ShopHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		writeNotFound(w)
		return
	}

	shopID, err := h.resolveShopID(r)
	if err != nil {
		writeAdapterError(w, h.log, "printify.shops", err)
		return
	}

	page := parsePage(r.URL.Query().Get("page"))
	limit := parseLimit(r.URL.Query().Get("limit"))

	products, err := h.catalog.ListProducts(r.Context(), shopID, page, limit)
	if err != nil {
		writeAdapterError(w, h.log, "printify.list", err)
		return
	}

	setCache(w, contentMaxAge, staleRevalidate)
	writeJSON(w, http.StatusOK, productListResponse{ShopID: shopID, Products: products})
}

type productResponse struct {
	ShopID  string          `json:"shopId"`
	Product *models.Product `json:"product"`
}

// GET /api/printify/products/{productId}?shopId=
func (h *ShopHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		writeNotFound(w)
		return
	}

	productID := chi.URLParam(r, "productId")

	shopID, err := h.resolveShopID(r)
	if err != nil {
		writeAdapterError(w, h.log, "printify.shops", err)
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), shopID, productID)
	if err != nil {
		writeAdapterError(w, h.log, "printify.get", err)
		return
	}

	setCache(w, contentMaxAge, staleRevalidate)
	writeJSON(w, http.StatusOK, productResponse{ShopID: shopID, Product: product})
}

// POST /api/checkout/session
func (h *ShopHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		writeNotFound(w)
		return
	}

	var req ports.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if req.ProductID == "" || req.VariantID == 0 {
		writeError(w, http.StatusBadRequest, "productId and variantId are required", nil)
		return
	}

	url, err := h.checkout.CreateSession(r.Context(), req)
	if err != nil {
		if errors.Is(err, ports.ErrVariantNotFound) {
			writeError(w, http.StatusBadRequest, "unknown variant", nil)
			return
		}
		writeAdapterError(w, h.log, "checkout.create", err)
		return
	}

	h.log.Infow("checkout session created", "product", req.ProductID, "variant", req.VariantID)
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *ShopHandler) resolveShopID(r *http.Request) (string, error) {
	if shopID := r.URL.Query().Get("shopId"); shopID != "" {
		return shopID, nil
	}
	return h.catalog.DefaultShopID(r.Context())
}
