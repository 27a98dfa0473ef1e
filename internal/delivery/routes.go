package delivery

import (
	"github.com/go-chi/chi/v5"
	"github.com/lowtide-records/label-api/internal/ports"
)

func RegisterRoutes(
	r chi.Router,
	auth ports.AuthService,
	hAuth *AuthHandler,
	hContent *ContentHandler,
	hShop *ShopHandler,
	hAdmin *AdminHandler,
) {
	// public content reads
	r.Get("/api/releases/{slug}", hContent.GetRelease)
	r.Get("/api/news/{slug}", hContent.GetNews)
	r.Get("/api/artists/{slug}", hContent.GetArtist)
	r.Get("/api/artists", hContent.ListArtists)
	r.Get("/api/posts/by-artist", hContent.PostsByArtist)

	// shop
	r.Get("/api/printify/products", hShop.ListProducts)
	r.Get("/api/printify/products/{productId}", hShop.GetProduct)
	r.Post("/api/checkout/session", hShop.CreateCheckoutSession)

	// admin
	r.Post("/api/login", hAuth.Login)
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(auth))
		r.Get("/api/admin/newsletter/stats", hAdmin.NewsletterStats)
		r.Get("/api/admin/releases/categories", hAdmin.ReleaseCategories)
	})
}
