package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/lowtide-records/label-api/internal/config"
	"github.com/lowtide-records/label-api/internal/delivery"
	"github.com/lowtide-records/label-api/internal/domain"
	"github.com/lowtide-records/label-api/internal/infra"
	"go.uber.org/zap"
)

func main() {

	// LOGGER
	zl, _ := zap.NewProduction()
	defer zl.Sync()
	log := zl.Sugar()

	// CONFIG
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	if cfg.AuthSecret == "" {
		log.Fatal("AUTH_SECRET is not set")
	}

	// POSTGRES
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

	// REPOS
	contentRepo := infra.NewPostgresContentRepo(pool)
	newsletterRepo := infra.NewPostgresNewsletterRepo(pool)
	adminRepo := infra.NewPostgresAdminRepo(pool)

	// COMMERCE
	catalog := infra.NewPrintifyClient(cfg.PrintifyAPIToken, cfg.PrintifyShopID)
	checkout := infra.NewStripeCheckout(cfg.StripeSecretKey, catalog, cfg.CheckoutSuccess, cfg.CheckoutCancel)

	// SERVICES
	authService := domain.NewAuthService(adminRepo, cfg.AuthSecret)

	// HANDLERS
	hAuth := delivery.NewAuthHandler(authService, log)
	hContent := delivery.NewContentHandler(contentRepo, cfg.ImageBaseURL, log)
	hShop := delivery.NewShopHandler(catalog, checkout, cfg.ShopEnabled, log)
	hAdmin := delivery.NewAdminHandler(newsletterRepo, contentRepo, log)

	// ROUTER
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	delivery.RegisterRoutes(r, authService, hAuth, hContent, hShop, hAdmin)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	log.Infow("server started", "port", cfg.Port, "shopEnabled", cfg.ShopEnabled)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Errorw("server crashed", "err", err)
	}
}
