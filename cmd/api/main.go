package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/stockless/stockless-backend/api/routes"
	authsvc "github.com/stockless/stockless-backend/internal/auth"
	cartsvc "github.com/stockless/stockless-backend/internal/cart"
	catalogsvc "github.com/stockless/stockless-backend/internal/catalog"
	checkoutsvc "github.com/stockless/stockless-backend/internal/checkout"
	mediasvc "github.com/stockless/stockless-backend/internal/media"
	profilesvc "github.com/stockless/stockless-backend/internal/profiles"
	requestsvc "github.com/stockless/stockless-backend/internal/requests"
	"github.com/stockless/stockless-backend/pkg/auth/session"
	"github.com/stockless/stockless-backend/pkg/config"
	"github.com/stockless/stockless-backend/pkg/db"
	"github.com/stockless/stockless-backend/pkg/logger"
	"github.com/stockless/stockless-backend/pkg/metrics"
	"github.com/stockless/stockless-backend/pkg/migrate"
	"github.com/stockless/stockless-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	userRepo := authsvc.NewUserRepo(dbClient.DB())
	profileRepo := profilesvc.NewRepository(dbClient.DB())
	mediaRepo := mediasvc.NewRepository(dbClient.DB())
	cartRepo := cartsvc.NewRepo(dbClient.DB())
	requestRepo := requestsvc.NewRepository(dbClient.DB())

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		UserRepo:       userRepo,
		ProfileLoader:  profileRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	exitOn(logg, "auth service", err)

	registerService, err := authsvc.NewRegisterService(authsvc.RegisterServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	exitOn(logg, "register service", err)

	gateService, err := authsvc.NewGateService(profileRepo)
	exitOn(logg, "gate service", err)

	catalogService, err := catalogsvc.NewService(profileRepo, mediaRepo)
	exitOn(logg, "catalog service", err)

	profileService, err := profilesvc.NewService(profileRepo, dbClient, mediaRepo)
	exitOn(logg, "profile service", err)

	mediaService, err := mediasvc.NewService(mediaRepo, profileRepo)
	exitOn(logg, "media service", err)

	cartService, err := cartsvc.NewService(cartRepo, mediaRepo, profileRepo, cfg.Pricing.DefaultUnitPriceCents)
	exitOn(logg, "cart service", err)

	quoteService, err := checkoutsvc.NewQuoteService(mediaRepo, profileRepo, cfg.Pricing.DefaultUnitPriceCents)
	exitOn(logg, "quote service", err)

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Cart:                  cartRepo,
		Media:                 mediaRepo,
		Profiles:              profileRepo,
		Requests:              requestRepo,
		DefaultUnitPriceCents: cfg.Pricing.DefaultUnitPriceCents,
	})
	exitOn(logg, "checkout service", err)

	requestService, err := requestsvc.NewService(requestRepo, profileRepo)
	exitOn(logg, "request service", err)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:          cfg,
			Logger:          logg,
			DB:              dbClient,
			Redis:           redisClient,
			SessionManager:  sessionManager,
			HTTPMetrics:     metrics.NewHTTPMetrics(),
			GateService:     gateService,
			AuthService:     authService,
			RegisterService: registerService,
			CatalogService:  catalogService,
			ProfileService:  profileService,
			MediaService:    mediaService,
			CartService:     cartService,
			QuoteService:    quoteService,
			CheckoutService: checkoutService,
			RequestService:  requestService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func exitOn(logg *logger.Logger, what string, err error) {
	if err == nil {
		return
	}
	logg.Error(context.Background(), "failed to create "+what, err)
	os.Exit(1)
}
