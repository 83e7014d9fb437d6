package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockless/stockless-backend/api/controllers"
	"github.com/stockless/stockless-backend/api/middleware"
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
	"github.com/stockless/stockless-backend/pkg/redis"
)

// Deps bundles everything the router mounts. Metrics are optional: without
// them the scrape endpoint is simply not registered.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          *redis.Client
	SessionManager session.AccessSessionChecker
	HTTPMetrics    *metrics.HTTPMetrics

	GateService     *authsvc.GateService
	AuthService     authsvc.Service
	RegisterService authsvc.RegisterService
	CatalogService  catalogsvc.Service
	ProfileService  profilesvc.Service
	MediaService    mediasvc.Service
	CartService     cartsvc.Service
	QuoteService    checkoutsvc.QuoteService
	CheckoutService checkoutsvc.Service
	RequestService  requestsvc.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(deps.HTTPMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	authed := middleware.Auth(cfg.JWT, deps.SessionManager, logg)
	maybeAuthed := middleware.OptionalAuth(cfg.JWT, deps.SessionManager, logg)
	creatorOnly := middleware.RequireRole("creator", deps.GateService, logg)
	buyerOnly := middleware.RequireRole("buyer", deps.GateService, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.HTTPMetrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.HTTPMetrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).
				Post("/login", controllers.AuthLogin(deps.AuthService, logg))
			r.With(middleware.AuthRateLimit(registerPolicy, deps.Redis, logg)).
				Post("/register", controllers.AuthRegister(deps.RegisterService, logg))
			r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
			r.With(authed).Post("/logout", controllers.AuthLogout(deps.AuthService, logg))
		})

		r.With(maybeAuthed).Get("/gate", controllers.Gate(deps.GateService, logg))

		r.Route("/creators", func(r chi.Router) {
			r.Get("/", controllers.CatalogListCreators(deps.CatalogService, logg))
			r.Get("/{creatorId}", controllers.CatalogGetCreator(deps.CatalogService, logg))
			r.Get("/{creatorId}/media", controllers.CatalogListCreatorMedia(deps.CatalogService, logg))
		})

		r.Post("/quote", controllers.Quote(deps.QuoteService, logg))

		r.Route("/me", func(r chi.Router) {
			r.Use(authed, creatorOnly)
			r.Get("/profile", controllers.ProfileGet(deps.ProfileService, logg))
			r.Put("/profile", controllers.ProfileUpdate(deps.ProfileService, logg))
			r.Get("/media", controllers.MediaListOwn(deps.MediaService, logg))
			r.Post("/media", controllers.MediaPublish(deps.MediaService, logg))
			r.Delete("/media/{mediaId}", controllers.MediaDelete(deps.MediaService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(authed, buyerOnly)
			r.Get("/", controllers.CartFetch(deps.CartService, logg))
			r.Delete("/", controllers.CartClear(deps.CartService, logg))
			r.Post("/items", controllers.CartAdd(deps.CartService, logg))
			r.Delete("/items/{mediaItemId}", controllers.CartRemove(deps.CartService, logg))
		})

		r.With(authed, buyerOnly).Post("/checkout", controllers.Checkout(deps.CheckoutService, logg))

		r.Route("/requests", func(r chi.Router) {
			r.Use(authed)
			r.Get("/", controllers.RequestsList(deps.RequestService, logg))
			r.With(creatorOnly).Post("/{requestId}/decision", controllers.RequestDecide(deps.RequestService, logg))
		})
	})

	return r
}
