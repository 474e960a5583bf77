package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/fireshop-backend/api/controllers"
	"github.com/angelmondragon/fireshop-backend/api/middleware"
	"github.com/angelmondragon/fireshop-backend/api/views"
	"github.com/angelmondragon/fireshop-backend/internal/auth"
	product "github.com/angelmondragon/fireshop-backend/internal/products"
	"github.com/angelmondragon/fireshop-backend/pkg/config"
	"github.com/angelmondragon/fireshop-backend/pkg/db"
	"github.com/angelmondragon/fireshop-backend/pkg/enums"
	"github.com/angelmondragon/fireshop-backend/pkg/flash"
	"github.com/angelmondragon/fireshop-backend/pkg/logger"
	"github.com/angelmondragon/fireshop-backend/pkg/redis"
)

// NewRouter wires the HTTP surface: the public catalog reads, the admin-only
// catalog writes, and the session login flow.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient *db.Client,
	redisClient *redis.Client,
	renderer *views.Renderer,
	flashes *flash.Store,
	authService auth.Service,
	productService product.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	loginLimiter := middleware.AuthRateLimit(loginPolicy, nil, logg)
	if redisClient != nil {
		loginLimiter = middleware.AuthRateLimit(loginPolicy, redisClient, logg)
	}

	r.Get("/healthz", controllers.Healthz(dbClient))

	r.Route("/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(productService, logg))
		r.Get("/{id}", controllers.GetProduct(productService, logg))

		// Catalog writes stay on the paths the admin pages post to; the
		// update route is a POST for the same reason.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Use(middleware.RequireRole(enums.UserRoleAdmin, logg))

			r.Post("/create", controllers.CreateProduct(productService, logg))
			r.Post("/{id}", controllers.UpdateProduct(productService, logg))
			r.Delete("/{id}", controllers.DeleteProduct(productService, logg))
		})
	})

	r.Route("/login", func(r chi.Router) {
		r.Get("/", controllers.LoginPage(renderer, flashes, logg))
		r.Get("/register", controllers.RegisterPage(renderer, flashes, logg))
		r.Post("/register", controllers.Register(authService, flashes, logg))
		r.With(loginLimiter).Post("/", controllers.Login(authService, flashes, cfg.JWT, logg))
	})

	return r
}
