package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"candyshop-backend/infrastructure/persistence/abstractions"
	"candyshop-backend/interfaces/http/rest/handlers"
	"candyshop-backend/interfaces/http/rest/middleware"
	"candyshop-backend/pkg/common"
)

// Router creates and configures the HTTP router
type Router struct {
	users    abstractions.UserRepository
	products abstractions.ProductRepository
	cart     abstractions.CartRepository
	logger   *zap.Logger
	cors     bool
}

// NewRouter creates a new router instance
func NewRouter(
	users abstractions.UserRepository,
	products abstractions.ProductRepository,
	cart abstractions.CartRepository,
	logger *zap.Logger,
	enableCORS bool,
) *Router {
	return &Router{
		users:    users,
		products: products,
		cart:     cart,
		logger:   logger,
		cors:     enableCORS,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cors {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)

	router.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			userHandler := handlers.NewUserHandler(rt.users, rt.logger)
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Get("/{id}", userHandler.Get)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			productHandler := handlers.NewProductHandler(rt.products, rt.logger)
			r.Get("/", productHandler.List)
			r.Post("/", productHandler.Create)
			r.Post("/seed", productHandler.Seed)
			r.Get("/{id}", productHandler.Get)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
		})

		r.Route("/cart", func(r chi.Router) {
			cartHandler := handlers.NewCartHandler(rt.cart, rt.logger)
			r.Post("/", cartHandler.Add)
			r.Get("/{userId}", cartHandler.List)
			r.Delete("/{userId}", cartHandler.Clear)
			r.Put("/{userId}/{productId}", cartHandler.Update)
			r.Delete("/{userId}/{productId}", cartHandler.Remove)
		})
	})

	return router
}

// healthCheck reports liveness
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
