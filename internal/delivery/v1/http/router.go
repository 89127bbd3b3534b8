package http

import (
	"net/http"

	"github.com/doodle-alley/go-backend/internal/usecase"
	"github.com/doodle-alley/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(productUC usecase.ProductUC, orderUC usecase.OrderUC, catalogUC usecase.CatalogUC, authUC usecase.AuthUC) {
	// Витрина и админка живут на разных origin — CORS открыт для всех.
	r.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         600,
	}))
	r.router.Use(Logging(r.logger))

	r.router.Get("/health", healthCheck)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		prHandler := NewProductHandler(productUC, r.logger)
		orderHandler := NewOrderHandler(orderUC, r.logger)
		catalogHandler := NewCatalogHandler(catalogUC, r.logger)
		authHandler := NewAuthHandler(authUC, r.logger)
		imageHandler := NewImageHandler(productUC, r.logger)

		admin := RequireAdmin(authUC, r.logger)

		v1.Get("/health", healthCheck)
		v1.Post("/admin/login", authHandler.login)
		v1.Get("/catalog", catalogHandler.browse)

		v1.Route("/products", func(pr chi.Router) {
			pr.Get("/", prHandler.listProducts)
			pr.Get("/{id}", prHandler.getProduct)

			pr.Group(func(adm chi.Router) {
				adm.Use(admin)
				adm.Post("/", prHandler.createProduct)
				adm.Put("/{id}", prHandler.updateProduct)
				adm.Delete("/{id}", prHandler.deleteProduct)
			})
		})

		v1.Route("/orders", func(or chi.Router) {
			or.Post("/", orderHandler.submitOrder)
			or.With(admin).Get("/", orderHandler.listOrders)
		})

		v1.With(admin).Post("/images", imageHandler.uploadImages)
	})
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
