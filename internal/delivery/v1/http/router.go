package http

import (
	_ "github.com/comptoir-pos/backend/docs" // Импорт сгенерированных файлов
	"github.com/comptoir-pos/backend/internal/usecase"
	"github.com/comptoir-pos/backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(
	sessionUC usecase.SessionUC,
	catalogUC usecase.CatalogUC,
	cartUC usecase.CartUC,
	orderUC usecase.OrderUC,
	kitchenUC usecase.KitchenUC,
	reportUC usecase.ReportUC,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerSessionRoutes(v1, NewSessionHandler(sessionUC, r.logger))
		registerCatalogRoutes(v1, NewCatalogHandler(catalogUC, r.logger))
		registerCartRoutes(v1, NewCartHandler(cartUC, r.logger))
		registerOrderRoutes(v1, NewOrderHandler(orderUC, r.logger))
		registerKitchenRoutes(v1, NewKitchenHandler(kitchenUC, r.logger))
		registerDashboardRoutes(v1, NewDashboardHandler(reportUC, r.logger))
	})
}

func registerSessionRoutes(router chi.Router, h *SessionHandler) {
	router.Route("/session", func(s chi.Router) {
		s.Get("/", h.current)
		s.Post("/login", h.login)
		s.Post("/logout", h.logout)
	})
	router.Get("/waiters", h.waiters)
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Post("/", h.addProduct)
		pr.Get("/categories", h.categories)
		pr.Delete("/{id}", h.removeProduct)
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(c chi.Router) {
		c.Get("/", h.view)
		c.Delete("/", h.clear)
		c.Post("/items", h.addItem)
		c.Patch("/items/{id}", h.changeQuantity)
		c.Delete("/items/{id}", h.removeItem)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Route("/orders", func(o chi.Router) {
		o.Get("/", h.listOrders)
		o.Post("/checkout", h.checkout)
	})
}

func registerKitchenRoutes(router chi.Router, h *KitchenHandler) {
	router.Route("/kitchen", func(k chi.Router) {
		k.Get("/active", h.activeBoard)
		k.Get("/ready", h.readyBoard)
		k.Post("/orders/{id}/ready", h.markReady)
		k.Post("/orders/{id}/archive", h.archive)
	})
}

func registerDashboardRoutes(router chi.Router, h *DashboardHandler) {
	router.Route("/dashboard", func(d chi.Router) {
		d.Get("/", h.dashboard)
		d.Post("/export", h.export)
	})
}
