package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/pharmalink/docs"
	"github.com/rogerio-castellano/pharmalink/internal/http/handlers"
	mw "github.com/rogerio-castellano/pharmalink/internal/http/middleware"
	"github.com/rogerio-castellano/pharmalink/internal/models"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger)
	r.Use(mw.Tracing)

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.With(mw.RateLimitMiddleware).Post("/login", handlers.LoginHandler)

	r.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware)

		// Any signed-in user.
		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/low-stock", handlers.GetLowStockHandler)
		r.Get("/deliveries/scheduled", handlers.GetScheduledDeliveriesHandler)
		r.Get("/market/search", handlers.MarketSearchHandler)

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(models.RoleAttendee, models.RoleOwner))
			r.Post("/deliveries/receive", handlers.ReceiveStockHandler)
			r.Post("/deliveries/{id}/confirm", handlers.ConfirmDeliveryHandler)
			r.Post("/sales", handlers.RecordSaleHandler)

			r.Get("/cart", handlers.GetCartHandler)
			r.Delete("/cart", handlers.ClearCartHandler)
			r.Post("/cart/items", handlers.AddCartItemHandler)
			r.Post("/cart/checkout", handlers.CheckoutHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(models.RoleOwner))
			r.Post("/products", handlers.CreateProductHandler)
			r.Post("/products/import", handlers.ImportProductsHandler)
			r.Put("/products/{id}/price", handlers.UpdatePriceHandler)
			r.Get("/deliveries", handlers.GetAllDeliveriesHandler)
			r.Post("/deliveries/schedule", handlers.ScheduleDeliveryHandler)
			r.Post("/deliveries/restock-request", handlers.RestockRequestHandler)
			r.Get("/sales", handlers.GetSalesHistoryHandler)
			r.Get("/reports/profit", handlers.GetProfitSummaryHandler)
			r.Get("/reports/dashboard", handlers.GetDashboardHandler)
			r.Get("/reports/sales/export", handlers.ExportSalesHandler)
		})
	})

	return r
}
