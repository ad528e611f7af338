package routers

import (
	"fmt"
	"time"

	"labdesk-service/internal/app/config"
	"labdesk-service/internal/app/delivery/http/controllers"
	"labdesk-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	catalogController *controllers.CatalogController,
	orderController *controllers.OrderController,
	billingController *controllers.BillingController,
	labelController *controllers.LabelController,
	notificationController *controllers.NotificationController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/lab-tests", func(r chi.Router) {
				attachCatalogRouter(r, catalogController)
			})

			r.Route("/orders", func(r chi.Router) {
				attachOrderRouter(r, orderController)
				attachLabelRouter(r, labelController)
			})

			r.Route("/billing", func(r chi.Router) {
				attachBillingRouter(r, billingController)
			})

			r.Route("/results", func(r chi.Router) {
				attachNotificationRouter(r, notificationController)
			})
		})
	})
}
