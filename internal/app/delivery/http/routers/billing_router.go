package routers

import (
	"labdesk-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBillingRouter(router chi.Router, billingController *controllers.BillingController) {
	router.Post("/sessions", billingController.CreateSession)
	router.Get("/sessions/{sessionID}", billingController.GetSession)
	router.Patch("/sessions/{sessionID}", billingController.UpdateSession)
	router.Post("/sessions/{sessionID}/pay", billingController.Pay)
}
