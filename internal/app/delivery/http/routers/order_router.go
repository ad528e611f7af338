package routers

import (
	"labdesk-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachOrderRouter(router chi.Router, orderController *controllers.OrderController) {
	router.Post("/drafts", orderController.CreateDraft)
	router.Get("/drafts/{sessionID}", orderController.GetDraft)
	router.Patch("/drafts/{sessionID}", orderController.UpdateDraft)
	router.Post("/drafts/{sessionID}/submit", orderController.SubmitDraft)
	router.Delete("/drafts/{sessionID}", orderController.CloseDraft)
	router.Get("/{orderID}", orderController.GetOrder)
}
