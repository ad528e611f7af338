package routers

import (
	"labdesk-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachLabelRouter(router chi.Router, labelController *controllers.LabelController) {
	router.Post("/{orderID}/labels", labelController.GenerateLabels)
	router.Get("/{orderID}/samples", labelController.ListSamples)
}
