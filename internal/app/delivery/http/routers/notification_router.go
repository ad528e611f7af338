package routers

import (
	"labdesk-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRouter(router chi.Router, notificationController *controllers.NotificationController) {
	router.Post("/notifications", notificationController.NotifyResult)
	router.Get("/notifications/{notificationID}", notificationController.DeliveryStatus)
	router.Delete("/notifications/{notificationID}", notificationController.CancelDelivery)
}
