package routers

import (
	"labdesk-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRouter(router chi.Router, catalogController *controllers.CatalogController) {
	router.Get("/", catalogController.ListLabTests)
}
