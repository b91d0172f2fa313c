package routes

import (
	"randomchat/randomchat/controllers"

	"github.com/go-chi/chi/v5"
)

func HealthRoutes(r chi.Router, ctrl *controllers.HealthController) {
	r.Get("/health", ctrl.HealthCheck)
}
