// randomchat/routes/user.go
package routes

import (
	"net/http"

	"randomchat/randomchat/config"
	"randomchat/randomchat/middlewares"

	"github.com/go-chi/chi/v5"
)

// UserRoutes exposes GET /me for clients that want to confirm their
// stored token still identifies them. Chat itself is deliberately not
// behind the auth middleware.
func UserRoutes(r chi.Router, cfg config.Config) {
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))
		gr.Get("/me", func(w http.ResponseWriter, req *http.Request) {
			username, _ := req.Context().Value(middlewares.UsernameKey).(string)
			writeJSON(w, http.StatusOK, map[string]string{"username": username})
		})
	})
}
