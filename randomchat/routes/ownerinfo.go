// randomchat/routes/ownerinfo.go
package routes

import (
	"net/http"

	"randomchat/randomchat/controllers"
	"randomchat/randomchat/utils/types"

	"github.com/go-chi/chi/v5"
)

// OwnerInfoRoutes responds with plain text rather than JSON; the admin
// page that posts here shows the body verbatim.
func OwnerInfoRoutes(r chi.Router, ctrl *controllers.OwnerInfoController) {
	r.Post("/save-owner-info", func(w http.ResponseWriter, req *http.Request) {
		var body types.OwnerInfoRequest
		if err := decodeJSON(w, req, &body); err != nil {
			http.Error(w, "Invalid request body.", http.StatusBadRequest)
			return
		}
		if err := ctrl.Save(req.Context(), body); err != nil {
			http.Error(w, "Failed to save owner info.", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Owner info saved successfully!"))
	})
}
