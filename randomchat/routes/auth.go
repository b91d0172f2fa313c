// randomchat/routes/auth.go
package routes

import (
	"errors"
	"net/http"

	"randomchat/randomchat/controllers"
	apperrors "randomchat/randomchat/errors"
	"randomchat/randomchat/utils/types"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(r chi.Router, ctrl *controllers.AuthController) {
	r.Post("/register", func(w http.ResponseWriter, req *http.Request) {
		var body types.AuthRequest
		if err := decodeJSON(w, req, &body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		if err := ctrl.Register(req.Context(), body.Username, body.Password); err != nil {
			switch {
			case errors.Is(err, apperrors.ErrValidation):
				writeError(w, http.StatusBadRequest, "Username and password required.")
			case errors.Is(err, apperrors.ErrConflict):
				writeError(w, http.StatusBadRequest, "Username already exists.")
			default:
				writeError(w, http.StatusInternalServerError, "Registration failed.")
			}
			return
		}
		writeJSON(w, http.StatusCreated, types.RegisterResponse{Message: "User registered successfully."})
	})

	r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
		var body types.AuthRequest
		if err := decodeJSON(w, req, &body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		token, err := ctrl.Login(req.Context(), body.Username, body.Password)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrValidation):
				writeError(w, http.StatusBadRequest, "Username and password required.")
			case errors.Is(err, apperrors.ErrInvalidCredentials):
				writeError(w, http.StatusBadRequest, "Invalid credentials.")
			default:
				writeError(w, http.StatusInternalServerError, "Login failed.")
			}
			return
		}
		writeJSON(w, http.StatusOK, types.LoginResponse{Token: token, Username: body.Username})
	})
}
