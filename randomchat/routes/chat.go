// randomchat/routes/chat.go
package routes

import (
	"errors"
	"net/http"

	"randomchat/randomchat/controllers"
	apperrors "randomchat/randomchat/errors"
	"randomchat/randomchat/utils/types"

	"github.com/go-chi/chi/v5"
)

func ChatRoutes(r chi.Router, ctrl *controllers.ChatController) {
	r.Post("/gemini-chat", func(w http.ResponseWriter, req *http.Request) {
		var body types.ChatRequest
		if err := decodeJSON(w, req, &body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		reply, err := ctrl.Chat(req.Context(), body)
		if err != nil {
			if errors.Is(err, apperrors.ErrValidation) {
				writeError(w, http.StatusBadRequest, "Message is required")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to get response from AI. Please try again.")
			return
		}
		writeJSON(w, http.StatusOK, types.ChatResponse{Response: reply})
	})
}
