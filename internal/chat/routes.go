package chat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the chat API; mws only guard the POST endpoint.
func RegisterRoutes(r chi.Router, h *Handler, mws ...func(http.Handler) http.Handler) {
	r.With(mws...).Post("/api/chat", h.HandleChat)
	r.Get("/api/chat/suggestions", h.HandleSuggestions)
}
