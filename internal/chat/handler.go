package chat

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/itamar11/portfolio-chat/internal/middleware"
)

type Handler struct {
	svc      Service
	validate *validator.Validate
	log      *log.Logger
}

func NewHandler(svc Service) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
		log:      log.WithPrefix("chat"),
	}
}

// HandleChat answers POST /api/chat with {content} or {error}.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("decode request", "request_id", reqID, "err", err)
		writeError(w, http.StatusInternalServerError)
		return
	}

	if err := h.validateRequest(req); err != nil {
		h.log.Warn("rejected request", "request_id", reqID, "err", err)
		writeError(w, http.StatusBadRequest)
		return
	}

	reply, err := h.svc.Reply(r.Context(), req.Messages)
	if err != nil {
		if errors.Is(err, ErrUpstream) {
			h.log.Error("model call failed", "request_id", reqID, "err", err)
		} else {
			h.log.Error("reply failed", "request_id", reqID, "err", err)
		}
		writeError(w, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Content: reply})
}

// HandleSuggestions lists the quick questions shown under the chat input.
func (h *Handler) HandleSuggestions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, SuggestionsResponse{Suggestions: QuickQuestions})
}

func (h *Handler) validateRequest(req ChatRequest) error {
	if err := h.validate.Struct(req); err != nil {
		return errors.Mark(errors.Wrap(err, "validate"), ErrInvalidRoles)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError uses the bare status text so internals never reach the client.
func writeError(w http.ResponseWriter, status int) {
	writeJSON(w, status, ErrorResponse{Error: http.StatusText(status)})
}
