package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/securepass/securepass-go/internal/composer"
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.ComposeRequest
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if err.Error() == "http: request body too large" {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("InvalidRequest", "request body too large"))
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse("InvalidRequest", "invalid request body"))
			return
		}
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleListTiers handles GET /api/v1/tiers requests.
func (h *GeneratorHandler) HandleListTiers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Tiers())
}

// writeError maps service and composer errors onto the coded wire format.
// Anything unrecognized is reported generically, never swallowed.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, composer.ErrInsufficientLength):
		writeJSON(w, http.StatusBadRequest, errorResponse("InsufficientLength", err.Error()))
	case errors.Is(err, composer.ErrInvalidLength), errors.Is(err, service.ErrLengthOutOfRange):
		writeJSON(w, http.StatusBadRequest, errorResponse("InvalidLength", err.Error()))
	case errors.Is(err, composer.ErrUnknownTier):
		writeJSON(w, http.StatusBadRequest, errorResponse("InvalidTier", err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("Internal", "internal server error"))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(code, msg string) model.ErrorResponse {
	return model.ErrorResponse{Error: code, Message: msg}
}
