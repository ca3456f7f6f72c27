package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pointago/pointage-backend-go/internal/domain/biometric"
	"github.com/pointago/pointage-backend-go/internal/handler/http/response"
)

type BiometricHandler interface {
	ReceivePunch(w http.ResponseWriter, r *http.Request)
	ListLogs(w http.ResponseWriter, r *http.Request)
}

type biometricHandlerImpl struct {
	biometricService biometric.BiometricService
}

func NewBiometricHandler(biometricService biometric.BiometricService) BiometricHandler {
	return &biometricHandlerImpl{
		biometricService: biometricService,
	}
}

// ReceivePunch implements BiometricHandler. The device endpoint carries no
// user session; the event's biometric id is the only identity involved.
func (h *biometricHandlerImpl) ReceivePunch(w http.ResponseWriter, r *http.Request) {
	var req biometric.PunchEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.biometricService.ReceivePunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch event processed", result)
}

// ListLogs implements BiometricHandler.
func (h *biometricHandlerImpl) ListLogs(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.biometricService.ListLogs(r.Context(), actor, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
