package get_client_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-OpsPanel/internal/api/handlers"
	"github.com/m04kA/SMC-OpsPanel/internal/api/middleware"
)

const (
	msgMissingClient = "не удалось определить клиента"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientName, ok := middleware.ClientNameFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /me/appointments - Missing client name in context")
		handlers.RespondUnauthorized(w, msgMissingClient)
		return
	}

	result, err := h.service.ListForClient(r.Context(), clientName)
	if err != nil {
		h.logger.Error("GET /me/appointments - Failed to list appointments: client=%q, error=%v", clientName, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /me/appointments - Appointments returned: client=%q, count=%d", clientName, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
