package get_business_hours

import (
	"net/http"

	"github.com/m04kA/SMC-OpsPanel/internal/api/handlers"
	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

type Handler struct {
	response *BusinessHoursResponse
	logger   Logger
}

// NewHandler рабочие часы фиксируются при старте, поэтому ответ собирается один раз
func NewHandler(hours domain.BusinessHours, logger Logger) *Handler {
	return &Handler{
		response: FromDomain(hours),
		logger:   logger,
	}
}

// Handle GET /api/v1/business-hours
// Публичный endpoint - без идентификации клиента
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /business-hours - Business hours returned: %s-%s",
		h.response.OpeningTime, h.response.ClosingTime)
	handlers.RespondJSON(w, http.StatusOK, h.response)
}
