package get_dashboard

import (
	"net/http"

	"github.com/m04kA/SMC-OpsPanel/internal/api/handlers"
	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

type Handler struct {
	useCase GetDashboardUseCase
	logger  Logger
}

func NewHandler(useCase GetDashboardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard - Failed to build dashboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard - Dashboard returned: date=%s, appointments=%d, critical=%d, due=%d",
		result.Date.Format(domain.DateFormat), len(result.TodayAppointments), len(result.CriticalStock), len(result.AccountsDue))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
