package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OpsPanel/internal/api/handlers"
	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-OpsPanel/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidConfiguration = "рабочие часы настроены некорректно, слоты не могут быть рассчитаны"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (optional, YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: dateStr})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid date: date=%q", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidConfiguration):
			h.logger.Error("GET /availability - Invalid business hours: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInvalidConfiguration)

		default:
			h.logger.Error("GET /availability - Failed to get slots: date=%q, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Slots returned: date=%s, count=%d",
		result.Date.Format(domain.DateFormat), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
