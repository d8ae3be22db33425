package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OpsPanel/internal/api/handlers"
	"github.com/m04kA/SMC-OpsPanel/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-OpsPanel/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingClient      = "не удалось определить клиента"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimeSlot    = "время должно быть в формате HH:MM, в рабочие часы и на границе слота"
	msgInvalidInput       = "некорректные данные записи"
	msgSlotConflict       = "этот слот уже занят, выберите другое время"
	msgInvalidHours       = "рабочие часы настроены некорректно, запись недоступна"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientName, ok := middleware.ClientNameFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing client name in context")
		handlers.RespondUnauthorized(w, msgMissingClient)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(clientName))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: client=%q, date=%s, time=%s", clientName, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrInvalidDateFormat):
			h.logger.Warn("POST /appointments - Invalid date: client=%q, date=%q", clientName, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: client=%q, time=%q", clientName, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: client=%q, error=%v", clientName, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidConfiguration):
			h.logger.Error("POST /appointments - Invalid business hours: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInvalidHours)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client=%q, error=%v", clientName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, client=%q", result.ID, clientName)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
