package delete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OpsPanel/internal/api/handlers"
	"github.com/m04kA/SMC-OpsPanel/internal/service/appointments"
	"github.com/m04kA/SMC-OpsPanel/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidPosition      = "позиция должна быть неотрицательным целым числом"
	msgNotFound             = "запись не найдена"
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

// HandleByID DELETE /api/v1/appointments/{appointmentId}
func (h *Handler) HandleByID(w http.ResponseWriter, r *http.Request) {
	appointmentIDStr := mux.Vars(r)["appointmentId"]

	appointmentID, err := uuid.Parse(appointmentIDStr)
	if err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.Delete(r.Context(), appointmentID)
	h.respond(w, "DELETE /appointments/{id}", appointmentIDStr, result, err)
}

// HandleByPosition DELETE /api/v1/appointments/position/{position}
// Позиция с нуля в текущем порядке списка GET /appointments
func (h *Handler) HandleByPosition(w http.ResponseWriter, r *http.Request) {
	positionStr := mux.Vars(r)["position"]

	position, err := strconv.Atoi(positionStr)
	if err != nil || position < 0 {
		h.logger.Warn("DELETE /appointments/position/{position} - Invalid position: %q", positionStr)
		handlers.RespondBadRequest(w, msgInvalidPosition)
		return
	}

	result, err := h.service.DeleteAt(r.Context(), position)
	h.respond(w, "DELETE /appointments/position/{position}", positionStr, result, err)
}

func (h *Handler) respond(w http.ResponseWriter, route, target string, result *models.AppointmentResponse, err error) {
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrNotFound):
			h.logger.Warn("%s - Appointment not found: %s", route, target)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("%s - Failed to delete appointment: %s, error=%v", route, target, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Appointment deleted: id=%s", route, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
