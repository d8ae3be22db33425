package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	"github.com/m04kA/SMC-OpsPanel/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName string // Имя клиента из заголовка идентификации
	Service    string // Услуга (свободный текст)
	Date       string // Дата в формате YYYY-MM-DD
	Time       string // Время слота в формате HH:MM
}

// Response модель ответа с созданной записью
type Response struct {
	ID         uuid.UUID
	ClientName string
	Service    string
	Date       time.Time
	TimeSlot   types.TimeString
	Status     domain.AppointmentStatus
	CreatedAt  time.Time
}

// toResponse конвертирует доменную модель в ответ
func toResponse(appointment *domain.Appointment) *Response {
	return &Response{
		ID:         appointment.ID,
		ClientName: appointment.ClientName,
		Service:    appointment.Service,
		Date:       appointment.Date,
		TimeSlot:   appointment.TimeSlot,
		Status:     appointment.Status,
		CreatedAt:  appointment.CreatedAt,
	}
}
