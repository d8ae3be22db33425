package models

import (
	"time"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID         string    `json:"id"`
	Position   *int      `json:"position,omitempty"` // Текущая позиция в журнале, только для отображения
	ClientName string    `json:"clientName"`
	Service    string    `json:"service"`
	Date       string    `json:"date"` // "2026-03-10"
	Time       string    `json:"time"` // "10:00"
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:         a.ID.String(),
		ClientName: a.ClientName,
		Service:    a.Service,
		Date:       a.Date.Format(domain.DateFormat),
		Time:       a.TimeSlot.String(),
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO.
// withPositions проставляет позицию каждой записи в порядке списка.
func FromDomainAppointmentList(appointments []*domain.Appointment, withPositions bool) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for i, appointment := range appointments {
		item := FromDomainAppointment(appointment)
		if item == nil {
			continue
		}
		if withPositions {
			position := i
			item.Position = &position
		}
		resp.Appointments = append(resp.Appointments, *item)
	}
	resp.Total = len(resp.Appointments)

	return resp
}
