package create_booking

import (
	"time"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	createBooking "github.com/m04kA/SMC-OpsPanel/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Service string `json:"service"`
	Date    string `json:"date"` // "2026-03-10"
	Time    string `json:"time"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         string `json:"id"`
	ClientName string `json:"clientName"`
	Service    string `json:"service"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Разбор даты и времени выполняет use case.
func (r *CreateBookingRequest) ToUseCaseRequest(clientName string) *createBooking.Request {
	return &createBooking.Request{
		ClientName: clientName,
		Service:    r.Service,
		Date:       r.Date,
		Time:       r.Time,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID.String(),
		ClientName: resp.ClientName,
		Service:    resp.Service,
		Date:       resp.Date.Format(domain.DateFormat),
		Time:       resp.TimeSlot.String(),
		Status:     string(resp.Status),
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
