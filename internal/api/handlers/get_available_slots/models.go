package get_available_slots

import (
	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-OpsPanel/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string   `json:"date"`  // "2026-03-10"
	Slots []string `json:"slots"` // ["09:00", "10:00"]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
