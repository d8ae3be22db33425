package get_business_hours

import "github.com/m04kA/SMC-OpsPanel/internal/domain"

// BusinessHoursResponse рабочее окно, из которого генерируются слоты
type BusinessHoursResponse struct {
	OpeningTime            string `json:"openingTime"`
	ClosingTime            string `json:"closingTime"`
	SlotGranularityMinutes int    `json:"slotGranularityMinutes"`
	Timezone               string `json:"timezone"`
}

// FromDomain конвертирует domain.BusinessHours в ответ
func FromDomain(hours domain.BusinessHours) *BusinessHoursResponse {
	timezone := "Local"
	if hours.Location != nil {
		timezone = hours.Location.String()
	}

	return &BusinessHoursResponse{
		OpeningTime:            hours.OpeningTime.String(),
		ClosingTime:            hours.ClosingTime.String(),
		SlotGranularityMinutes: hours.GranularityMinutes(),
		Timezone:               timezone,
	}
}
