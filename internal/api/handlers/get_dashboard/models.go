package get_dashboard

import (
	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	accountModels "github.com/m04kA/SMC-OpsPanel/internal/service/accounts/models"
	appointmentModels "github.com/m04kA/SMC-OpsPanel/internal/service/appointments/models"
	inventoryModels "github.com/m04kA/SMC-OpsPanel/internal/service/inventory/models"
	getDashboard "github.com/m04kA/SMC-OpsPanel/internal/usecase/get_dashboard"
)

// DashboardResponse HTTP response model
type DashboardResponse struct {
	Date              string                                  `json:"date"`
	TodayAppointments []appointmentModels.AppointmentResponse `json:"todayAppointments"`
	CriticalStock     []inventoryModels.ItemResponse          `json:"criticalStock"`
	AccountsDue       []accountModels.AccountResponse         `json:"accountsDue"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDashboard.Response) *DashboardResponse {
	return &DashboardResponse{
		Date:              resp.Date.Format(domain.DateFormat),
		TodayAppointments: appointmentModels.FromDomainAppointmentList(resp.TodayAppointments, false).Appointments,
		CriticalStock:     inventoryModels.FromDomainItemList(resp.CriticalStock).Items,
		AccountsDue:       accountModels.FromDomainAccountList(resp.AccountsDue).Accounts,
	}
}
