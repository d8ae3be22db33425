package get_client_appointments

import (
	"context"

	"github.com/m04kA/SMC-OpsPanel/internal/service/appointments/models"
)

type AppointmentService interface {
	ListForClient(ctx context.Context, clientName string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
