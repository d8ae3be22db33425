package delete_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OpsPanel/internal/service/appointments/models"
)

type AppointmentService interface {
	DeleteAt(ctx context.Context, position int) (*models.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
