package list_appointments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	"github.com/m04kA/SMC-OpsPanel/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-OpsPanel/internal/service/appointments"
	"github.com/m04kA/SMC-OpsPanel/internal/service/appointments/models"
	"github.com/m04kA/SMC-OpsPanel/pkg/logger"
	"github.com/m04kA/SMC-OpsPanel/pkg/metrics"
	"github.com/m04kA/SMC-OpsPanel/pkg/types"
)

type serviceStub struct{}

func (serviceStub) List(context.Context) (*models.AppointmentListResponse, error) {
	return nil, errors.New("boom")
}

func TestHandler_Handle(t *testing.T) {
	ledger := appointment.NewMemoryRepository()
	for _, slot := range []types.TimeString{"11:00", "09:00", "10:00"} {
		_, err := ledger.Create(context.Background(), &domain.Appointment{
			ClientName: "Ana",
			Service:    "Corte",
			Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			TimeSlot:   slot,
		})
		require.NoError(t, err)
	}

	var m *metrics.Metrics
	h := NewHandler(appointments.NewService(ledger, m, logger.NewNop()), logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AppointmentListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, 3, resp.Total)

	// порядок добавления, а не порядок слотов
	for i, want := range []string{"11:00", "09:00", "10:00"} {
		assert.Equal(t, want, resp.Appointments[i].Time)
		require.NotNil(t, resp.Appointments[i].Position)
		assert.Equal(t, i, *resp.Appointments[i].Position)
	}
}

func TestHandler_Handle_ServiceError(t *testing.T) {
	h := NewHandler(serviceStub{}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
