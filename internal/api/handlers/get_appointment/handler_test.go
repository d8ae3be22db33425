package get_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	"github.com/m04kA/SMC-OpsPanel/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-OpsPanel/internal/service/appointments"
	"github.com/m04kA/SMC-OpsPanel/internal/service/appointments/models"
	"github.com/m04kA/SMC-OpsPanel/pkg/logger"
	"github.com/m04kA/SMC-OpsPanel/pkg/metrics"
)

func getRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+id, nil)
	return mux.SetURLVars(req, map[string]string{"appointmentId": id})
}

func TestHandler_Handle(t *testing.T) {
	ledger := appointment.NewMemoryRepository()
	created, err := ledger.Create(context.Background(), &domain.Appointment{
		ClientName: "Ana",
		Service:    "Corte",
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:   "10:00",
	})
	require.NoError(t, err)

	var m *metrics.Metrics
	h := NewHandler(appointments.NewService(ledger, m, logger.NewNop()), logger.NewNop())

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, getRequest(created.ID.String()))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.AppointmentResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, created.ID.String(), resp.ID)
		assert.Equal(t, "2026-03-10", resp.Date)
		assert.Equal(t, "10:00", resp.Time)
		assert.Nil(t, resp.Position)
	})

	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, getRequest(uuid.NewString()))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, getRequest("42"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
