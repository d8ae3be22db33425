package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	"github.com/m04kA/SMC-OpsPanel/pkg/types"
)

// validateRequest валидирует входные данные запроса и возвращает разобранные дату и слот
func validateRequest(req *Request) (time.Time, types.TimeString, error) {
	if strings.TrimSpace(req.ClientName) == "" {
		return time.Time{}, "", fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	if len(req.ClientName) > domain.MaxClientNameLength {
		return time.Time{}, "", fmt.Errorf("%w: client name must not exceed %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if strings.TrimSpace(req.Service) == "" {
		return time.Time{}, "", fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if len(req.Service) > domain.MaxServiceLength {
		return time.Time{}, "", fmt.Errorf("%w: service must not exceed %d characters", ErrInvalidInput, domain.MaxServiceLength)
	}

	date, err := domain.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrInvalidDateFormat, req.Date)
	}

	slot, err := types.NewTimeStringFromString(strings.TrimSpace(req.Time))
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrInvalidTimeSlot, req.Time)
	}

	return date, slot, nil
}

// validateSlot проверяет, что слот лежит в рабочих часах и на сетке шага
func validateSlot(slot types.TimeString, hours domain.BusinessHours) error {
	if err := hours.ValidateGranularity(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	if !hours.Contains(slot) {
		return fmt.Errorf("%w: %w: %s is outside %s-%s or not on the %d-minute grid",
			ErrInvalidInput, ErrInvalidTimeSlot, slot, hours.OpeningTime, hours.ClosingTime, hours.GranularityMinutes())
	}

	return nil
}
