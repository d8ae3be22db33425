package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// parseRequestDate разбирает дату запроса; пустая дата заменяется сегодняшней
func parseRequestDate(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.DateOnly(now), nil
	}

	date, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrInvalidDateFormat, raw)
	}

	return date, nil
}
