package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-OpsPanel/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date string // Дата в формате YYYY-MM-DD, пустая строка означает "сегодня"
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time          // Дата, на которую запрашивались слоты
	Slots []types.TimeString // Свободные слоты по возрастанию
}
