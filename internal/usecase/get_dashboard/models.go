package get_dashboard

import (
	"time"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// Response сводка на сегодня
type Response struct {
	Date              time.Time               // Сегодняшняя дата в зоне рабочих часов
	TodayAppointments []*domain.Appointment   // Записи на сегодня в порядке добавления
	CriticalStock     []*domain.InventoryItem // Товары с остатком ниже порога
	AccountsDue       []*domain.Account       // Неоплаченные счета (active и overdue)
}
