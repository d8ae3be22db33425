package inventory

import (
	"encoding/json"
	"strings"

	"github.com/m04kA/SMC-OpsPanel/internal/service/inventory/models"
)

// CreateItemRequest HTTP request model.
// quantity принимается и числом, и строкой.
type CreateItemRequest struct {
	Name      string          `json:"name"`
	Quantity  json.RawMessage `json:"quantity"`
	ExpiresOn string          `json:"expiresOn"` // "2026-12-31"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateItemRequest) ToServiceRequest() *models.CreateItemRequest {
	return &models.CreateItemRequest{
		Name:      r.Name,
		Quantity:  rawText(r.Quantity),
		ExpiresOn: r.ExpiresOn,
	}
}

// rawText возвращает JSON значение как текст, снимая кавычки со строк
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
