package models

import (
	"time"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// CreateItemRequest запрос на добавление товара
type CreateItemRequest struct {
	Name      string // Название товара
	Quantity  string // Количество как ввёл пользователь; нечисловое значение считается нулём
	ExpiresOn string // Срок годности в формате YYYY-MM-DD
}

// ItemResponse ответ с данными товара
type ItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	ExpiresOn string    `json:"expiresOn"`
	Critical  bool      `json:"critical"`
	CreatedAt time.Time `json:"createdAt"`
}

// ItemListResponse ответ со списком товаров
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// FromDomainItem конвертирует domain модель в DTO
func FromDomainItem(item *domain.InventoryItem) *ItemResponse {
	if item == nil {
		return nil
	}

	return &ItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Quantity:  item.Quantity,
		ExpiresOn: item.ExpiresOn.Format(domain.DateFormat),
		Critical:  item.IsCritical(),
		CreatedAt: item.CreatedAt,
	}
}

// FromDomainItemList конвертирует список domain моделей в DTO
func FromDomainItemList(items []*domain.InventoryItem) *ItemListResponse {
	resp := &ItemListResponse{
		Items: make([]ItemResponse, 0, len(items)),
	}

	for _, item := range items {
		if itemResp := FromDomainItem(item); itemResp != nil {
			resp.Items = append(resp.Items, *itemResp)
		}
	}

	return resp
}
