package domain

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem represents a stocked product
type InventoryItem struct {
	ID        uuid.UUID
	Name      string
	Quantity  int
	ExpiresOn time.Time
	CreatedAt time.Time
}

// IsCritical returns true if the stock level needs attention
func (i *InventoryItem) IsCritical() bool {
	return i.Quantity < CriticalStockThreshold
}
