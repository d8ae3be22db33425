package inventory

import "errors"

var (
	// ErrItemNotFound возвращается, когда товар не найден
	ErrItemNotFound = errors.New("inventory.repository: item not found")
)
