package account

import "errors"

var (
	// ErrAccountNotFound возвращается, когда счёт не найден
	ErrAccountNotFound = errors.New("account.repository: account not found")
)
