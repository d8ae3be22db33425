package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountStatus represents the payment state of an account payable
type AccountStatus string

const (
	AccountActive  AccountStatus = "active"
	AccountOverdue AccountStatus = "overdue"
	AccountPaid    AccountStatus = "paid"
)

// Account represents a bill to be paid
type Account struct {
	ID          uuid.UUID
	Description string
	Amount      float64
	DueDate     time.Time
	Status      AccountStatus
	CreatedAt   time.Time
}

// IsDue returns true while the account still has to be paid
func (a *Account) IsDue() bool {
	return a.Status == AccountActive || a.Status == AccountOverdue
}

// IsSettable reports whether the status can be set through a status update.
// Only overdue and paid can be set explicitly; active is the initial status.
func (s AccountStatus) IsSettable() bool {
	return s == AccountOverdue || s == AccountPaid
}
