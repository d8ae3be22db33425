package models

import (
	"time"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// CreateAccountRequest запрос на добавление счёта
type CreateAccountRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"` // "2026-03-31"
}

// UpdateStatusRequest запрос на смену статуса счёта
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AccountResponse ответ с данными счёта
type AccountResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	DueDate     string    `json:"dueDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AccountListResponse ответ со списком счетов
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// FromDomainAccount конвертирует domain модель в DTO
func FromDomainAccount(a *domain.Account) *AccountResponse {
	if a == nil {
		return nil
	}

	return &AccountResponse{
		ID:          a.ID.String(),
		Description: a.Description,
		Amount:      a.Amount,
		DueDate:     a.DueDate.Format(domain.DateFormat),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

// FromDomainAccountList конвертирует список domain моделей в DTO
func FromDomainAccountList(accounts []*domain.Account) *AccountListResponse {
	resp := &AccountListResponse{
		Accounts: make([]AccountResponse, 0, len(accounts)),
	}

	for _, account := range accounts {
		if accountResp := FromDomainAccount(account); accountResp != nil {
			resp.Accounts = append(resp.Accounts, *accountResp)
		}
	}

	return resp
}
