package accounts

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OpsPanel/internal/api/handlers"
	accountsService "github.com/m04kA/SMC-OpsPanel/internal/service/accounts"
	"github.com/m04kA/SMC-OpsPanel/internal/service/accounts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAccountID   = "некорректный ID счёта"
	msgInvalidAccount     = "описание обязательно, сумма не может быть отрицательной, срок оплаты в формате YYYY-MM-DD"
	msgInvalidStatus      = "недопустимый статус, ожидается overdue или paid"
	msgNotFound           = "счёт не найден"
)

type Handler struct {
	service AccountService
	logger  Logger
}

func NewHandler(service AccountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/accounts
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /accounts - Failed to list accounts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/accounts
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /accounts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, accountsService.ErrInvalidInput):
			h.logger.Warn("POST /accounts - Invalid account: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAccount)

		default:
			h.logger.Error("POST /accounts - Failed to create account: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /accounts - Account created: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdateStatus PATCH /api/v1/accounts/{accountId}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(mux.Vars(r)["accountId"])
	if err != nil {
		h.logger.Warn("PATCH /accounts/{id}/status - Invalid account ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAccountID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /accounts/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), accountID, &req)
	if err != nil {
		switch {
		case errors.Is(err, accountsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /accounts/{id}/status - Invalid status: id=%s, status=%q", accountID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, accountsService.ErrNotFound):
			h.logger.Warn("PATCH /accounts/{id}/status - Account not found: id=%s", accountID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /accounts/{id}/status - Failed to update status: id=%s, error=%v", accountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /accounts/{id}/status - Status updated: id=%s, status=%s", accountID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/accounts/{accountId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(mux.Vars(r)["accountId"])
	if err != nil {
		h.logger.Warn("DELETE /accounts/{id} - Invalid account ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAccountID)
		return
	}

	result, err := h.service.Delete(r.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, accountsService.ErrNotFound):
			h.logger.Warn("DELETE /accounts/{id} - Account not found: id=%s", accountID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /accounts/{id} - Failed to delete account: id=%s, error=%v", accountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /accounts/{id} - Account deleted: id=%s", accountID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
