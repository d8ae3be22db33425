package inventory

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OpsPanel/internal/api/handlers"
	inventoryService "github.com/m04kA/SMC-OpsPanel/internal/service/inventory"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidItemID      = "некорректный ID товара"
	msgInvalidItem        = "название обязательно, количество не может быть отрицательным, срок годности в формате YYYY-MM-DD"
	msgNotFound           = "товар не найден"
)

type Handler struct {
	service InventoryService
	logger  Logger
}

func NewHandler(service InventoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/inventory
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /inventory - Failed to list items: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/inventory
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /inventory - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, inventoryService.ErrInvalidInput):
			h.logger.Warn("POST /inventory - Invalid item: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItem)

		default:
			h.logger.Error("POST /inventory - Failed to create item: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /inventory - Item created: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleDelete DELETE /api/v1/inventory/{itemId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(mux.Vars(r)["itemId"])
	if err != nil {
		h.logger.Warn("DELETE /inventory/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	result, err := h.service.Delete(r.Context(), itemID)
	if err != nil {
		switch {
		case errors.Is(err, inventoryService.ErrNotFound):
			h.logger.Warn("DELETE /inventory/{id} - Item not found: id=%s", itemID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /inventory/{id} - Failed to delete item: id=%s, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /inventory/{id} - Item deleted: id=%s", itemID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
