package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	accountRepo "github.com/m04kA/SMC-OpsPanel/internal/infra/storage/account"
	"github.com/m04kA/SMC-OpsPanel/internal/service/accounts/models"
)

// Service сервис для работы со счетами к оплате
type Service struct {
	accountRepo AccountRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса счетов
func NewService(accountRepo AccountRepository, logger Logger) *Service {
	return &Service{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Create добавляет счёт со статусом active
func (s *Service) Create(ctx context.Context, req *models.CreateAccountRequest) (*models.AccountResponse, error) {
	s.logger.Info("CreateAccount: description=%q, amount=%.2f, dueDate=%q", req.Description, req.Amount, req.DueDate)

	description := strings.TrimSpace(req.Description)
	if description == "" {
		s.logger.Warn("CreateAccount: empty description")
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len(description) > domain.MaxDescriptionLength {
		s.logger.Warn("CreateAccount: description too long")
		return nil, fmt.Errorf("%w: description must not exceed %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	if req.Amount < 0 {
		s.logger.Warn("CreateAccount: negative amount %.2f", req.Amount)
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	dueDate, err := domain.ParseDate(strings.TrimSpace(req.DueDate))
	if err != nil {
		s.logger.Warn("CreateAccount: invalid due date %q", req.DueDate)
		return nil, fmt.Errorf("%w: dueDate must be YYYY-MM-DD", ErrInvalidInput)
	}

	created, err := s.accountRepo.Create(ctx, &domain.Account{
		Description: description,
		Amount:      req.Amount,
		DueDate:     dueDate,
		Status:      domain.AccountActive,
	})
	if err != nil {
		s.logger.Error("CreateAccount: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAccount: created account id=%s", created.ID)
	return models.FromDomainAccount(created), nil
}

// List возвращает все счета
func (s *Service) List(ctx context.Context) (*models.AccountListResponse, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListAccounts: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAccountList(accounts), nil
}

// UpdateStatus переводит счёт в статус overdue или paid
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.AccountResponse, error) {
	s.logger.Info("UpdateAccountStatus: id=%s, status=%q", id, req.Status)

	status := domain.AccountStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if !status.IsSettable() {
		s.logger.Warn("UpdateAccountStatus: invalid status %q for id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	updated, err := s.accountRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("UpdateAccountStatus: account id=%s not found", id)
			return nil, ErrNotFound
		}
		s.logger.Error("UpdateAccountStatus: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAccountStatus: account id=%s is now %s", id, updated.Status)
	return models.FromDomainAccount(updated), nil
}

// Delete удаляет счёт по ID
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*models.AccountResponse, error) {
	s.logger.Info("DeleteAccount: id=%s", id)

	removed, err := s.accountRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("DeleteAccount: account id=%s not found", id)
			return nil, ErrNotFound
		}
		s.logger.Error("DeleteAccount: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAccount(removed), nil
}
