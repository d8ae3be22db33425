package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	appointmentRepo "github.com/m04kA/SMC-OpsPanel/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-OpsPanel/internal/service/appointments/models"
)

const (
	deleteModePosition = "position"
	deleteModeID       = "id"
)

// Service сервис для работы с журналом записей
type Service struct {
	appointmentRepo AppointmentRepository
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// List возвращает все записи в порядке добавления с текущими позициями
func (s *Service) List(ctx context.Context) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching all appointments")

	appointments, err := s.appointmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments, true), nil
}

// ListForClient возвращает записи клиента в порядке добавления
func (s *Service) ListForClient(ctx context.Context, clientName string) (*models.AppointmentListResponse, error) {
	clientName = strings.TrimSpace(clientName)
	s.logger.Info("ListForClient: fetching appointments for client=%q", clientName)

	if clientName == "" {
		s.logger.Warn("ListForClient: empty client name")
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.ListByClient(ctx, clientName)
	if err != nil {
		s.logger.Error("ListForClient: repository error for client=%q: %v", clientName, err)
		return nil, fmt.Errorf("%w: ListForClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForClient: successfully fetched %d appointments for client=%q", len(appointments), clientName)
	return models.FromDomainAppointmentList(appointments, false), nil
}

// DeleteAt удаляет запись на позиции position (с нуля) и возвращает её.
// Последующие записи сдвигаются на одну позицию.
func (s *Service) DeleteAt(ctx context.Context, position int) (*models.AppointmentResponse, error) {
	s.logger.Info("DeleteAt: deleting appointment at position=%d", position)

	removed, err := s.appointmentRepo.DeleteAt(ctx, position)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("DeleteAt: no appointment at position=%d", position)
			return nil, ErrNotFound
		}
		s.logger.Error("DeleteAt: repository error for position=%d: %v", position, err)
		return nil, fmt.Errorf("%w: DeleteAt - repository error: %v", ErrInternal, err)
	}

	s.metrics.ObserveDeletion(deleteModePosition)
	s.logger.Info("DeleteAt: deleted appointment id=%s from position=%d", removed.ID, position)
	return models.FromDomainAppointment(removed), nil
}

// Delete удаляет запись по ID и возвращает её
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("Delete: deleting appointment id=%s", id)

	removed, err := s.appointmentRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return nil, ErrNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.metrics.ObserveDeletion(deleteModeID)
	s.logger.Info("Delete: deleted appointment id=%s", id)
	return models.FromDomainAppointment(removed), nil
}
