package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fiscaldesk/internal/models"
	"fiscaldesk/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrClientReferenced  = errors.New("client still referenced by invoices or worked hours")
	ErrInvalidHourlyRate = errors.New("hourly rate must be positive")
)

type clientService struct {
	clientRepo repositories.ClientRepositoryInterface
}

// NewClientService creates a new client service
func NewClientService(clientRepo repositories.ClientRepositoryInterface) ClientServiceInterface {
	return &clientService{
		clientRepo: clientRepo,
	}
}

func (s *clientService) CreateClient(name string, hourlyRate decimal.Decimal) (*models.Client, error) {
	if hourlyRate.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidHourlyRate
	}

	client := &models.Client{
		Name:       name,
		HourlyRate: hourlyRate.Round(2),
	}

	if err := s.clientRepo.Create(client); err != nil {
		slog.Error("failed to create client", "name", name, "error", err)
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	slog.Info("client created", "client_id", client.ID, "name", client.Name)
	return client, nil
}

func (s *clientService) GetClient(id uuid.UUID) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClients() ([]models.Client, error) {
	clients, err := s.clientRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) UpdateClient(id uuid.UUID, name *string, hourlyRate *decimal.Decimal) (*models.Client, error) {
	client, err := s.GetClient(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		client.Name = *name
	}
	if hourlyRate != nil {
		if hourlyRate.LessThanOrEqual(decimal.Zero) {
			return nil, ErrInvalidHourlyRate
		}
		// Rate changes do not touch existing cached worked-hour amounts
		client.HourlyRate = hourlyRate.Round(2)
	}

	if err := s.clientRepo.Update(client); err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		slog.Error("failed to update client", "client_id", id, "error", err)
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}

func (s *clientService) DeleteClient(id uuid.UUID) error {
	if err := s.clientRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return ErrClientNotFound
		}
		if errors.Is(err, repositories.ErrClientInUse) {
			return ErrClientReferenced
		}
		slog.Error("failed to delete client", "client_id", id, "error", err)
		return fmt.Errorf("failed to delete client: %w", err)
	}

	slog.Info("client deleted", "client_id", id)
	return nil
}
