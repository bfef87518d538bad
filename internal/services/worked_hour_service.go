package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fiscaldesk/internal/models"
	"fiscaldesk/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEntryNotFound    = errors.New("worked hour entry not found")
	ErrNonPositiveHours = errors.New("hours must be positive")
)

type workedHourService struct {
	workedHourRepo repositories.WorkedHourRepositoryInterface
	clientRepo     repositories.ClientRepositoryInterface
}

// NewWorkedHourService creates a new worked-hour service
func NewWorkedHourService(
	workedHourRepo repositories.WorkedHourRepositoryInterface,
	clientRepo repositories.ClientRepositoryInterface,
) WorkedHourServiceInterface {
	return &workedHourService{
		workedHourRepo: workedHourRepo,
		clientRepo:     clientRepo,
	}
}

// LogHours records a time-log entry. The billed amount is cached from the
// client's current hourly rate at insert time, so later rate changes do not
// rewrite history.
func (s *workedHourService) LogHours(clientID uuid.UUID, workedDate time.Time, hours decimal.Decimal, note string) (*models.WorkedHour, error) {
	if hours.LessThanOrEqual(decimal.Zero) {
		return nil, ErrNonPositiveHours
	}

	client, err := s.clientRepo.GetByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	entry := &models.WorkedHour{
		ClientID:   clientID,
		WorkedDate: workedDate,
		Hours:      hours,
		Note:       note,
	}
	entry.CacheAmount(client.HourlyRate)

	if err := s.workedHourRepo.Create(entry); err != nil {
		slog.Error("failed to create worked hour entry", "client_id", clientID, "error", err)
		return nil, fmt.Errorf("failed to create worked hour entry: %w", err)
	}

	slog.Info("hours logged",
		"entry_id", entry.ID,
		"client_id", clientID,
		"hours", entry.Hours.String(),
		"amount_cached", entry.AmountCached.String())
	return entry, nil
}

func (s *workedHourService) GetEntry(id uuid.UUID) (*models.WorkedHour, error) {
	entry, err := s.workedHourRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrWorkedHourNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get worked hour entry: %w", err)
	}
	return entry, nil
}

func (s *workedHourService) GetEntries(offset, limit int) ([]models.WorkedHour, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	entries, total, err := s.workedHourRepo.GetAll(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list worked hour entries: %w", err)
	}
	return entries, total, nil
}

func (s *workedHourService) UpdateEntry(id uuid.UUID, update WorkedHourUpdate) (*models.WorkedHour, error) {
	entry, err := s.GetEntry(id)
	if err != nil {
		return nil, err
	}

	if update.WorkedDate != nil {
		entry.WorkedDate = *update.WorkedDate
	}
	if update.Note != nil {
		entry.Note = *update.Note
	}
	if update.Hours != nil {
		if update.Hours.LessThanOrEqual(decimal.Zero) {
			return nil, ErrNonPositiveHours
		}
		entry.Hours = *update.Hours

		// Changed hours re-cache at the client's current rate
		client, err := s.clientRepo.GetByID(entry.ClientID)
		if err != nil {
			return nil, fmt.Errorf("failed to get client for re-caching: %w", err)
		}
		entry.CacheAmount(client.HourlyRate)
	}

	if err := s.workedHourRepo.Update(entry); err != nil {
		if errors.Is(err, repositories.ErrWorkedHourNotFound) {
			return nil, ErrEntryNotFound
		}
		slog.Error("failed to update worked hour entry", "entry_id", id, "error", err)
		return nil, fmt.Errorf("failed to update worked hour entry: %w", err)
	}

	return entry, nil
}

func (s *workedHourService) DeleteEntry(id uuid.UUID) error {
	if err := s.workedHourRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrWorkedHourNotFound) {
			return ErrEntryNotFound
		}
		slog.Error("failed to delete worked hour entry", "entry_id", id, "error", err)
		return fmt.Errorf("failed to delete worked hour entry: %w", err)
	}

	slog.Info("worked hour entry deleted", "entry_id", id)
	return nil
}
