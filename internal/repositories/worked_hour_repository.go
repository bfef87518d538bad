package repositories

import (
	"errors"
	"fmt"
	"time"

	"fiscaldesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrWorkedHourNotFound = errors.New("worked hour entry not found")

// workedHourRepository implements WorkedHourRepositoryInterface
type workedHourRepository struct {
	db *gorm.DB
}

// NewWorkedHourRepository creates a new worked-hour repository
func NewWorkedHourRepository(db *gorm.DB) WorkedHourRepositoryInterface {
	return &workedHourRepository{
		db: db,
	}
}

// Create creates a new worked-hour entry
func (r *workedHourRepository) Create(entry *models.WorkedHour) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create worked hour entry: %w", err)
	}
	return nil
}

// GetByID retrieves a worked-hour entry by ID
func (r *workedHourRepository) GetByID(id uuid.UUID) (*models.WorkedHour, error) {
	var entry models.WorkedHour
	if err := r.db.Preload("Client").First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkedHourNotFound
		}
		return nil, fmt.Errorf("failed to get worked hour entry: %w", err)
	}
	return &entry, nil
}

// GetByClientAndDateRange retrieves entries for a client within the inclusive
// range, ordered by worked date then insertion time so same-day entries keep
// their arrival order
func (r *workedHourRepository) GetByClientAndDateRange(clientID uuid.UUID, startDate, endDate time.Time) ([]models.WorkedHour, error) {
	var entries []models.WorkedHour
	if err := r.db.Where("client_id = ? AND worked_date >= ? AND worked_date <= ?", clientID, startDate, endDate).
		Order("worked_date ASC, created_at ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get worked hours for client: %w", err)
	}
	return entries, nil
}

// GetAll retrieves all worked-hour entries with pagination, most recent first
func (r *workedHourRepository) GetAll(offset, limit int) ([]models.WorkedHour, int64, error) {
	var entries []models.WorkedHour
	var total int64

	if err := r.db.Model(&models.WorkedHour{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count worked hour entries: %w", err)
	}

	if err := r.db.Preload("Client").Offset(offset).Limit(limit).
		Order("worked_date DESC, created_at DESC").Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get worked hour entries: %w", err)
	}

	return entries, total, nil
}

// Update updates an existing worked-hour entry
func (r *workedHourRepository) Update(entry *models.WorkedHour) error {
	result := r.db.Model(entry).Updates(map[string]interface{}{
		"client_id":     entry.ClientID,
		"worked_date":   entry.WorkedDate,
		"hours":         entry.Hours,
		"note":          entry.Note,
		"amount_cached": entry.AmountCached,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update worked hour entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWorkedHourNotFound
	}
	return nil
}

// Delete removes a worked-hour entry
func (r *workedHourRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.WorkedHour{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete worked hour entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWorkedHourNotFound
	}
	return nil
}
