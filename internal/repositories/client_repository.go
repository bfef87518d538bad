package repositories

import (
	"errors"
	"fmt"

	"fiscaldesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrClientInUse    = errors.New("client is referenced by invoices or worked hours")
)

// clientRepository implements ClientRepositoryInterface
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) ClientRepositoryInterface {
	return &clientRepository{
		db: db,
	}
}

// Create creates a new client
func (r *clientRepository) Create(client *models.Client) error {
	if err := r.db.Create(client).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// GetByID retrieves a client by ID
func (r *clientRepository) GetByID(id uuid.UUID) (*models.Client, error) {
	client := &models.Client{ID: id}
	if err := r.db.First(client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

// GetAll retrieves all clients ordered by name
func (r *clientRepository) GetAll() ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.Order("name ASC").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	return clients, nil
}

// Update updates an existing client
func (r *clientRepository) Update(client *models.Client) error {
	result := r.db.Model(client).Updates(map[string]interface{}{
		"name":        client.Name,
		"hourly_rate": client.HourlyRate,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

// Delete removes a client unless invoices or worked hours still reference it
func (r *clientRepository) Delete(id uuid.UUID) error {
	var invoiceCount int64
	if err := r.db.Model(&models.Invoice{}).Where("client_id = ?", id).Count(&invoiceCount).Error; err != nil {
		return fmt.Errorf("failed to count invoices for client: %w", err)
	}
	var hourCount int64
	if err := r.db.Model(&models.WorkedHour{}).Where("client_id = ?", id).Count(&hourCount).Error; err != nil {
		return fmt.Errorf("failed to count worked hours for client: %w", err)
	}
	if invoiceCount > 0 || hourCount > 0 {
		return ErrClientInUse
	}

	result := r.db.Delete(&models.Client{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
