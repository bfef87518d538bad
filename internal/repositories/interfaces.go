package repositories

import (
	"time"

	"fiscaldesk/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
}

// ExpenseRepositoryInterface defines the contract for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id uuid.UUID) (*models.Expense, error)
	GetAll(offset, limit int) ([]models.Expense, int64, error)
	GetByDateRange(startDate, endDate time.Time) ([]models.Expense, error)
	GetWithFilters(filters models.ExpenseFilters) ([]models.Expense, error)
	Update(expense *models.Expense) error
	Delete(id uuid.UUID) error
}

// InvoiceRepositoryInterface defines the contract for invoice repository operations
type InvoiceRepositoryInterface interface {
	Create(invoice *models.Invoice) error
	GetByID(id uuid.UUID) (*models.Invoice, error)
	GetAll(offset, limit int) ([]models.Invoice, int64, error)
	GetByIssueDateRange(startDate, endDate time.Time) ([]models.Invoice, error)
	GetWithFilters(filters models.InvoiceFilters) ([]models.Invoice, error)
	Update(invoice *models.Invoice) error
	UpdateStatus(id uuid.UUID, status string, paidDate *time.Time) error
	Delete(id uuid.UUID) error
}

// ClientRepositoryInterface defines the contract for client repository operations
type ClientRepositoryInterface interface {
	Create(client *models.Client) error
	GetByID(id uuid.UUID) (*models.Client, error)
	GetAll() ([]models.Client, error)
	Update(client *models.Client) error
	Delete(id uuid.UUID) error
}

// WorkedHourRepositoryInterface defines the contract for worked-hour repository operations
type WorkedHourRepositoryInterface interface {
	Create(entry *models.WorkedHour) error
	GetByID(id uuid.UUID) (*models.WorkedHour, error)
	// GetByClientAndDateRange returns entries ordered by worked date, then by
	// insertion order, so report grouping preserves arrival order within a day
	GetByClientAndDateRange(clientID uuid.UUID, startDate, endDate time.Time) ([]models.WorkedHour, error)
	GetAll(offset, limit int) ([]models.WorkedHour, int64, error)
	Update(entry *models.WorkedHour) error
	Delete(id uuid.UUID) error
}

// SettingsRepositoryInterface defines the contract for the single-row settings record
type SettingsRepositoryInterface interface {
	// Get returns the settings snapshot, creating the default row on first use
	Get() (models.Settings, error)
	// Update applies the non-nil fields of the patch
	Update(patch SettingsPatch) (models.Settings, error)
}

// SettingsPatch is an explicit tagged set of optional settings fields; nil
// means "leave unchanged"
type SettingsPatch struct {
	DefaultVATRate      *decimal.Decimal
	Currency            *string
	CurrencySymbol      *string
	TargetSalary        *decimal.Decimal
	TaxablePercentage   *decimal.Decimal
	IncomeTaxRate       *decimal.Decimal
	HealthInsuranceRate *decimal.Decimal
}
