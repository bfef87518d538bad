package services

import (
	"time"

	"fiscaldesk/internal/models"
	"fiscaldesk/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Clock supplies the current time to every operation that defaults to "now",
// so tests can pin a fixed date. Production wiring passes time.Now.
type Clock func() time.Time

// ExpenseSummaryServiceInterface aggregates raw expense rows into totals and
// per-category breakdowns
type ExpenseSummaryServiceInterface interface {
	// SummarizeExpenses filters by optional category and inclusive date range
	SummarizeExpenses(filters models.ExpenseFilters) (*models.ExpenseSummary, error)
}

// InvoiceSummaryServiceInterface aggregates raw invoice rows into totals
// split by payment status
type InvoiceSummaryServiceInterface interface {
	SummarizeInvoices(filters models.InvoiceFilters) (*models.InvoiceSummary, error)
}

// DashboardServiceInterface composes the yearly dashboard summary
type DashboardServiceInterface interface {
	// GetDashboardSummary restricts both summaries to a calendar year,
	// defaulting to the current one
	GetDashboardSummary(year *int) (*models.DashboardSummary, error)
}

// ChartServiceInterface builds the dashboard chart datasets
type ChartServiceInterface interface {
	// BuildIncomeExpenseSeries produces a zero-filled monthly series: exactly
	// months points ending at the current month, or the 12 months of the
	// given year
	BuildIncomeExpenseSeries(months int, year *int) ([]models.ChartPoint, error)

	// BuildCategoryPie produces the per-category expense breakdown for a
	// calendar year, defaulting to the current one
	BuildCategoryPie(year *int) ([]models.CategoryBreakdown, error)
}

// RevenueLimitServiceInterface tracks invoiced revenue against the flat-tax
// regime's annual ceiling
type RevenueLimitServiceInterface interface {
	GetAnnualRevenueLimit(year *int) (*models.AnnualLimitStatus, error)
}

// TaxProjectionServiceInterface computes the monthly tax/salary projection
type TaxProjectionServiceInterface interface {
	GetMonthlyOverview(year, month int, params models.TaxParams) (*models.MonthlyOverview, error)
}

// ReportServiceInterface builds the per-client monthly worked-hours report
type ReportServiceInterface interface {
	BuildMonthlyReport(clientID uuid.UUID, year, month int) (*models.MonthlyReport, error)
}

// ReportRendererInterface turns an already-grouped, already-rounded monthly
// report into a binary document. Renderers perform no aggregation.
type ReportRendererInterface interface {
	Render(report *models.MonthlyReport, currencySymbol string) ([]byte, error)
	ContentType() string
}

// MetricsRecorderInterface abstracts the metrics backend for services
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}

// CategoryServiceInterface manages expense categories
type CategoryServiceInterface interface {
	CreateCategory(name, color string) (*models.Category, error)
	GetCategory(id uuid.UUID) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	UpdateCategory(id uuid.UUID, name, color *string) (*models.Category, error)
	DeleteCategory(id uuid.UUID) error
}

// ExpenseServiceInterface manages expense records
type ExpenseServiceInterface interface {
	CreateExpense(amount decimal.Decimal, categoryID uuid.UUID, expenseDate time.Time, notes string) (*models.Expense, error)
	GetExpense(id uuid.UUID) (*models.Expense, error)
	GetExpenses(offset, limit int) ([]models.Expense, int64, error)
	UpdateExpense(id uuid.UUID, update ExpenseUpdate) (*models.Expense, error)
	DeleteExpense(id uuid.UUID) error
}

// ExpenseUpdate carries the optional fields of an expense update; nil means
// "leave unchanged"
type ExpenseUpdate struct {
	Amount      *decimal.Decimal
	CategoryID  *uuid.UUID
	ExpenseDate *time.Time
	Notes       *string
}

// InvoiceServiceInterface manages invoices and their status lifecycle
type InvoiceServiceInterface interface {
	CreateInvoice(input InvoiceInput) (*models.Invoice, error)
	GetInvoice(id uuid.UUID) (*models.Invoice, error)
	GetInvoices(offset, limit int) ([]models.Invoice, int64, error)
	UpdateInvoice(id uuid.UUID, input InvoiceInput) (*models.Invoice, error)
	UpdateInvoiceStatus(id uuid.UUID, status string, paidDate *time.Time) (*models.Invoice, error)
	DeleteInvoice(id uuid.UUID) error
}

// InvoiceInput carries the caller-settable invoice fields; tax and total
// amounts are always derived, never accepted from the caller
type InvoiceInput struct {
	Number    string
	ClientID  *uuid.UUID
	Amount    decimal.Decimal
	TaxRate   decimal.Decimal
	IssueDate time.Time
	DueDate   time.Time
}

// ClientServiceInterface manages billable clients
type ClientServiceInterface interface {
	CreateClient(name string, hourlyRate decimal.Decimal) (*models.Client, error)
	GetClient(id uuid.UUID) (*models.Client, error)
	GetClients() ([]models.Client, error)
	UpdateClient(id uuid.UUID, name *string, hourlyRate *decimal.Decimal) (*models.Client, error)
	DeleteClient(id uuid.UUID) error
}

// WorkedHourServiceInterface manages time-log entries. Creation caches the
// billed amount from the client's current hourly rate.
type WorkedHourServiceInterface interface {
	LogHours(clientID uuid.UUID, workedDate time.Time, hours decimal.Decimal, note string) (*models.WorkedHour, error)
	GetEntry(id uuid.UUID) (*models.WorkedHour, error)
	GetEntries(offset, limit int) ([]models.WorkedHour, int64, error)
	UpdateEntry(id uuid.UUID, update WorkedHourUpdate) (*models.WorkedHour, error)
	DeleteEntry(id uuid.UUID) error
}

// WorkedHourUpdate carries the optional fields of a worked-hour update; nil
// means "leave unchanged". Changing hours re-caches the billed amount at the
// client's current rate.
type WorkedHourUpdate struct {
	WorkedDate *time.Time
	Hours      *decimal.Decimal
	Note       *string
}

// SettingsServiceInterface exposes the single-row settings record
type SettingsServiceInterface interface {
	GetSettings() (models.Settings, error)
	UpdateSettings(patch repositories.SettingsPatch) (models.Settings, error)
}
