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
	ErrClientNotFound = errors.New("client not found")
)

type reportService struct {
	clientRepo     repositories.ClientRepositoryInterface
	workedHourRepo repositories.WorkedHourRepositoryInterface
	metrics        MetricsRecorderInterface
}

func NewReportService(
	clientRepo repositories.ClientRepositoryInterface,
	workedHourRepo repositories.WorkedHourRepositoryInterface,
	metrics MetricsRecorderInterface,
) ReportServiceInterface {
	return &reportService{
		clientRepo:     clientRepo,
		workedHourRepo: workedHourRepo,
		metrics:        metrics,
	}
}

func (s *reportService) BuildMonthlyReport(clientID uuid.UUID, year, month int) (*models.MonthlyReport, error) {
	started := time.Now()

	startDate, endDate, err := MonthBounds(year, month)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			slog.Warn("client not found for monthly report",
				"client_id", clientID,
				"error", err)
			return nil, ErrClientNotFound
		}
		slog.Error("failed to get client for monthly report",
			"client_id", clientID,
			"error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	entries, err := s.workedHourRepo.GetByClientAndDateRange(clientID, startDate, endDate)
	if err != nil {
		slog.Error("failed to fetch worked hours for monthly report",
			"client_id", clientID,
			"error", err)
		return nil, fmt.Errorf("failed to fetch worked hours: %w", err)
	}

	grouped := groupEntriesByDate(entries, client.HourlyRate)

	report := &models.MonthlyReport{
		Client: *client,
		Period: models.ReportPeriod{
			StartDate: startDate.Format(ISODateFormat),
			EndDate:   endDate.Format(ISODateFormat),
		},
		Entries:        entries,
		GroupedEntries: grouped,
		Totals:         reportTotals(grouped),
	}

	s.metrics.IncrementCounter("monthly_report_generated", map[string]string{
		"client": client.Name,
	})
	s.metrics.RecordProcessingTime("monthly_report", time.Since(started))

	slog.Info("monthly report generated",
		"client_id", clientID,
		"year", year,
		"month", month,
		"entry_count", len(entries),
		"group_count", len(grouped))

	return report, nil
}

// groupEntriesByDate folds time-log entries into one group per calendar day.
// Hours are summed raw then rounded once per group. The group amount prefers
// the sum of the stored per-entry amounts; when any entry in the day lacks a
// cached amount the whole day is recomputed from raw hours times the rate,
// so the two paths cannot be mixed within a group. Notes keep arrival order.
func groupEntriesByDate(entries []models.WorkedHour, hourlyRate decimal.Decimal) []models.ReportGroup {
	type dayBucket struct {
		rawHours  decimal.Decimal
		cached    decimal.Decimal
		allCached bool
		notes     []string
	}

	order := make([]string, 0, len(entries))
	buckets := make(map[string]*dayBucket)

	for i := range entries {
		entry := &entries[i]
		day := entry.WorkedDate.Format(ISODateFormat)

		b, ok := buckets[day]
		if !ok {
			b = &dayBucket{rawHours: decimal.Zero, cached: decimal.Zero, allCached: true}
			buckets[day] = b
			order = append(order, day)
		}

		b.rawHours = b.rawHours.Add(entry.Hours)
		if entry.HasCachedAmount() {
			b.cached = b.cached.Add(entry.AmountCached)
		} else {
			b.allCached = false
		}

		if entry.Note != "" {
			b.notes = append(b.notes, entry.Note)
		}
	}

	// Repository ordering is by worked date, so insertion order is already
	// chronological ascending
	groups := make([]models.ReportGroup, 0, len(order))
	for _, day := range order {
		b := buckets[day]

		amount := b.cached
		if !b.allCached {
			amount = RoundMoney(b.rawHours.Mul(hourlyRate))
		}

		notes := b.notes
		if notes == nil {
			notes = []string{}
		}

		groups = append(groups, models.ReportGroup{
			Date:   day,
			Hours:  RoundMoney(b.rawHours),
			Amount: amount,
			Notes:  notes,
		})
	}

	return groups
}

func reportTotals(groups []models.ReportGroup) models.ReportTotals {
	hours := decimal.Zero
	amount := decimal.Zero

	for i := range groups {
		hours = hours.Add(groups[i].Hours)
		amount = amount.Add(groups[i].Amount)
	}

	return models.ReportTotals{
		Hours:  RoundMoney(hours),
		Amount: RoundMoney(amount),
	}
}
