package repositories

import (
	"testing"

	"fiscaldesk/internal/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestSettingsRepository(t *testing.T) {
	suite.Run(t, new(SettingsRepositorySuite))
}

type SettingsRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo SettingsRepositoryInterface
}

func (s *SettingsRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewSettingsRepository(s.db.DB)
}

func (s *SettingsRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SettingsRepositorySuite) TestSettingsRepository_GetCreatesDefaults() {
	settings, err := s.repo.Get()
	s.NoError(err)
	s.NotEqual(uuid.Nil, settings.ID)
	s.True(settings.DefaultVATRate.Equal(decimal.NewFromInt(22)))
	s.Equal("EUR", settings.Currency)
	s.Equal("€", settings.CurrencySymbol)
	s.True(settings.TaxablePercentage.Equal(decimal.NewFromInt(78)))
	s.True(settings.IncomeTaxRate.Equal(decimal.NewFromInt(15)))
	s.True(settings.HealthInsuranceRate.Equal(decimal.NewFromFloat(26.23)))

	// Second read returns the same row, not a new one
	again, err := s.repo.Get()
	s.NoError(err)
	s.Equal(settings.ID, again.ID)
}

func (s *SettingsRepositorySuite) TestSettingsRepository_UpdateAppliesOnlyPatchedFields() {
	original, err := s.repo.Get()
	s.NoError(err)

	salary := decimal.NewFromInt(3000)
	taxRate := decimal.NewFromInt(5)
	patch := SettingsPatch{
		TargetSalary:  &salary,
		IncomeTaxRate: &taxRate,
	}

	updated, err := s.repo.Update(patch)
	s.NoError(err)
	s.True(updated.TargetSalary.Equal(salary))
	s.True(updated.IncomeTaxRate.Equal(taxRate))

	// Unpatched fields keep their values
	s.Equal(original.Currency, updated.Currency)
	s.True(updated.TaxablePercentage.Equal(original.TaxablePercentage))
	s.True(updated.HealthInsuranceRate.Equal(original.HealthInsuranceRate))
}

func (s *SettingsRepositorySuite) TestSettingsRepository_UpdateEmptyPatchIsNoop() {
	original, err := s.repo.Get()
	s.NoError(err)

	updated, err := s.repo.Update(SettingsPatch{})
	s.NoError(err)
	s.Equal(original.ID, updated.ID)
	s.True(updated.TargetSalary.Equal(original.TargetSalary))
}
