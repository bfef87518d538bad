package repositories

import (
	"testing"
	"time"

	"fiscaldesk/internal/database"
	"fiscaldesk/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestCategoryRepository(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

type CategoryRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CategoryRepositoryInterface
}

func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
}

func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Create() {
	category := &models.Category{
		Name:  "Software",
		Color: "#4287f5",
	}

	err := s.repo.Create(category)
	s.NoError(err)
	s.NotEqual(uuid.Nil, category.ID)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_GetByName() {
	category := &models.Category{Name: "Travel", Color: "#42f554"}
	s.NoError(s.repo.Create(category))

	found, err := s.repo.GetByName("Travel")
	s.NoError(err)
	s.Equal(category.ID, found.ID)

	_, err = s.repo.GetByName("Nonexistent")
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_GetAll_OrderedByName() {
	for _, name := range []string{"Travel", "Accountant", "Software"} {
		s.NoError(s.repo.Create(&models.Category{Name: name, Color: "#000000"}))
	}

	categories, err := s.repo.GetAll()
	s.NoError(err)
	s.Len(categories, 3)
	s.Equal("Accountant", categories[0].Name)
	s.Equal("Software", categories[1].Name)
	s.Equal("Travel", categories[2].Name)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_DeleteInUse() {
	category := &models.Category{Name: "Hardware", Color: "#f54242"}
	s.NoError(s.repo.Create(category))

	expense := &models.Expense{
		Amount:      decimal.NewFromFloat(99.90),
		CategoryID:  category.ID,
		ExpenseDate: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
	}
	s.NoError(s.db.Create(expense).Error)

	err := s.repo.Delete(category.ID)
	s.Equal(ErrCategoryInUse, err)

	// Still retrievable
	_, err = s.repo.GetByID(category.ID)
	s.NoError(err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Delete() {
	category := &models.Category{Name: "Training", Color: "#f5a442"}
	s.NoError(s.repo.Create(category))

	s.NoError(s.repo.Delete(category.ID))

	_, err := s.repo.GetByID(category.ID)
	s.Equal(ErrCategoryNotFound, err)
}
