package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fiscaldesk/internal/dto"
	"fiscaldesk/internal/models"
	"fiscaldesk/internal/services"
	"fiscaldesk/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// CategoryHandlerSuite defines the test suite for CategoryHandler
type CategoryHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockCategoryServiceInterface
	handler     *CategoryHandler
	echo        *echo.Echo
}

// SetupTest runs before each test in the suite
func (s *CategoryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

// TearDownTest runs after each test in the suite
func (s *CategoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestCategoryHandlerSuite runs the test suite
func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerSuite))
}

func (s *CategoryHandlerSuite) createContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *CategoryHandlerSuite) TestCreateCategory_Success() {
	reqBody := dto.CreateCategoryRequest{Name: "Software", Color: "#3B82F6"}

	expected := &models.Category{
		ID:    uuid.New(),
		Name:  "Software",
		Color: "#3B82F6",
	}

	s.mockService.EXPECT().
		CreateCategory("Software", "#3B82F6").
		Return(expected, nil)

	c, rec := s.createContext(http.MethodPost, "/categories", reqBody)

	err := s.handler.CreateCategory(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var resp models.Category
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(expected.ID, resp.ID)
	s.Equal("Software", resp.Name)
}

func (s *CategoryHandlerSuite) TestCreateCategory_InvalidColor() {
	reqBody := dto.CreateCategoryRequest{Name: "Software", Color: "blue"}

	c, rec := s.createContext(http.MethodPost, "/categories", reqBody)

	err := s.handler.CreateCategory(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("VALIDATION_001", resp.Error.Code)
}

func (s *CategoryHandlerSuite) TestCreateCategory_DuplicateName() {
	reqBody := dto.CreateCategoryRequest{Name: "Software", Color: "#3B82F6"}

	s.mockService.EXPECT().
		CreateCategory("Software", "#3B82F6").
		Return(nil, services.ErrCategoryNameTaken)

	c, rec := s.createContext(http.MethodPost, "/categories", reqBody)

	err := s.handler.CreateCategory(c)
	s.NoError(err)
	s.Equal(http.StatusConflict, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("CATEGORY_002", resp.Error.Code)
}

func (s *CategoryHandlerSuite) TestGetCategory_NotFound() {
	id := uuid.New()

	s.mockService.EXPECT().
		GetCategory(id).
		Return(nil, services.ErrCategoryNotFound)

	c, rec := s.createContext(http.MethodGet, "/categories/"+id.String(), nil)
	c.SetParamNames("categoryId")
	c.SetParamValues(id.String())

	err := s.handler.GetCategory(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *CategoryHandlerSuite) TestGetCategory_InvalidID() {
	c, rec := s.createContext(http.MethodGet, "/categories/not-a-uuid", nil)
	c.SetParamNames("categoryId")
	c.SetParamValues("not-a-uuid")

	err := s.handler.GetCategory(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("VALIDATION_006", resp.Error.Code)
}

func (s *CategoryHandlerSuite) TestGetCategories_Success() {
	categories := []models.Category{
		{ID: uuid.New(), Name: "Hardware", Color: "#EF4444"},
		{ID: uuid.New(), Name: "Software", Color: "#3B82F6"},
	}

	s.mockService.EXPECT().
		GetCategories().
		Return(categories, nil)

	c, rec := s.createContext(http.MethodGet, "/categories", nil)

	err := s.handler.GetCategories(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.CategoryListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.Total)
	s.Len(resp.Categories, 2)
}

func (s *CategoryHandlerSuite) TestDeleteCategory_InUse() {
	id := uuid.New()

	s.mockService.EXPECT().
		DeleteCategory(id).
		Return(services.ErrCategoryReferenced)

	c, rec := s.createContext(http.MethodDelete, "/categories/"+id.String(), nil)
	c.SetParamNames("categoryId")
	c.SetParamValues(id.String())

	err := s.handler.DeleteCategory(c)
	s.NoError(err)
	s.Equal(http.StatusConflict, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("CATEGORY_003", resp.Error.Code)
}
