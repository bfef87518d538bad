package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fiscaldesk/internal/dto"
	"fiscaldesk/internal/models"
	"fiscaldesk/internal/services"
	"fiscaldesk/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// WorkedHourHandlerSuite defines the test suite for WorkedHourHandler
type WorkedHourHandlerSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockService  *service_mocks.MockWorkedHourServiceInterface
	mockReports  *service_mocks.MockReportServiceInterface
	mockRenderer *service_mocks.MockReportRendererInterface
	mockSettings *service_mocks.MockSettingsServiceInterface
	handler      *WorkedHourHandler
	echo         *echo.Echo
	testClientID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *WorkedHourHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockWorkedHourServiceInterface(s.ctrl)
	s.mockReports = service_mocks.NewMockReportServiceInterface(s.ctrl)
	s.mockRenderer = service_mocks.NewMockReportRendererInterface(s.ctrl)
	s.mockSettings = service_mocks.NewMockSettingsServiceInterface(s.ctrl)
	s.handler = NewWorkedHourHandler(s.mockService, s.mockReports, s.mockRenderer, s.mockSettings)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.testClientID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *WorkedHourHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestWorkedHourHandlerSuite runs the test suite
func TestWorkedHourHandlerSuite(t *testing.T) {
	suite.Run(t, new(WorkedHourHandlerSuite))
}

func (s *WorkedHourHandlerSuite) createContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
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

func (s *WorkedHourHandlerSuite) TestLogHours_Success() {
	reqBody := dto.LogHoursRequest{
		ClientID:   s.testClientID.String(),
		WorkedDate: "2024-03-05",
		Hours:      "2.5",
		Note:       "API integration",
	}

	expected := &models.WorkedHour{
		ID:       uuid.New(),
		ClientID: s.testClientID,
		Hours:    decimal.NewFromFloat(2.5),
		Note:     "API integration",
	}

	s.mockService.EXPECT().
		LogHours(s.testClientID, gomock.Any(), gomock.Any(), "API integration").
		DoAndReturn(func(clientID uuid.UUID, workedDate time.Time, hours decimal.Decimal, note string) (*models.WorkedHour, error) {
			s.True(hours.Equal(decimal.NewFromFloat(2.5)))
			return expected, nil
		})

	c, rec := s.createContext(http.MethodPost, "/worked-hours", reqBody)

	err := s.handler.LogHours(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *WorkedHourHandlerSuite) TestLogHours_BadDate() {
	reqBody := dto.LogHoursRequest{
		ClientID:   s.testClientID.String(),
		WorkedDate: "05/03/2024",
		Hours:      "2.5",
	}

	c, rec := s.createContext(http.MethodPost, "/worked-hours", reqBody)

	err := s.handler.LogHours(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *WorkedHourHandlerSuite) TestLogHours_NonPositiveHours() {
	reqBody := dto.LogHoursRequest{
		ClientID:   s.testClientID.String(),
		WorkedDate: "2024-03-05",
		Hours:      "0",
	}

	s.mockService.EXPECT().
		LogHours(s.testClientID, gomock.Any(), gomock.Any(), "").
		Return(nil, services.ErrNonPositiveHours)

	c, rec := s.createContext(http.MethodPost, "/worked-hours", reqBody)

	err := s.handler.LogHours(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("CLIENT_005", resp.Error.Code)
}

func (s *WorkedHourHandlerSuite) TestGetMonthlyReport_JSON() {
	report := &models.MonthlyReport{
		Client: models.Client{ID: s.testClientID, Name: "Acme", HourlyRate: decimal.NewFromInt(50)},
		Period: models.ReportPeriod{StartDate: "2024-03-01", EndDate: "2024-03-31"},
		GroupedEntries: []models.ReportGroup{
			{Date: "2024-03-05", Hours: decimal.NewFromFloat(3.5), Amount: decimal.RequireFromString("175.00"), Notes: []string{"setup", "review"}},
			{Date: "2024-03-06", Hours: decimal.NewFromInt(3), Amount: decimal.RequireFromString("150.00"), Notes: []string{}},
		},
		Totals: models.ReportTotals{Hours: decimal.NewFromFloat(6.5), Amount: decimal.RequireFromString("325.00")},
	}

	s.mockReports.EXPECT().
		BuildMonthlyReport(s.testClientID, 2024, 3).
		Return(report, nil)

	c, rec := s.createContext(http.MethodGet, "/clients/"+s.testClientID.String()+"/report?year=2024&month=3", nil)
	c.SetParamNames("clientId")
	c.SetParamValues(s.testClientID.String())

	err := s.handler.GetMonthlyReport(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp models.MonthlyReport
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.GroupedEntries, 2)
	s.Equal("325", resp.Totals.Amount.String())
}

func (s *WorkedHourHandlerSuite) TestGetMonthlyReport_TextFormat() {
	report := &models.MonthlyReport{
		Client: models.Client{ID: s.testClientID, Name: "Acme"},
	}
	rendered := []byte("Acme - March 2024")

	s.mockReports.EXPECT().
		BuildMonthlyReport(s.testClientID, 2024, 3).
		Return(report, nil)
	s.mockSettings.EXPECT().
		GetSettings().
		Return(models.Settings{CurrencySymbol: "€"}, nil)
	s.mockRenderer.EXPECT().
		Render(report, "€").
		Return(rendered, nil)
	s.mockRenderer.EXPECT().
		ContentType().
		Return("text/plain; charset=utf-8")

	c, rec := s.createContext(http.MethodGet, "/clients/"+s.testClientID.String()+"/report?year=2024&month=3&format=text", nil)
	c.SetParamNames("clientId")
	c.SetParamValues(s.testClientID.String())

	err := s.handler.GetMonthlyReport(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Acme - March 2024", rec.Body.String())
}

func (s *WorkedHourHandlerSuite) TestGetMonthlyReport_ClientNotFound() {
	s.mockReports.EXPECT().
		BuildMonthlyReport(s.testClientID, 2024, 3).
		Return(nil, services.ErrClientNotFound)

	c, rec := s.createContext(http.MethodGet, "/clients/"+s.testClientID.String()+"/report?year=2024&month=3", nil)
	c.SetParamNames("clientId")
	c.SetParamValues(s.testClientID.String())

	err := s.handler.GetMonthlyReport(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *WorkedHourHandlerSuite) TestGetMonthlyReport_MissingMonth() {
	c, rec := s.createContext(http.MethodGet, "/clients/"+s.testClientID.String()+"/report?year=2024", nil)
	c.SetParamNames("clientId")
	c.SetParamValues(s.testClientID.String())

	err := s.handler.GetMonthlyReport(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("REPORT_001", resp.Error.Code)
}
