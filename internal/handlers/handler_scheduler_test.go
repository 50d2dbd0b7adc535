package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	"github.com/SscSPs/daily_sales_posting/internal/dto"
	"github.com/SscSPs/daily_sales_posting/internal/handlers"
	"github.com/SscSPs/daily_sales_posting/internal/middleware"
	"github.com/SscSPs/daily_sales_posting/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret-key-that-is-long-enough"
	testJWTIssuer = "daily-sales-test"
	testCronToken = "cron-secret-for-tests"
)

// generateTestToken creates a signed operator token for the auth middleware.
func generateTestToken(t *testing.T, subject string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    testJWTIssuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}

// --- Test Suite ---
type SchedulerHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockScheduler *MockSchedulerService
	now           time.Time
}

func (suite *SchedulerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockScheduler = new(MockSchedulerService)
	suite.now = time.Date(2025, 3, 15, 19, 59, 10, 0, time.UTC)

	cronHash, err := utils.HashSecret(testCronToken)
	suite.Require().NoError(err)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret, testJWTIssuer))
	handlers.RegisterSchedulerRoutes(v1, suite.mockScheduler)

	cron := suite.router.Group("/cron", middleware.CronAuthMiddleware(cronHash))
	handlers.RegisterCronRoutes(cron, suite.mockScheduler, func() time.Time { return suite.now })
}

func (suite *SchedulerHandlerTestSuite) postJSON(path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SchedulerHandlerTestSuite) bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + generateTestToken(suite.T(), "operator-1")}
}

func matchDay(expected string) any {
	return mock.MatchedBy(func(d *time.Time) bool {
		return d != nil && domain.FormatDay(*d) == expected
	})
}

func (suite *SchedulerHandlerTestSuite) TestRunNow_ExplicitDayAndOrganizations() {
	results := []domain.PostingResult{
		{OrganizationID: "org-1", BranchID: "b-1", Day: "2025-03-10", Success: true, TransactionID: "tx-1", Attempts: 1, TotalAmount: decimal.RequireFromString("115.5"), TransactionCount: 3},
		{OrganizationID: "org-2", Day: "2025-03-10", Success: false, Error: "fiscal period is closed", Attempts: 1},
	}
	suite.mockScheduler.On("RunForAllOrganizations", mock.Anything, matchDay("2025-03-10"), []string{"org-1", "org-2"}).
		Return(results, nil).Once()

	w := suite.postJSON("/api/v1/scheduler/daily-sales", dto.DailySalesRequest{
		Action:          dto.SchedulerActionRunNow,
		Day:             "2025-03-10",
		OrganizationIDs: []string{"org-1", "org-2"},
	}, suite.bearer())

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DailySalesRunResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-03-10", resp.Day)
	suite.Len(resp.Results, 2)
	suite.Equal("115.50", resp.Results[0].TotalAmount)
	suite.Equal(2, resp.Summary.Total)
	suite.Equal(1, resp.Summary.Successful)
	suite.Equal(1, resp.Summary.Failed)
	suite.Equal("115.50", resp.Summary.TotalAmount)
	suite.mockScheduler.AssertExpectations(suite.T())
}

func (suite *SchedulerHandlerTestSuite) TestRunNow_DefaultsToYesterday() {
	suite.mockScheduler.On("RunForAllOrganizations", mock.Anything, mock.Anything, []string(nil)).
		Return([]domain.PostingResult{}, nil).Once()

	w := suite.postJSON("/api/v1/scheduler/daily-sales", gin.H{"action": "run_now"}, suite.bearer())

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DailySalesRunResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.FormatDay(domain.PreviousDay(time.Now())), resp.Day)
	suite.Equal("0.00", resp.Summary.TotalAmount)
}

func (suite *SchedulerHandlerTestSuite) TestGetConfig() {
	suite.mockScheduler.On("Config").Return(domain.SchedulerConfig{
		Enabled:       true,
		Timezone:      "Asia/Dubai",
		TargetTime:    "23:59",
		RetryAttempts: 3,
		RetryDelay:    30 * time.Second,
	})

	w := suite.postJSON("/api/v1/scheduler/daily-sales", gin.H{"action": "get_config"}, suite.bearer())

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SchedulerConfigResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Asia/Dubai", resp.Timezone)
	suite.Equal("30s", resp.RetryDelay)
	suite.Equal([]string{}, resp.OrganizationIDs)
	suite.mockScheduler.AssertNotCalled(suite.T(), "RunForAllOrganizations", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SchedulerHandlerTestSuite) TestRejectsBadRequests() {
	cases := map[string]gin.H{
		"unknown action": {"action": "post_everything"},
		"missing action": {"day": "2025-03-10"},
		"bad day":        {"action": "run_now", "day": "10/03/2025"},
	}
	for name, body := range cases {
		suite.Run(name, func() {
			w := suite.postJSON("/api/v1/scheduler/daily-sales", body, suite.bearer())
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockScheduler.AssertNotCalled(suite.T(), "RunForAllOrganizations", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SchedulerHandlerTestSuite) TestRunNow_RequiresToken() {
	w := suite.postJSON("/api/v1/scheduler/daily-sales", gin.H{"action": "run_now"}, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *SchedulerHandlerTestSuite) TestRunNow_OrganizationListingFails() {
	suite.mockScheduler.On("RunForAllOrganizations", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	w := suite.postJSON("/api/v1/scheduler/daily-sales", gin.H{"action": "run_now"}, suite.bearer())

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to run daily sales posting")
	suite.NotContains(w.Body.String(), "connection refused")
}

func (suite *SchedulerHandlerTestSuite) cronHeaders() map[string]string {
	return map[string]string{middleware.CronSecretHeader: testCronToken}
}

func (suite *SchedulerHandlerTestSuite) TestCron_RunsAtScheduledTime() {
	suite.mockScheduler.On("Config").Return(domain.SchedulerConfig{Enabled: true})
	suite.mockScheduler.On("IsScheduledTime", suite.now).Return(true).Once()
	suite.mockScheduler.On("RunForAllOrganizations", mock.Anything, matchDay("2025-03-14"), []string(nil)).
		Return([]domain.PostingResult{{OrganizationID: "org-1", Day: "2025-03-14", Success: true}}, nil).Once()

	w := suite.postJSON("/cron/daily-sales", nil, suite.cronHeaders())

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DailySalesRunResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-03-14", resp.Day)
	suite.Equal(1, resp.Summary.Successful)
	suite.mockScheduler.AssertExpectations(suite.T())
}

func (suite *SchedulerHandlerTestSuite) TestCron_SkipsOutsideTargetMinute() {
	suite.mockScheduler.On("Config").Return(domain.SchedulerConfig{Enabled: true})
	suite.mockScheduler.On("IsScheduledTime", suite.now).Return(false).Once()

	w := suite.postJSON("/cron/daily-sales", nil, suite.cronHeaders())

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CronSkippedResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Skipped)
	suite.Equal("not scheduled time", resp.Reason)
	suite.mockScheduler.AssertNotCalled(suite.T(), "RunForAllOrganizations", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SchedulerHandlerTestSuite) TestCron_SkipsWhenDisabled() {
	suite.mockScheduler.On("Config").Return(domain.SchedulerConfig{Enabled: false})

	w := suite.postJSON("/cron/daily-sales", nil, suite.cronHeaders())

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "scheduler disabled")
	suite.mockScheduler.AssertNotCalled(suite.T(), "IsScheduledTime", mock.Anything)
}

func (suite *SchedulerHandlerTestSuite) TestCron_ForceIgnoresClockAndSwitch() {
	suite.mockScheduler.On("Config").Return(domain.SchedulerConfig{Enabled: false})
	suite.mockScheduler.On("RunForAllOrganizations", mock.Anything, matchDay("2025-03-14"), []string(nil)).
		Return([]domain.PostingResult{}, nil).Once()

	w := suite.postJSON("/cron/daily-sales?force=true", nil, suite.cronHeaders())

	suite.Equal(http.StatusOK, w.Code)
	suite.mockScheduler.AssertNotCalled(suite.T(), "IsScheduledTime", mock.Anything)
	suite.mockScheduler.AssertExpectations(suite.T())
}

func (suite *SchedulerHandlerTestSuite) TestCron_RejectsWrongSecret() {
	w := suite.postJSON("/cron/daily-sales", nil, map[string]string{middleware.CronSecretHeader: "guess"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.postJSON("/cron/daily-sales", nil, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	suite.mockScheduler.AssertNotCalled(suite.T(), "Config")
}

// --- Run Test Suite ---
func TestSchedulerHandler(t *testing.T) {
	suite.Run(t, new(SchedulerHandlerTestSuite))
}
