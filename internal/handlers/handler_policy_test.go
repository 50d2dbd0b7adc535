package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	"github.com/SscSPs/daily_sales_posting/internal/core/services"
	"github.com/SscSPs/daily_sales_posting/internal/dto"
	"github.com/SscSPs/daily_sales_posting/internal/handlers"
	"github.com/SscSPs/daily_sales_posting/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PolicyHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockPolicy *MockPolicyService
	token      string
}

func (suite *PolicyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockPolicy = new(MockPolicyService)
	suite.token = generateTestToken(suite.T(), "operator-1")

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret, testJWTIssuer))
	handlers.RegisterPolicyRoutes(v1, suite.mockPolicy)
}

func (suite *PolicyHandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		req, _ = http.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func policyPath(orgID, suffix string) string {
	return fmt.Sprintf("/api/v1/organizations/%s/sales-posting-policy%s", orgID, suffix)
}

func mappedPolicy() *domain.SalesPostingPolicy {
	accounts := make(map[domain.AccountRole]string, len(domain.RequiredAccountRoles))
	for _, role := range domain.RequiredAccountRoles {
		accounts[role] = "acc-" + string(role)
	}
	return &domain.SalesPostingPolicy{SchemaVersion: domain.PolicySchemaVersion, Accounts: accounts}
}

func (suite *PolicyHandlerTestSuite) TestGet_Success() {
	suite.mockPolicy.On("Get", mock.Anything, "org-1").Return(mappedPolicy(), nil).Once()

	w := suite.do(http.MethodGet, policyPath("org-1", ""), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PolicyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("org-1", resp.OrganizationID)
	suite.Equal("acc-vat_liability", resp.Accounts["vat_liability"])
	suite.Len(resp.Accounts, len(domain.RequiredAccountRoles))
}

func (suite *PolicyHandlerTestSuite) TestGet_NotConfigured() {
	suite.mockPolicy.On("Get", mock.Anything, "org-1").Return(nil, services.ErrPolicyNotFound).Once()

	w := suite.do(http.MethodGet, policyPath("org-1", ""), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PolicyHandlerTestSuite) TestSet_Success() {
	suite.mockPolicy.On("Set", mock.Anything, "org-1", mock.MatchedBy(func(p domain.SalesPostingPolicy) bool {
		return p.Account(domain.RoleCashClearing) == "acc-cash" && p.Grouping.ByBranch
	})).Return(nil).Once()

	w := suite.do(http.MethodPut, policyPath("org-1", ""), dto.SetPolicyRequest{
		Accounts: map[string]string{"cash_clearing": "acc-cash"},
		Grouping: dto.PolicyGrouping{ByBranch: true},
	})

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.PolicyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.PolicySchemaVersion, resp.SchemaVersion)
	suite.mockPolicy.AssertExpectations(suite.T())
}

func (suite *PolicyHandlerTestSuite) TestSet_UnknownRole() {
	suite.mockPolicy.On("Set", mock.Anything, "org-1", mock.Anything).
		Return(fmt.Errorf("%w: unknown account role %q", services.ErrPolicyInvalid, "cogs")).Once()

	w := suite.do(http.MethodPut, policyPath("org-1", ""), dto.SetPolicyRequest{
		Accounts: map[string]string{"cogs": "acc-cogs"},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "cogs")
}

func (suite *PolicyHandlerTestSuite) TestSet_MissingAccounts() {
	w := suite.do(http.MethodPut, policyPath("org-1", ""), gin.H{"grouping": gin.H{"by_branch": true}})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPolicy.AssertNotCalled(suite.T(), "Set", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PolicyHandlerTestSuite) TestValidate_Body() {
	suite.mockPolicy.On("Validate", mock.Anything, "org-1", mock.MatchedBy(func(p domain.SalesPostingPolicy) bool {
		return p.Account(domain.RoleServiceRevenue) == "acc-missing"
	})).Return(&domain.PolicyValidation{
		IsValid: false,
		Errors:  []string{"service_revenue: account acc-missing not found"},
	}, nil).Once()

	w := suite.do(http.MethodPost, policyPath("org-1", "/validate"), dto.SetPolicyRequest{
		Accounts: map[string]string{"service_revenue": "acc-missing"},
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PolicyValidationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.IsValid)
	suite.Len(resp.Errors, 1)
	suite.mockPolicy.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything)
}

func (suite *PolicyHandlerTestSuite) TestValidate_StoredPolicy() {
	stored := mappedPolicy()
	suite.mockPolicy.On("Get", mock.Anything, "org-1").Return(stored, nil).Once()
	suite.mockPolicy.On("Validate", mock.Anything, "org-1", *stored).
		Return(&domain.PolicyValidation{IsValid: true}, nil).Once()

	w := suite.do(http.MethodPost, policyPath("org-1", "/validate"), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"is_valid":true,"errors":[]}`, w.Body.String())
	suite.mockPolicy.AssertExpectations(suite.T())
}

func (suite *PolicyHandlerTestSuite) TestValidate_NoBodyNoStoredPolicy() {
	suite.mockPolicy.On("Get", mock.Anything, "org-1").Return(nil, services.ErrPolicyNotFound).Once()

	w := suite.do(http.MethodPost, policyPath("org-1", "/validate"), nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPolicy.AssertNotCalled(suite.T(), "Validate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PolicyHandlerTestSuite) TestSuggestions_ListsMissingRoles() {
	suite.mockPolicy.On("SuggestMappings", mock.Anything, "org-1").Return(map[domain.AccountRole]string{
		domain.RoleCashClearing:   "acc-cash",
		domain.RoleVATLiability:   "acc-vat",
		domain.RoleServiceRevenue: "acc-svc",
	}, nil).Once()

	w := suite.do(http.MethodGet, policyPath("org-1", "/suggestions"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PolicySuggestionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("acc-cash", resp.Suggestions["cash_clearing"])
	suite.Len(resp.Missing, len(domain.RequiredAccountRoles)-3)
	suite.Contains(resp.Missing, "rounding_diff")
	suite.NotContains(resp.Missing, "vat_liability")
}

func (suite *PolicyHandlerTestSuite) TestCreateDefault() {
	suite.mockPolicy.On("CreateDefault", mock.Anything, "org-1").Return(mappedPolicy(), nil).Once()

	w := suite.do(http.MethodPost, policyPath("org-1", "/default"), nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PolicyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Accounts, len(domain.RequiredAccountRoles))
}

func (suite *PolicyHandlerTestSuite) TestCreateDefault_Incomplete() {
	suite.mockPolicy.On("CreateDefault", mock.Anything, "org-1").
		Return(nil, fmt.Errorf("%w: missing account mapping for rounding_diff", services.ErrPolicyInvalid)).Once()

	w := suite.do(http.MethodPost, policyPath("org-1", "/default"), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "rounding_diff")
}

func TestPolicyHandler(t *testing.T) {
	suite.Run(t, new(PolicyHandlerTestSuite))
}
