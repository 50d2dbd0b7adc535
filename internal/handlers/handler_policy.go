package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portssvc "github.com/SscSPs/daily_sales_posting/internal/core/ports/services"
	"github.com/SscSPs/daily_sales_posting/internal/dto"
	"github.com/SscSPs/daily_sales_posting/internal/middleware"
	"github.com/gin-gonic/gin"
)

// policyHandler handles HTTP requests related to sales posting policies.
type policyHandler struct {
	policyService portssvc.PolicySvcFacade
}

// RegisterPolicyRoutes registers the per-organization policy routes.
func RegisterPolicyRoutes(rg *gin.RouterGroup, policyService portssvc.PolicySvcFacade) {
	h := &policyHandler{policyService: policyService}

	policy := rg.Group("/organizations/:orgID/sales-posting-policy")
	{
		policy.GET("", h.getPolicy)
		policy.PUT("", h.setPolicy)
		policy.POST("/validate", h.validatePolicy)
		policy.GET("/suggestions", h.suggestMappings)
		policy.POST("/default", h.createDefaultPolicy)
	}
}

// getPolicy godoc
// @Summary Get the sales posting policy
// @Tags policy
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Success 200 {object} dto.PolicyResponse
// @Failure 404 {object} map[string]string "Policy not configured"
// @Failure 500 {object} map[string]string "Failed to retrieve policy"
// @Security BearerAuth
// @Router /api/v1/organizations/{orgID}/sales-posting-policy [get]
func (h *policyHandler) getPolicy(c *gin.Context) {
	orgID := c.Param("orgID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("organization_id", orgID))

	policy, err := h.policyService.Get(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve policy")
		return
	}
	c.JSON(http.StatusOK, dto.ToPolicyResponse(orgID, policy))
}

// setPolicy godoc
// @Summary Replace the sales posting policy
// @Tags policy
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   policy body dto.SetPolicyRequest true "Role to account mapping"
// @Success 200 {object} dto.PolicyResponse
// @Failure 400 {object} map[string]string "Invalid input format or unknown role"
// @Failure 500 {object} map[string]string "Failed to store policy"
// @Security BearerAuth
// @Router /api/v1/organizations/{orgID}/sales-posting-policy [put]
func (h *policyHandler) setPolicy(c *gin.Context) {
	orgID := c.Param("orgID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("organization_id", orgID))

	var req dto.SetPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetPolicy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	policy := req.ToDomain()
	if err := h.policyService.Set(c.Request.Context(), orgID, policy); err != nil {
		respondError(c, logger, err, "Failed to store policy")
		return
	}
	c.JSON(http.StatusOK, dto.ToPolicyResponse(orgID, &policy))
}

// validatePolicy godoc
// @Summary Validate a policy against the chart of accounts
// @Description Validates the body when given, otherwise the stored policy.
// @Tags policy
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   policy body dto.SetPolicyRequest false "Policy to validate"
// @Success 200 {object} dto.PolicyValidationResponse
// @Failure 404 {object} map[string]string "No body and no stored policy"
// @Failure 500 {object} map[string]string "Failed to validate policy"
// @Security BearerAuth
// @Router /api/v1/organizations/{orgID}/sales-posting-policy/validate [post]
func (h *policyHandler) validatePolicy(c *gin.Context) {
	orgID := c.Param("orgID")
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("organization_id", orgID))

	var policy domain.SalesPostingPolicy
	if c.Request.ContentLength > 0 {
		var req dto.SetPolicyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for ValidatePolicy", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
		policy = req.ToDomain()
	} else {
		stored, err := h.policyService.Get(ctx, orgID)
		if err != nil {
			respondError(c, logger, err, "Failed to validate policy")
			return
		}
		policy = *stored
	}

	validation, err := h.policyService.Validate(ctx, orgID, policy)
	if err != nil {
		respondError(c, logger, err, "Failed to validate policy")
		return
	}
	c.JSON(http.StatusOK, dto.ToPolicyValidationResponse(validation))
}

// suggestMappings godoc
// @Summary Suggest account mappings from the chart of accounts
// @Tags policy
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Success 200 {object} dto.PolicySuggestionsResponse
// @Failure 500 {object} map[string]string "Failed to suggest mappings"
// @Security BearerAuth
// @Router /api/v1/organizations/{orgID}/sales-posting-policy/suggestions [get]
func (h *policyHandler) suggestMappings(c *gin.Context) {
	orgID := c.Param("orgID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("organization_id", orgID))

	suggestions, err := h.policyService.SuggestMappings(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger, err, "Failed to suggest mappings")
		return
	}
	c.JSON(http.StatusOK, dto.ToPolicySuggestionsResponse(orgID, suggestions))
}

// createDefaultPolicy godoc
// @Summary Create a policy from suggested mappings
// @Description Stores the suggestions as the policy when every role resolves to an active account.
// @Tags policy
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Success 201 {object} dto.PolicyResponse
// @Failure 400 {object} map[string]string "Suggestions incomplete"
// @Failure 500 {object} map[string]string "Failed to create default policy"
// @Security BearerAuth
// @Router /api/v1/organizations/{orgID}/sales-posting-policy/default [post]
func (h *policyHandler) createDefaultPolicy(c *gin.Context) {
	orgID := c.Param("orgID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("organization_id", orgID))

	policy, err := h.policyService.CreateDefault(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger, err, "Failed to create default policy")
		return
	}
	logger.Info("Default sales posting policy created")
	c.JSON(http.StatusCreated, dto.ToPolicyResponse(orgID, policy))
}
