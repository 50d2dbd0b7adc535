package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	portssvc "github.com/SscSPs/daily_sales_posting/internal/core/ports/services"
	"github.com/SscSPs/daily_sales_posting/internal/dto"
	"github.com/SscSPs/daily_sales_posting/internal/middleware"
	"github.com/gin-gonic/gin"
)

// schedulerHandler handles manual and cron triggers of the daily sales posting run.
type schedulerHandler struct {
	scheduler portssvc.SchedulerSvc
	now       func() time.Time
}

func newSchedulerHandler(scheduler portssvc.SchedulerSvc, now func() time.Time) *schedulerHandler {
	if now == nil {
		now = time.Now
	}
	return &schedulerHandler{scheduler: scheduler, now: now}
}

// RegisterSchedulerRoutes registers the authenticated manual trigger.
func RegisterSchedulerRoutes(rg *gin.RouterGroup, scheduler portssvc.SchedulerSvc) {
	h := newSchedulerHandler(scheduler, nil)
	rg.POST("/scheduler/daily-sales", h.dailySales)
}

// RegisterCronRoutes registers the cron trigger on an already authenticated group. now is the
// clock used for the target-minute check; nil means time.Now.
func RegisterCronRoutes(rg *gin.RouterGroup, scheduler portssvc.SchedulerSvc, now func() time.Time) {
	h := newSchedulerHandler(scheduler, now)
	rg.POST("/daily-sales", h.cronDailySales)
}

// dailySales godoc
// @Summary Run or inspect the daily sales posting scheduler
// @Description run_now posts the given day (default yesterday, UTC) for the given or all organizations; get_config returns the scheduler configuration.
// @Tags scheduler
// @Accept  json
// @Produce  json
// @Param   request body dto.DailySalesRequest true "Action and optional day/organizations"
// @Success 200 {object} dto.DailySalesRunResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to run daily sales posting"
// @Security BearerAuth
// @Router /api/v1/scheduler/daily-sales [post]
func (h *schedulerHandler) dailySales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DailySalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for daily sales trigger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if req.Action == dto.SchedulerActionGetConfig {
		c.JSON(http.StatusOK, dto.ToSchedulerConfigResponse(h.scheduler.Config()))
		return
	}

	day := domain.PreviousDay(h.now())
	if req.Day != "" {
		parsed, err := domain.ParseDay(req.Day)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		day = parsed
	}

	logger.Info("Manual daily sales posting requested",
		slog.String("day", domain.FormatDay(day)),
		slog.Int("organization_count", len(req.OrganizationIDs)))

	h.run(c, logger, day, req.OrganizationIDs)
}

// cronDailySales godoc
// @Summary Cron trigger for the daily sales posting run
// @Description Posts yesterday for every organization when the scheduler is enabled and the configured target minute has come, or always with force=true.
// @Tags scheduler
// @Produce  json
// @Param   X-Cron-Secret header string true "Cron trigger secret"
// @Param   force query bool false "Run regardless of the target minute"
// @Success 200 {object} dto.DailySalesRunResponse
// @Failure 401 {object} map[string]string "Invalid cron secret"
// @Failure 500 {object} map[string]string "Failed to run daily sales posting"
// @Router /cron/daily-sales [post]
func (h *schedulerHandler) cronDailySales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	now := h.now()
	force := c.Query("force") == "true"

	if !h.scheduler.Config().Enabled && !force {
		c.JSON(http.StatusOK, dto.CronSkippedResponse{Skipped: true, Reason: "scheduler disabled"})
		return
	}
	if !force && !h.scheduler.IsScheduledTime(now) {
		logger.Debug("Cron trigger outside target time", slog.Time("now", now))
		c.JSON(http.StatusOK, dto.CronSkippedResponse{Skipped: true, Reason: "not scheduled time"})
		return
	}

	logger.Info("Cron daily sales posting triggered", slog.Bool("force", force))
	h.run(c, logger, domain.PreviousDay(now), nil)
}

func (h *schedulerHandler) run(c *gin.Context, logger *slog.Logger, day time.Time, orgIDs []string) {
	results, err := h.scheduler.RunForAllOrganizations(c.Request.Context(), &day, orgIDs)
	if err != nil {
		respondError(c, logger, err, "Failed to run daily sales posting")
		return
	}
	c.JSON(http.StatusOK, dto.ToDailySalesRunResponse(day, results))
}
