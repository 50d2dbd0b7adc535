package middleware

import (
	"net/http"

	"github.com/SscSPs/daily_sales_posting/internal/utils"
	"github.com/gin-gonic/gin"
)

// CronSecretHeader carries the shared secret of the external cron trigger.
const CronSecretHeader = "X-Cron-Secret"

// cronCallerID identifies requests authenticated by the cron secret.
const cronCallerID = "cron"

// CronAuthMiddleware accepts requests whose X-Cron-Secret header matches the bcrypt hash
// configured as CRON_SECRET_HASH. An empty hash disables the route.
func CronAuthMiddleware(secretHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if secretHash == "" {
			logger.Error("Cron trigger called but CRON_SECRET_HASH is not configured")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Cron trigger is not configured"})
			return
		}

		secret := c.GetHeader(CronSecretHeader)
		if secret == "" || !utils.CheckSecretHash(secret, secretHash) {
			logger.Warn("Cron trigger rejected", "has_secret", secret != "")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid cron secret"})
			return
		}

		setCaller(c, logger, cronCallerID)
		c.Next()
	}
}
