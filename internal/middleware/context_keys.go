package middleware

import "github.com/gin-gonic/gin"

// callerIDKey is the key used to store the authenticated caller's ID in the request context.
const callerIDKey = contextKey("callerID")

// GetCallerIDFromContext retrieves the authenticated caller ID (JWT subject, or "cron" for the
// cron trigger) from the request context.
func GetCallerIDFromContext(c *gin.Context) (string, bool) {
	callerID, ok := c.Request.Context().Value(callerIDKey).(string)
	if !ok || callerID == "" {
		return "", false
	}
	return callerID, true
}
