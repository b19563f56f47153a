package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/yigit/uniregistry/internal/app/models/dto"
)

// RateLimit rejects requests with 429 once the shared token bucket is empty
func RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeTooManyRequests, "Too many requests").WithSeverity(dto.ErrorSeverityWarning),
			))
			return
		}
		c.Next()
	}
}
