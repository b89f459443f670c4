package v1

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/xaosao/xaosao-service/internal/domain/customers"
	"github.com/xaosao/xaosao-service/internal/infrastructure/metrics"
)

// customerIDKey is the gin context key the auth middleware stores the
// resolved customer ID under.
const customerIDKey = "customerID"

// CustomerID returns the authenticated customer ID set by SessionAuth.
func CustomerID(ctx *gin.Context) string {
	return ctx.GetString(customerIDKey)
}

// SessionAuth resolves the bearer token to a customer ID and aborts with 401
// when the token is missing, unknown or expired.
func SessionAuth(accountService customers.AccountService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			var errorResponse ErrorResponse
			errorMessage := "missing session token"
			errorResponse.Message = &errorMessage
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse)
			return
		}

		customerID, err := accountService.Resolve(ctx, token)
		if err != nil {
			var errorResponse ErrorResponse
			errorMessage := "invalid session token"
			errorResponse.Message = &errorMessage
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse)
			return
		}

		ctx.Set(customerIDKey, customerID)
		ctx.Next()
	}
}

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := ctx.Cookie("session"); err == nil {
		return cookie
	}
	return ""
}

// RequestMetrics records a counter and latency histogram per route.
func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(ctx.Request.Method, path, http.StatusText(ctx.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(ctx.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// customerLimiter hands out one token bucket per authenticated customer.
type customerLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func (l *customerLimiter) get(customerID string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[customerID]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters[customerID] = limiter
	}
	return limiter
}

// RateLimit throttles a route per customer. It sits behind SessionAuth, so
// the customer ID is always present.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiters := &customerLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}

	return func(ctx *gin.Context) {
		if !limiters.get(CustomerID(ctx)).Allow() {
			var errorResponse ErrorResponse
			errorMessage := "too many requests"
			errorResponse.Message = &errorMessage
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, errorResponse)
			return
		}
		ctx.Next()
	}
}
