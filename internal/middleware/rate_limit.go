package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/paullizer/WildfireRiskManagementAgent/internal/common"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/constants"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/metrics"
)

const (
	limiterIdleTTL      = 10 * time.Minute
	limiterCleanupEvery = 5 * time.Minute
)

// RateLimiter applies a token bucket per client IP. Buckets idle for
// limiterIdleTTL are dropped.
type RateLimiter struct {
	mu          sync.Mutex
	limiters    *cache.Cache
	limit       rate.Limit
	burst       int
	whitelisted map[string]bool
	metricsReg  *metrics.MetricsRegistry
}

// NewRateLimiter allows rps requests per second with the given burst for each
// client IP. Whitelisted IPs bypass the limiter. metricsReg may be nil.
func NewRateLimiter(rps float64, burst int, metricsReg *metrics.MetricsRegistry, whitelist ...string) *RateLimiter {
	wl := make(map[string]bool, len(whitelist))
	for _, ip := range whitelist {
		wl[ip] = true
	}
	return &RateLimiter{
		limiters:    cache.New(limiterIdleTTL, limiterCleanupEvery),
		limit:       rate.Limit(rps),
		burst:       burst,
		whitelisted: wl,
		metricsReg:  metricsReg,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, found := rl.limiters.Get(ip); found {
		limiter := v.(*rate.Limiter)
		rl.limiters.SetDefault(ip, limiter) // refresh idle expiry
		return limiter
	}
	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters.SetDefault(ip, limiter)
	return limiter
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if rl.whitelisted[ip] {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(ip).Allow() {
			if rl.metricsReg != nil {
				rl.metricsReg.RateLimitedTotal.Inc()
			}
			common.RespondError(w, http.StatusTooManyRequests, constants.MsgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
