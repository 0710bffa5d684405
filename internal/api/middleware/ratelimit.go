package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers"
)

const msgTooManyRequests = "too many requests, please try again later"

// RateLimitRecorder метрика отклоненных запросов
type RateLimitRecorder interface {
	ObserveRateLimited(route string)
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов с одного IP
type RateLimiter struct {
	limit      rate.Limit
	burst      int
	idleTTL    time.Duration
	trustProxy bool
	metrics    RateLimitRecorder
	now        func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewRateLimiter perMinute запросов в минуту с запасом burst.
// Лимитеры IP, неактивных дольше idleTTL, удаляет Run.
func NewRateLimiter(perMinute, burst int, idleTTL time.Duration, trustProxy bool, metrics RateLimitRecorder) *RateLimiter {
	return &RateLimiter{
		limit:      rate.Limit(float64(perMinute) / 60),
		burst:      burst,
		idleTTL:    idleTTL,
		trustProxy: trustProxy,
		metrics:    metrics,
		now:        time.Now,
		visitors:   make(map[string]*visitor),
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = rl.now()
	return v.limiter
}

// Limit middleware, отвечает 429 при превышении лимита
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return rl.LimitUnless(nil, next)
}

// LimitExternal как Limit, но пропускает внутренние вызовы: визард ходит
// в booking API этого же процесса через loopback без X-Forwarded-For
func (rl *RateLimiter) LimitExternal(next http.Handler) http.Handler {
	return rl.LimitUnless(IsInternalRequest, next)
}

// LimitUnless ограничивает только запросы, для которых skip вернул false
func (rl *RateLimiter) LimitUnless(skip func(r *http.Request) bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if skip != nil && skip(r) {
			next.ServeHTTP(w, r)
			return
		}
		if !rl.getLimiter(rl.clientIP(r)).AllowN(rl.now(), 1) {
			if rl.metrics != nil {
				rl.metrics.ObserveRateLimited(routeTemplate(r))
			}
			w.Header().Set("Retry-After", "60")
			handlers.RespondTooManyRequests(w, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Cleanup удаляет неактивные лимитеры, возвращает число удаленных
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	cutoff := rl.now().Add(-rl.idleTTL)
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
			removed++
		}
	}
	return removed
}

// Run периодически чистит лимитеры до отмены контекста
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Cleanup()
		}
	}
}

// IsInternalRequest запрос пришел с loopback напрямую, не через прокси
func IsInternalRequest(r *http.Request) bool {
	if r.Header.Get("X-Forwarded-For") != "" {
		return false
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func (rl *RateLimiter) clientIP(r *http.Request) string {
	if rl.trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			return strings.TrimSpace(first)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
