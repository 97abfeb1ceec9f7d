package router

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

func HttpRealIP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		xForwardedFor := c.Get(http.CanonicalHeaderKey("X-Forwarded-For"))
		if xForwardedFor != "" {
			parts := strings.Split(xForwardedFor, ",")
			if len(parts) > 0 {
				c.Locals("remote_ip", strings.TrimSpace(parts[0]))
			}
		} else {
			xRealIP := c.Get(http.CanonicalHeaderKey("X-Real-IP"))
			if xRealIP != "" {
				c.Locals("remote_ip", strings.TrimSpace(xRealIP))
			}
		}
		return c.Next()
	}
}

// HttpRequestID tags every request with a UUID for log correlation.
func HttpRequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals("request_id", requestID)
		c.Set("X-Request-ID", requestID)
		return c.Next()
	}
}

const (
	// Idle visitors are swept once the map grows past the threshold, so the
	// limiter state stays bounded over the process lifetime.
	visitorIdleTTL        = 3 * time.Minute
	visitorSweepThreshold = 256
)

type visitorEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitorLimiters struct {
	mu        sync.Mutex
	visitors  map[string]*visitorEntry
	perSecond int
	burst     int
	now       func() time.Time
}

func newVisitorLimiters(perSecond int, burst int) *visitorLimiters {
	if perSecond <= 0 {
		perSecond = 20
	}
	if burst <= 0 {
		burst = perSecond * 2
	}
	return &visitorLimiters{
		visitors:  make(map[string]*visitorEntry),
		perSecond: perSecond,
		burst:     burst,
		now:       time.Now,
	}
}

func (v *visitorLimiters) get(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	if len(v.visitors) >= visitorSweepThreshold {
		v.sweepLocked(now)
	}

	entry, ok := v.visitors[ip]
	if !ok {
		entry = &visitorEntry{limiter: rate.NewLimiter(rate.Limit(v.perSecond), v.burst)}
		v.visitors[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

func (v *visitorLimiters) sweepLocked(now time.Time) {
	for ip, entry := range v.visitors {
		if now.Sub(entry.lastSeen) > visitorIdleTTL {
			delete(v.visitors, ip)
		}
	}
}

func (v *visitorLimiters) size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.visitors)
}

// HttpRateLimit enforces a per-client token bucket keyed by remote IP.
func HttpRateLimit(perSecond int, burst int) fiber.Handler {
	limiters := newVisitorLimiters(perSecond, burst)

	return func(c *fiber.Ctx) error {
		ip := c.IP()
		if v := c.Locals("remote_ip"); v != nil {
			if s, ok := v.(string); ok && s != "" {
				ip = s
			}
		}
		if !limiters.get(ip).Allow() {
			return failure(c, fiber.StatusTooManyRequests, "Too many requests")
		}
		return c.Next()
	}
}
