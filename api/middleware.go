package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"

	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext returns the authenticated caller. The identity comes from
// the verified token only; request bodies never carry it.
func UserIDFromContext(ctx context.Context) (sharedtypes.UserID, bool) {
	userID, ok := ctx.Value(userIDKey).(sharedtypes.UserID)
	return userID, ok
}

// authenticator verifies the bearer token and stores the subject as the
// caller's user id.
func authenticator(secret string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				respondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims,
				func(*jwt.Token) (interface{}, error) { return []byte(secret), nil },
				jwt.WithValidMethods([]string{"HS256"}),
			)
			if err != nil || !token.Valid || claims.Subject == "" {
				logger.DebugContext(r.Context(), "Rejected bearer token", slog.Any("error", err))
				respondError(w, http.StatusUnauthorized, "invalid bearer token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, sharedtypes.UserID(claims.Subject))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// clientLimiters hands out one token bucket per caller and forgets idle ones.
type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rate     rate.Limit
	burst    int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiters(perSecond float64, burst int) *clientLimiters {
	return &clientLimiters{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}
}

func (c *clientLimiters) allow(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	l, ok := c.limiters[key]
	if !ok {
		l = &clientLimiter{limiter: rate.NewLimiter(c.rate, c.burst)}
		c.limiters[key] = l
	}
	l.lastSeen = now

	if len(c.limiters) > 1024 {
		for k, v := range c.limiters {
			if now.Sub(v.lastSeen) > 10*time.Minute {
				delete(c.limiters, k)
			}
		}
	}

	return l.limiter.Allow()
}

// rateLimiter throttles per authenticated user, falling back to the remote
// address for anything that slipped past auth.
func rateLimiter(perSecond float64, burst int) func(http.Handler) http.Handler {
	limiters := newClientLimiters(perSecond, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.RemoteAddr
			if userID, ok := UserIDFromContext(r.Context()); ok {
				key = string(userID)
			}

			if !limiters.allow(key) {
				respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger logs one line per request with status and latency.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.InfoContext(r.Context(), "Request handled",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
