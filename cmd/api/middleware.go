// cmd/api/middleware.go
// This file contains HTTP middleware used to wrap the router.
// Middleware functions intercept every request before it reaches a handler.
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// recoverPanic catches any runtime panic that occurs in a downstream handler
// and answers with a 500 envelope instead of dropping the connection.
func (app *applicationDependencies) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// logRequests tags each request with an id (echoed in X-Request-Id) and logs
// method, path, status, latency and client address once the handler returns.
func (app *applicationDependencies) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		app.logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("latency_ms", time.Since(start)).
			Str("ip", r.RemoteAddr).
			Msg("HTTP Request")
	})
}

// client holds a per-IP rate limiter and the time it was last seen.
// lastSeen lets us evict old entries so the map does not grow forever.
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters is the per-IP token bucket table behind rateLimit.
type clientLimiters struct {
	mu      sync.Mutex
	clients map[string]*client
	rps     float64
	burst   int
}

func newClientLimiters(rps float64, burst int) *clientLimiters {
	return &clientLimiters{
		clients: make(map[string]*client),
		rps:     rps,
		burst:   burst,
	}
}

// allow consumes one token from ip's bucket, creating the bucket on first sight.
func (l *clientLimiters) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, found := l.clients[ip]
	if !found {
		c = &client{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// evict drops every client not seen within maxIdle of now.
func (l *clientLimiters) evict(now time.Time, maxIdle time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, c := range l.clients {
		if now.Sub(c.lastSeen) > maxIdle {
			delete(l.clients, ip)
		}
	}
}

func (l *clientLimiters) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// evictLoop runs evict every interval until ctx is done.
func (l *clientLimiters) evictLoop(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.evict(now, maxIdle)
		}
	}
}

// rateLimit implements per-IP token-bucket rate limiting using the
// golang.org/x/time/rate package, sized by the limiter config.
// A background goroutine evicts clients idle for 3 minutes until ctx is done.
// When the limiter is disabled next is returned unwrapped.
func (app *applicationDependencies) rateLimit(ctx context.Context, next http.Handler) http.Handler {
	if !app.config.limiter.enabled {
		return next
	}

	limiters := newClientLimiters(app.config.limiter.rps, app.config.limiter.burst)
	go limiters.evictLoop(ctx, time.Minute, 3*time.Minute)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		if !limiters.allow(ip, time.Now()) {
			app.rateLimitExceededResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
