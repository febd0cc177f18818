// Package ratelimit provides request rate limiting using a token bucket per
// client and endpoint. AI endpoints get the strictest budgets since each call
// spends model quota.
package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// tokenBucket allows a number of requests per window with steady refill.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

func (tb *tokenBucket) status() (remaining int, resetTime time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	remaining = int(tb.tokens)
	if tb.tokens < float64(tb.capacity) {
		secondsUntilFull := (float64(tb.capacity) - tb.tokens) / tb.refillRate
		resetTime = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	} else {
		resetTime = now
	}
	return remaining, resetTime
}

// Info describes the rate limit state after a decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// EndpointConfig sets the budget for one path prefix and method.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (prefix match)
	Method string        // HTTP method
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	EndpointConfigs []EndpointConfig
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the built-in per-endpoint budgets.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: model-backed endpoints, strictest limits
		{Path: "/ai/generate", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
		{Path: "/ai/analyze", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},

		// Tier 2: credential endpoints, kept tight against brute force
		{Path: "/auth/register", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		// Tier 3: resume writes
		{Path: "/resume", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/resume/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/resume/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},

		// Reads fall through to the default limit.
	}
}

// Limiter manages token buckets for multiple clients.
type Limiter struct {
	buckets map[string]*tokenBucket
	mu      sync.RWMutex
	config  *Config
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:       true,
			DefaultLimit:  1000,
			DefaultWindow: time.Minute,
		}
	}
	return &Limiter{
		buckets: make(map[string]*tokenBucket),
		config:  config,
	}
}

// Allow decides whether a request from clientID to the endpoint may proceed.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	// Health checks stay unlimited.
	if endpoint == "/health" {
		return true, Info{Allowed: true}
	}

	cfg := l.match(endpoint, method)

	bucketKey := clientID + ":" + cfg.Path + ":" + cfg.Method
	bucket := l.getBucket(bucketKey, cfg)

	allowed := bucket.allow()
	remaining, resetTime := bucket.status()

	var retryAfter time.Duration
	if !allowed {
		retryAfter = max(time.Until(resetTime), 0)
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      cfg.Limit,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}
}

// match finds the most specific endpoint budget, falling back to the default.
func (l *Limiter) match(endpoint, method string) EndpointConfig {
	best := EndpointConfig{
		Path:   "",
		Method: "",
		Limit:  l.config.DefaultLimit,
		Window: l.config.DefaultWindow,
	}
	bestLen := -1
	for _, cfg := range l.config.EndpointConfigs {
		if cfg.Method != method {
			continue
		}
		if !strings.HasPrefix(endpoint, cfg.Path) {
			continue
		}
		if len(cfg.Path) > bestLen {
			best = cfg
			bestLen = len(cfg.Path)
		}
	}
	return best
}

func (l *Limiter) getBucket(key string, cfg EndpointConfig) *tokenBucket {
	l.mu.RLock()
	bucket, exists := l.buckets[key]
	l.mu.RUnlock()
	if exists {
		return bucket
	}

	refillRate := float64(cfg.Limit) / cfg.Window.Seconds()
	capacity := cfg.Burst
	if capacity <= 0 {
		capacity = cfg.Limit
	}
	bucket = newTokenBucket(capacity, refillRate)

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, exists := l.buckets[key]; exists {
		return existing
	}
	l.buckets[key] = bucket
	return bucket
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
