package config

import (
	"strconv"
	"time"
)

// RateLimitConfig controls the Redis token bucket placed in front of the AI
// routes.  The limiter is a pass-through when Enabled is false or no Redis
// client could be created.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	KeyStrategy    string
	Prefix         string
	Debug          bool
}

// LoadRateLimitConfig reads the limiter settings from the environment only.
func LoadRateLimitConfig() RateLimitConfig {
	return source{}.rateLimit()
}

func (s source) rateLimit() RateLimitConfig {
	def := RateLimitConfig{
		Enabled:        s.envBool("RATE_LIMIT_ENABLED", true),
		Capacity:       s.envInt("RATE_LIMIT_CAPACITY", 30),
		RefillTokens:   s.envInt("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: s.envDur("RATE_LIMIT_REFILL_INTERVAL", 2*time.Second),
		TTL:            s.envDur("RATE_LIMIT_TTL", 10*time.Minute),
		KeyStrategy:    s.envStr("RATE_LIMIT_KEY_STRATEGY", "ip_route"),
		Prefix:         s.envStr("RATE_LIMIT_PREFIX", "simbaid:rl"),
		Debug:          s.envBool("RATE_LIMIT_DEBUG", false),
	}
	if def.Capacity < 1 {
		def.Capacity = 1
	}
	if def.RefillTokens < 1 {
		def.RefillTokens = 1
	}
	if def.RefillInterval <= 0 {
		def.RefillInterval = time.Second
	}
	// keep buckets alive for at least a few refill periods
	if minTTL := 5 * def.RefillInterval; def.TTL < minTTL {
		def.TTL = minTTL
	}
	return def
}

func (s source) envStr(k, d string) string {
	if v, ok := s.lookup(k); ok {
		return v
	}
	return d
}

func (s source) envBool(k string, d bool) bool {
	v, ok := s.lookup(k)
	if !ok {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func (s source) envInt(k string, d int) int {
	v, ok := s.lookup(k)
	if !ok {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func (s source) envDur(k string, d time.Duration) time.Duration {
	v, ok := s.lookup(k)
	if !ok {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
