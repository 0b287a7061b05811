package ratelimiter

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow(ip string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]int //string:UserIP, int count
	limit   int
	window  time.Duration
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]int),
		limit:   limit,
		window:  window,
	}
}

// Allow counts a request from ip. Once the limit is reached it reports false
// together with the window length as a retry hint.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	count, exists := rl.clients[ip]
	if exists && count >= rl.limit {
		return false, rl.window
	}

	if !exists {
		time.AfterFunc(rl.window, func() { rl.reset(ip) })
	}
	rl.clients[ip]++
	return true, 0
}

func (rl *FixedWindowRateLimiter) reset(ip string) {
	rl.Lock()
	delete(rl.clients, ip)
	rl.Unlock()
}
