package identity

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// SignInLimiter throttles sign-in attempts per email.
type SignInLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rps       rate.Limit
	burst     int
	lastSweep time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewSignInLimiter allows perMinute attempts per email with a small burst.
func NewSignInLimiter(perMinute, burst int) *SignInLimiter {
	return &SignInLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

// Allow reports whether another attempt for email may proceed now.
func (l *SignInLimiter) Allow(email string) bool {
	return l.allowAt(strings.ToLower(email), time.Now())
}

func (l *SignInLimiter) allowAt(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > time.Minute {
		cutoff := now.Add(-5 * time.Minute)
		for k, v := range l.visitors {
			if v.lastSeen.Before(cutoff) {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}
