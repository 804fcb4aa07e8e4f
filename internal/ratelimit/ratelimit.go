package ratelimit

import (
	"fmt"
	"sync"
	"time"

	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
)

// Limiter is an in-memory fixed window counter per key.
type Limiter struct {
	mu       sync.Mutex
	counters map[string]*counter
	window   time.Duration
	max      int
	done     chan struct{}
	once     sync.Once
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a limiter allowing max requests per key in each window.
func NewLimiter(window time.Duration, max int) *Limiter {
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		done:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Allow counts a request for key and reports whether it is within the limit.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// GetRemaining returns the number of remaining requests for the given key
func (l *Limiter) GetRemaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, exists := l.counters[key]
	if !exists || time.Now().After(c.expiresAt) {
		return l.max
	}

	remaining := l.max - c.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Close stops the cleanup goroutine.
func (l *Limiter) Close() {
	l.once.Do(func() { close(l.done) })
}

func (l *Limiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			now := time.Now()
			for key, c := range l.counters {
				if now.After(c.expiresAt) {
					delete(l.counters, key)
				}
			}
			l.mu.Unlock()
		case <-l.done:
			return
		}
	}
}

// Config sets the per hour limits for each submission form.
type Config struct {
	WaitlistPerIP    int `mapstructure:"waitlist_per_ip"`
	WaitlistPerEmail int `mapstructure:"waitlist_per_email"`
	ContactPerIP     int `mapstructure:"contact_per_ip"`
	ContactPerEmail  int `mapstructure:"contact_per_email"`
	NewsletterPerIP  int `mapstructure:"newsletter_per_ip"`
	CheckoutPerIP    int `mapstructure:"checkout_per_ip"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WaitlistPerIP:    20,
		WaitlistPerEmail: 10,
		ContactPerIP:     5,
		ContactPerEmail:  3,
		NewsletterPerIP:  10,
		CheckoutPerIP:    30,
	}
}

const (
	ipWaitlist    = "ip_waitlist"
	emailWaitlist = "email_waitlist"
	ipContact     = "ip_contact"
	emailContact  = "email_contact"
	ipNewsletter  = "ip_newsletter"
	ipCheckout    = "ip_checkout"
)

// MultiKeyLimiter holds one limiter per submission kind.
type MultiKeyLimiter struct {
	limiters map[string]*Limiter
}

func NewMultiKeyLimiter(c *Config) *MultiKeyLimiter {
	dc := DefaultConfig()
	if c == nil {
		c = &dc
	}
	orDefault := func(v, d int) int {
		if v <= 0 {
			return d
		}
		return v
	}
	return &MultiKeyLimiter{
		limiters: map[string]*Limiter{
			ipWaitlist:    NewLimiter(time.Hour, orDefault(c.WaitlistPerIP, dc.WaitlistPerIP)),
			emailWaitlist: NewLimiter(time.Hour, orDefault(c.WaitlistPerEmail, dc.WaitlistPerEmail)),
			ipContact:     NewLimiter(time.Hour, orDefault(c.ContactPerIP, dc.ContactPerIP)),
			emailContact:  NewLimiter(time.Hour, orDefault(c.ContactPerEmail, dc.ContactPerEmail)),
			ipNewsletter:  NewLimiter(time.Hour, orDefault(c.NewsletterPerIP, dc.NewsletterPerIP)),
			ipCheckout:    NewLimiter(time.Hour, orDefault(c.CheckoutPerIP, dc.CheckoutPerIP)),
		},
	}
}

func (m *MultiKeyLimiter) check(ipKind, emailKind, ip, email string) error {
	if !m.limiters[ipKind].Allow(ip) {
		return fmt.Errorf("too many requests from this IP address: %w", gerr.ErrRateLimited)
	}
	if emailKind != "" && email != "" && !m.limiters[emailKind].Allow(email) {
		return fmt.Errorf("too many requests for this email address: %w", gerr.ErrRateLimited)
	}
	return nil
}

// CheckWaitlist verifies a waitlist submission from ip for email is allowed.
func (m *MultiKeyLimiter) CheckWaitlist(ip, email string) error {
	return m.check(ipWaitlist, emailWaitlist, ip, email)
}

func (m *MultiKeyLimiter) CheckContact(ip, email string) error {
	return m.check(ipContact, emailContact, ip, email)
}

func (m *MultiKeyLimiter) CheckNewsletter(ip string) error {
	return m.check(ipNewsletter, "", ip, "")
}

func (m *MultiKeyLimiter) CheckCheckout(ip string) error {
	return m.check(ipCheckout, "", ip, "")
}

// Close stops every limiter.
func (m *MultiKeyLimiter) Close() {
	for _, l := range m.limiters {
		l.Close()
	}
}
