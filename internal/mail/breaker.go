package mail

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

type BreakerConfig struct {
	MaxRequests         uint32        `mapstructure:"max_requests"`
	Interval            time.Duration `mapstructure:"interval"`
	Timeout             time.Duration `mapstructure:"timeout"`
	ConsecutiveFailures uint32        `mapstructure:"consecutive_failures"`
}

// newBreaker trips after ConsecutiveFailures provider errors in a row and
// probes again after Timeout.
func newBreaker(name string, c BreakerConfig) *gobreaker.CircuitBreaker {
	if c.ConsecutiveFailures == 0 {
		c.ConsecutiveFailures = 5
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxRequests == 0 {
		c.MaxRequests = 1
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "mail-" + name,
		MaxRequests: c.MaxRequests,
		Interval:    c.Interval,
		Timeout:     c.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= c.ConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Default().Warn("mail circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}
