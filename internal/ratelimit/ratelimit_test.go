package ratelimit

import (
	"testing"
	"time"

	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(200*time.Millisecond, 3)
	defer limiter.Close()

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("test-key"), "request %d should be allowed", i+1)
	}
	assert.False(t, limiter.Allow("test-key"))
	assert.True(t, limiter.Allow("other-key"))

	time.Sleep(300 * time.Millisecond)
	assert.True(t, limiter.Allow("test-key"))
}

func TestLimiter_GetRemaining(t *testing.T) {
	limiter := NewLimiter(time.Second, 5)
	defer limiter.Close()

	assert.Equal(t, 5, limiter.GetRemaining("test-key"))
	limiter.Allow("test-key")
	limiter.Allow("test-key")
	assert.Equal(t, 3, limiter.GetRemaining("test-key"))
}

func TestMultiKeyLimiter_CheckWaitlist(t *testing.T) {
	limiter := NewMultiKeyLimiter(&Config{WaitlistPerIP: 2, WaitlistPerEmail: 1})
	defer limiter.Close()

	assert.NoError(t, limiter.CheckWaitlist("192.168.1.1", "a@example.com"))
	// same email from another IP
	assert.ErrorIs(t, limiter.CheckWaitlist("192.168.1.2", "a@example.com"), gerr.ErrRateLimited)
	assert.NoError(t, limiter.CheckWaitlist("192.168.1.1", "b@example.com"))
	assert.ErrorIs(t, limiter.CheckWaitlist("192.168.1.1", "c@example.com"), gerr.ErrRateLimited)
}

func TestMultiKeyLimiter_Separate(t *testing.T) {
	limiter := NewMultiKeyLimiter(&Config{ContactPerIP: 1, NewsletterPerIP: 1, CheckoutPerIP: 1})
	defer limiter.Close()

	assert.NoError(t, limiter.CheckContact("10.0.0.1", "a@example.com"))
	assert.NoError(t, limiter.CheckNewsletter("10.0.0.1"))
	assert.NoError(t, limiter.CheckCheckout("10.0.0.1"))

	assert.Error(t, limiter.CheckContact("10.0.0.1", "b@example.com"))
	assert.Error(t, limiter.CheckNewsletter("10.0.0.1"))
	assert.Error(t, limiter.CheckCheckout("10.0.0.1"))
}
