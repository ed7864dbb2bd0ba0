package rate

import (
	"sync"
	"time"
)

// DefaultDelay is the minimum spacing between consecutive unauthenticated
// requests. pubproxy documents a 1 second minimum, but in practice that
// still trips the rate limit now and then, so the default sits a little
// above it.
const DefaultDelay = 1100 * time.Millisecond

// Clock is the shared last-request timestamp that paces every
// unauthenticated fetcher spawned from one session. All of them hold a
// reference to the same Clock, so the aggregate request sequence is
// serialized: one holder's wait-request-mark run finishes before the next
// one starts.
type Clock struct {
	mu    sync.Mutex
	delay time.Duration

	// last and poisoned are guarded by mu.
	last     time.Time
	poisoned bool
}

var _ Limiter = &Clock{}

// NewClock returns a Clock whose stored instant already lies delay in the
// past, so the first request paced by it never waits.
func NewClock(delay time.Duration) *Clock {
	return &Clock{
		delay: delay,
		last:  time.Now().Add(-delay),
	}
}

// Run holds the pacing slot while fn issues its requests. If fn panics, the
// slot is released and the Clock is flagged as poisoned: the stored instant
// may not reflect the request that was in flight when the holder died. The
// next acquirer recovers by restarting the spacing from its own acquire
// time, trading a one-off extra wait for the guarantee of never
// under-delaying.
func (c *Clock) Run(fn func() error) error {
	c.mu.Lock()
	completed := false
	defer func() {
		c.poisoned = !completed
		c.mu.Unlock()
	}()

	if c.poisoned {
		c.last = time.Now()
	}

	err := fn()
	completed = true
	return err
}

// Wait sleeps out whatever remains of the spacing interval. Only the
// calling goroutine sleeps, but it keeps holding the slot, so competing
// holders stay blocked in Run for the duration.
func (c *Clock) Wait() {
	if remaining := c.delay - time.Since(c.last); remaining > 0 {
		time.Sleep(remaining)
	}
}

// Mark moves the stored instant to now. Called after every request,
// successful or not: a failed call still hit the API, so it still paces
// the next one.
func (c *Clock) Mark() {
	c.last = time.Now()
}
