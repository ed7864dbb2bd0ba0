package pubproxy_go

import (
	"net/http"
	"time"

	"github.com/CosmicHorrorDev/pubproxy-go/logger"
	"github.com/CosmicHorrorDev/pubproxy-go/rate"
	"github.com/CosmicHorrorDev/pubproxy-go/retry"
)

type config struct {
	// transport specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or if callers
	// want to add extra logging, headers, etc.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// timeout sets the maximum duration for HTTP requests
	// before they are cancelled
	// default: 10 seconds
	timeout time.Duration

	// logger provides logging functionality for all internal
	// pubproxy-go operations
	// default: logger.Noop
	logger logger.Logger

	// delay is the minimum spacing between consecutive unauthenticated
	// requests under this session
	// default: rate.DefaultDelay
	delay time.Duration

	// retry and retryAttempts enable rerunning page fetches that fail
	// with a transient error. retryAttempts counts total attempts, so
	// the default of 1 means no retries.
	retry         retry.Retry
	retryAttempts int
}

func defaultConfig() *config {
	return &config{
		transport:     http.DefaultTransport,
		timeout:       10 * time.Second,
		logger:        logger.Noop{},
		delay:         rate.DefaultDelay,
		retryAttempts: 1,
	}
}

type ConfigOption func(c *config)

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}

// WithDelay overrides the spacing between unauthenticated requests.
// Values below rate.DefaultDelay risk tripping the remote rate limit.
func WithDelay(delay time.Duration) ConfigOption {
	return func(c *config) {
		c.delay = delay
	}
}

// WithRetry makes fetchers rerun page fetches that fail with a transient
// error (server errors and rate-limit trips), up to attempts total tries.
// Without it, every failure surfaces to the TryGet caller on the first hit.
func WithRetry(r retry.Retry, attempts int) ConfigOption {
	return func(c *config) {
		c.retry = r
		c.retryAttempts = attempts
	}
}
