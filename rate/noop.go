package rate

// NoopLimiter applies no pacing at all. Premium API keys are exempt from
// pubproxy's rate limit, so premium fetchers run on one of these.
type NoopLimiter struct {
}

var _ Limiter = NoopLimiter{}

func (n NoopLimiter) Run(fn func() error) error {
	return fn()
}

func (n NoopLimiter) Wait() {
}

func (n NoopLimiter) Mark() {
}
