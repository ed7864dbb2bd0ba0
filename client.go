package pubproxy_go

import (
	"net/http"

	"github.com/CosmicHorrorDev/pubproxy-go/api"
	"github.com/CosmicHorrorDev/pubproxy-go/opts"
	"github.com/CosmicHorrorDev/pubproxy-go/rate"
)

// Session owns the pacing clock that every unauthenticated Fetcher spawned
// from it shares. One application talking to pubproxy should hold exactly
// one Session; two Sessions pace independently and together can exceed the
// service's allowed request rate.
type Session struct {
	httpClient *http.Client
	config     *config

	clock   *rate.Clock
	proxies *api.Proxies
}

// NewSession never fails and performs no I/O. The shared clock starts one
// full delay in the past, so the first request under a fresh session goes
// out immediately.
func NewSession(options ...ConfigOption) *Session {
	cfg := defaultConfig()
	for _, opt := range options {
		opt(cfg)
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	return &Session{
		httpClient: httpClient,
		config:     cfg,
		clock:      rate.NewClock(cfg.delay),
		proxies:    api.NewProxiesApi(httpClient, cfg.logger),
	}
}

// Fetcher binds a new Fetcher to this session and the given options.
// No I/O, no blocking; spawn as many as needed and use them from different
// goroutines. Premium option sets get a no-op limiter since their tier is
// exempt from the rate limit; everything else shares the session clock.
func (s *Session) Fetcher(o *opts.Opts) *Fetcher {
	var limiter rate.Limiter = s.clock
	if o.IsPremium() {
		limiter = rate.NoopLimiter{}
	}

	return &Fetcher{
		api:           s.proxies,
		opts:          o,
		limiter:       limiter,
		retry:         s.config.retry,
		retryAttempts: s.config.retryAttempts,
		logger:        s.config.logger,
	}
}
