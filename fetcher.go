package pubproxy_go

import (
	"github.com/CosmicHorrorDev/pubproxy-go/api"
	"github.com/CosmicHorrorDev/pubproxy-go/errors"
	"github.com/CosmicHorrorDev/pubproxy-go/logger"
	"github.com/CosmicHorrorDev/pubproxy-go/opts"
	"github.com/CosmicHorrorDev/pubproxy-go/rate"
	"github.com/CosmicHorrorDev/pubproxy-go/retry"
	"github.com/CosmicHorrorDev/pubproxy-go/types"
)

// Fetcher serves proxies for one immutable option set, buffering whatever a
// page fetch returns beyond what the caller asked for. A Fetcher is not
// safe for concurrent use; spawn one per goroutine instead and let the
// session clock coordinate them.
type Fetcher struct {
	api           *api.Proxies
	opts          *opts.Opts
	limiter       rate.Limiter
	retry         retry.Retry
	retryAttempts int
	logger        logger.Logger

	proxies []types.Proxy
}

// TryGet returns exactly amount proxies, issuing as many paced page fetches
// as it takes to cover the request. If the buffer already covers it, no
// request is made and no pacing state is touched. Proxies are handed out
// from the tail of the buffer (most recently fetched first); only the
// count is part of the contract, not the order.
//
// On an API error the fill loop aborts and the error surfaces as a
// *errors.ApiError, but pages fetched before the failure stay buffered for
// a later TryGet or Drain.
func (f *Fetcher) TryGet(amount int) ([]types.Proxy, error) {
	if amount <= 0 {
		return []types.Proxy{}, nil
	}
	if amount <= len(f.proxies) {
		return f.take(amount), nil
	}

	err := f.limiter.Run(func() error {
		for len(f.proxies) < amount {
			page, apiErr := f.fetchPage()
			if apiErr != nil {
				f.logger.Errorf(
					"pubproxy: fetch failed with kind '%s', keeping %d buffered proxies",
					apiErr.Kind, len(f.proxies),
				)
				return apiErr
			}
			f.proxies = append(f.proxies, page...)
			f.logger.Debugf(
				"pubproxy: buffered %d/%d proxies", len(f.proxies), amount,
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return f.take(amount), nil
}

// Drain returns whatever is buffered and leaves the Fetcher empty.
// No I/O. Meant for callers who over-fetched on purpose and want the
// remainder without another request.
func (f *Fetcher) Drain() []types.Proxy {
	rest := f.proxies
	f.proxies = nil
	return rest
}

// fetchPage fetches one page, rerunning transient failures when the
// session was configured with retries. Pacing wraps every attempt, not
// just the first: a retried request hits the API all the same.
func (f *Fetcher) fetchPage() ([]types.Proxy, *errors.ApiError) {
	if f.retry == nil || f.retryAttempts <= 1 {
		return f.fetchOnce()
	}

	var page []types.Proxy
	err := f.retry.Do(f.retryAttempts, "pubproxy-fetch", func(attempt int) (error, retry.ExitStrategy) {
		var apiErr *errors.ApiError
		page, apiErr = f.fetchOnce()
		if apiErr == nil {
			return nil, retry.StopNow
		}
		if errors.IsTransient(apiErr) {
			return apiErr, retry.Continue
		}
		return apiErr, retry.StopNow
	})
	if err != nil {
		if apiErr, ok := err.(*errors.ApiError); ok {
			return nil, apiErr
		}
		return nil, &errors.ApiError{
			Kind:      errors.KIND_UNKNOWN,
			SourceErr: err,
		}
	}
	return page, nil
}

func (f *Fetcher) fetchOnce() ([]types.Proxy, *errors.ApiError) {
	f.limiter.Wait()
	page, err := f.api.Fetch(f.opts.Values())
	f.limiter.Mark()
	return page, err
}

// take removes n proxies from the tail of the buffer.
func (f *Fetcher) take(n int) []types.Proxy {
	cut := len(f.proxies) - n
	taken := make([]types.Proxy, n)
	copy(taken, f.proxies[cut:])
	f.proxies = f.proxies[:cut]
	return taken
}
