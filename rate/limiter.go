package rate

// Limiter controls request pacing against the pubproxy API.
//
// pubproxy limits unauthenticated use to roughly one request per second
// across an entire application, so pacing has to be coordinated between
// every fetcher that shares that budget, not applied per fetcher.
// A Limiter models that coordination as a slot that is held for a run of
// requests:
//
//	err := limiter.Run(func() error {
//	    limiter.Wait()         // sleep out the remaining spacing
//	    err := issueRequest()
//	    limiter.Mark()         // record the request instant
//	    return err
//	})
//
// While one holder is inside Run, every other holder of the same Limiter
// blocks; no ordering among the waiters is promised.
type Limiter interface {
	// Run acquires the pacing slot, runs fn, and releases the slot.
	// The error from fn is returned unchanged.
	Run(fn func() error) error

	// Wait blocks until enough time has passed since the last marked
	// request. Must only be called from within Run.
	Wait()

	// Mark records that a request was just issued, restarting the
	// spacing interval. Must only be called from within Run.
	Mark()
}
