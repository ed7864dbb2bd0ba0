package retry

// Retry runs an operation repeatedly until it succeeds, a retry budget is
// exhausted, or the operation declares the failure not worth retrying.
//
// pubproxy-go uses it (only when configured on the session) for page
// fetches that fail with a transient error such as a server hiccup or a
// rate-limit trip.
//
// Usage Example:
//
//	r := retry.NewExponentialRetry(
//	    retry.WithInitialDuration(100*time.Millisecond),
//	)
//
//	err := r.Do(3, "fetch-page", func(attempt int) (error, retry.ExitStrategy) {
//	    page, err := fetchPage()
//	    if err != nil {
//	        if isTransient(err) {
//	            return err, retry.Continue
//	        }
//	        return err, retry.StopNow
//	    }
//	    return nil, retry.StopNow
//	})
//
// The RetriableFn receives the current attempt number (0-based) and returns
// an error and an ExitStrategy. The ExitStrategy determines whether to keep
// retrying (Continue) or stop immediately (StopNow), regardless of remaining
// attempts.
//
// NOTE: if attempts is 0, the fn is never called.
type Retry interface {
	Do(attempts int, fnName string, fn RetriableFn) error
}

type RetriableFn func(attempt int) (error, ExitStrategy)

type ExitStrategy bool

var StopNow ExitStrategy = true
var Continue ExitStrategy = false
