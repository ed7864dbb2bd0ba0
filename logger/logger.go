package logger

// Logger is the logging interface used throughout pubproxy-go. It keeps the
// library decoupled from any one logging stack: plug in an adapter for your
// logger of choice (a zerolog adapter ships with the library, see
// NewZerolog) or leave the default Noop in place to silence it entirely.
//
// The library logs:
// - every request it issues and the pacing waits around it
// - page fetch results and classification of API errors
// - retry attempts, when retries are configured
//
// Usage Example:
//
//	session := pubproxy_go.NewSession(pubproxy_go.WithLogger(myLogger))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
