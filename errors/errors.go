package errors

import (
	"errors"
	"fmt"
)

const (
	// KIND_CLIENT is a 4xx response that doesn't match any known
	// pubproxy message. It usually points at a defect in this library's
	// parameter handling rather than a runtime condition.
	KIND_CLIENT = "client-error"

	// KIND_SERVER is a 5xx response. Transient; the caller may retry.
	KIND_SERVER = "server-error"

	KIND_API_KEY     = "invalid-api-key"
	KIND_RATE_LIMIT  = "rate-limit"
	KIND_DAILY_LIMIT = "daily-limit"
	KIND_NO_PROXY    = "no-proxy"

	// KIND_UNKNOWN is an HTTP-success body that is neither the expected
	// JSON shape nor a recognized message, or a transport-level failure.
	KIND_UNKNOWN = "unknown"
)

// Literal error bodies returned by pubproxy.com. Some of them arrive with
// varied HTTP status codes, so classification matches on the text first.
const (
	PUBPROXY_InvalidApiKey = "Invalid API. Get your API to make unlimited requests at http://pubproxy.com/#premium"
	PUBPROXY_RateLimit     = "We have to temporarily stop you. You're requesting proxies a little too fast (2+ requests per second). Get your API to remove this limit at http://pubproxy.com/#premium"
	PUBPROXY_DailyLimit    = "You reached the maximum 50 requests for today. Get your API to make unlimited requests at http://pubproxy.com/#premium"
	PUBPROXY_NoProxy       = "No proxy"
)

type ApiError struct {
	Kind           string
	HttpStatusCode int
	Body           []byte
	SourceErr      error
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	switch e.Kind {
	case KIND_API_KEY:
		return "invalid API key, make sure your key is valid"
	case KIND_RATE_LIMIT:
		return "exceeded the pubproxy rate limit; another program may be using the API alongside this one"
	case KIND_DAILY_LIMIT:
		return "exhausted the daily limit of proxy requests"
	case KIND_NO_PROXY:
		return "no matching proxies, consider broadening the parameters used"
	}

	var detail string
	if e.SourceErr != nil {
		detail = e.SourceErr.Error()
	} else {
		detail = string(e.Body)
	}
	return fmt.Sprintf(
		"pubproxy request failed with kind '%s', httpStatus: '%d'; detail: %v",
		e.Kind, e.HttpStatusCode, detail,
	)
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false.
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}

// FromMessage maps a recognized pubproxy error body to its kind.
// Unrecognized text maps to KIND_UNKNOWN.
func FromMessage(text string) string {
	switch text {
	case PUBPROXY_InvalidApiKey:
		return KIND_API_KEY
	case PUBPROXY_RateLimit:
		return KIND_RATE_LIMIT
	case PUBPROXY_DailyLimit:
		return KIND_DAILY_LIMIT
	case PUBPROXY_NoProxy:
		return KIND_NO_PROXY
	default:
		return KIND_UNKNOWN
	}
}

// FromResponse classifies a non-OK response. Known message bodies win over
// status codes since pubproxy returns them under varied statuses; otherwise
// 4xx becomes KIND_CLIENT and 5xx becomes KIND_SERVER, both preserving the
// original status and body.
//
// A status outside both ranges paired with an unrecognized body means the
// remote service violated its own contract; there is no sane recovery, so
// this panics rather than returning a value the caller can't act on.
func FromResponse(status int, body []byte) *ApiError {
	text := string(body)
	if kind := FromMessage(text); kind != KIND_UNKNOWN {
		return &ApiError{
			Kind:           kind,
			HttpStatusCode: status,
			Body:           body,
		}
	}

	switch {
	case status >= 400 && status < 500:
		return &ApiError{
			Kind:           KIND_CLIENT,
			HttpStatusCode: status,
			Body:           body,
		}
	case status >= 500 && status < 600:
		return &ApiError{
			Kind:           KIND_SERVER,
			HttpStatusCode: status,
			Body:           body,
		}
	default:
		panic(fmt.Sprintf(
			"pubproxy returned status %d with an unrecognized body; please raise an issue: %q",
			status, text,
		))
	}
}

// IsTransient reports whether the error is worth retrying as-is:
// server hiccups and rate-limit trips can clear on their own, everything
// else needs the caller to change something first.
func IsTransient(err *ApiError) bool {
	return err != nil && (err.Kind == KIND_SERVER || err.Kind == KIND_RATE_LIMIT)
}
