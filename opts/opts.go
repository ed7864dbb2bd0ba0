// Package opts builds the immutable filter-option sets consumed by a
// Fetcher. Options are assembled on a Builder with chainable setters and
// frozen with Build, which is where all bounds checking happens.
package opts

import (
	"net/url"
	"strconv"
	"time"

	"github.com/CosmicHorrorDev/pubproxy-go/types"
)

const (
	// FreeLimit and PremiumLimit are the page sizes pubproxy serves per
	// request, fixed by whether an API key was supplied.
	FreeLimit    = 5
	PremiumLimit = 20

	minLastChecked = 1 * time.Minute
	maxLastChecked = 1000 * time.Minute

	minTimeToConnect = 1 * time.Second
	maxTimeToConnect = 60 * time.Second
)

// Builder accumulates filter options. Every unset field leaves the matching
// constraint wide open, so options only ever narrow the returned proxies.
type Builder struct {
	apiKey            string
	level             types.Level
	protocol          types.Protocol
	countries         types.Countries
	lastChecked       time.Duration
	port              uint16
	portSet           bool
	timeToConnect     time.Duration
	cookies           *bool
	connectsToGoogle  *bool
	https             *bool
	post              *bool
	referer           *bool
	forwardsUserAgent *bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// ApiKey passes a premium key to the API. This lifts both the rate limit
// and the daily limit, and raises the page size from 5 to 20.
func (b *Builder) ApiKey(apiKey string) *Builder {
	b.apiKey = apiKey
	return b
}

// Level restricts the anonymity level of the returned proxies.
func (b *Builder) Level(level types.Level) *Builder {
	b.level = level
	return b
}

// Protocol restricts the protocol: HTTP, SOCKS4 or SOCKS5.
func (b *Builder) Protocol(protocol types.Protocol) *Builder {
	b.protocol = protocol
	return b
}

// Countries restricts where the proxies are located, as either an allowlist
// or a blocklist.
func (b *Builder) Countries(countries types.Countries) *Builder {
	b.countries = countries
	return b
}

// LastChecked bounds how stale a proxy's last health check may be.
// Resolution is minutes, valid from 1 to 1000 minutes.
func (b *Builder) LastChecked(lastChecked time.Duration) *Builder {
	b.lastChecked = lastChecked
	return b
}

// Port requires the proxies to expose the given port.
func (b *Builder) Port(port uint16) *Builder {
	b.port = port
	b.portSet = true
	return b
}

// TimeToConnect bounds how long the proxy took to connect when pubproxy
// tested it. Resolution is seconds, valid from 1 to 60 seconds.
func (b *Builder) TimeToConnect(timeToConnect time.Duration) *Builder {
	b.timeToConnect = timeToConnect
	return b
}

// Cookies filters on cookie support.
func (b *Builder) Cookies(cookies bool) *Builder {
	b.cookies = &cookies
	return b
}

// ConnectsToGoogle filters on whether the proxy could reach google.
func (b *Builder) ConnectsToGoogle(connectsToGoogle bool) *Builder {
	b.connectsToGoogle = &connectsToGoogle
	return b
}

// Https filters on HTTPS support.
func (b *Builder) Https(https bool) *Builder {
	b.https = &https
	return b
}

// Post filters on POST support.
func (b *Builder) Post(post bool) *Builder {
	b.post = &post
	return b
}

// Referer filters on referer support.
func (b *Builder) Referer(referer bool) *Builder {
	b.referer = &referer
	return b
}

// ForwardsUserAgent filters on whether the proxy forwards your user agent.
func (b *Builder) ForwardsUserAgent(forwardsUserAgent bool) *Builder {
	b.forwardsUserAgent = &forwardsUserAgent
	return b
}

// Build validates the accumulated options and freezes them into an Opts.
// Out-of-range durations and a zero port are rejected with a *ParamError,
// never clamped.
func (b *Builder) Build() (*Opts, error) {
	if b.lastChecked != 0 &&
		(b.lastChecked < minLastChecked || b.lastChecked > maxLastChecked) {
		return nil, &ParamError{
			Param: "last_check",
			Value: b.lastChecked,
			Min:   minLastChecked,
			Max:   maxLastChecked,
		}
	}
	if b.timeToConnect != 0 &&
		(b.timeToConnect < minTimeToConnect || b.timeToConnect > maxTimeToConnect) {
		return nil, &ParamError{
			Param: "speed",
			Value: b.timeToConnect,
			Min:   minTimeToConnect,
			Max:   maxTimeToConnect,
		}
	}
	// A port of 0 makes the API return any port, which is never what a
	// caller setting a port wants.
	if b.portSet && b.port == 0 {
		return nil, &ParamError{
			Param: "port",
			Value: b.port,
			Min:   uint16(1),
			Max:   uint16(65535),
		}
	}

	limit := FreeLimit
	if b.apiKey != "" {
		limit = PremiumLimit
	}

	return &Opts{
		builder: *b,
		premium: b.apiKey != "",
		limit:   limit,
	}, nil
}

// Opts is a validated, immutable set of filter options. Construct through
// NewBuilder and Build.
type Opts struct {
	builder Builder
	premium bool
	limit   int
}

// IsPremium reports whether an API key was supplied. Premium fetchers are
// exempt from the shared rate limit.
func (o *Opts) IsPremium() bool {
	return o.premium
}

// Limit is the page size the API will return per call for these options.
func (o *Opts) Limit() int {
	return o.limit
}

// Values serializes the options into their query parameters. The wire name
// of every field is mapped here explicitly; nothing is derived from struct
// field names.
func (o *Opts) Values() url.Values {
	b := &o.builder

	v := url.Values{}
	if b.apiKey != "" {
		v.Set("api", b.apiKey)
	}
	if b.level != 0 {
		v.Set("level", b.level.String())
	}
	if b.protocol != 0 {
		v.Set("type", b.protocol.String())
	}
	// An empty country list is left out entirely: the API happens to
	// accept an empty value, but that isn't documented behavior.
	if !b.countries.IsEmpty() {
		v.Set(b.countries.WireName(), b.countries.WireValue())
	}
	if b.lastChecked != 0 {
		v.Set("last_check", strconv.FormatInt(int64(b.lastChecked/time.Minute), 10))
	}
	if b.portSet {
		v.Set("port", strconv.FormatUint(uint64(b.port), 10))
	}
	if b.timeToConnect != 0 {
		v.Set("speed", strconv.FormatInt(int64(b.timeToConnect/time.Second), 10))
	}
	setFlag(v, "cookies", b.cookies)
	setFlag(v, "google", b.connectsToGoogle)
	setFlag(v, "https", b.https)
	setFlag(v, "post", b.post)
	setFlag(v, "referer", b.referer)
	setFlag(v, "user_agent", b.forwardsUserAgent)

	v.Set("limit", strconv.Itoa(o.limit))
	v.Set("format", "json")
	return v
}

func setFlag(v url.Values, name string, flag *bool) {
	if flag != nil {
		v.Set(name, strconv.FormatBool(*flag))
	}
}
