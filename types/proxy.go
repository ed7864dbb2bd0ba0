package types

import (
	"encoding/json"
	"fmt"
	"net/netip"
	"strconv"
	"time"

	"github.com/biter777/countries"
)

// lastCheckedLayout is the timestamp format pubproxy uses for last_checked.
const lastCheckedLayout = "2006-01-02 15:04:05"

// Proxy is one validated proxy entry. Most callers will only care about
// Socket, but everything the API reports is carried along.
type Proxy struct {
	Socket        netip.AddrPort
	Country       countries.CountryCode
	LastChecked   time.Time
	Level         Level
	Protocol      Protocol
	TimeToConnect time.Duration
	Supports      Supports
}

// Supports lists the capabilities pubproxy probed for the proxy.
type Supports struct {
	Https             bool
	Get               bool
	Post              bool
	Cookies           bool
	Referer           bool
	ForwardsUserAgent bool
	ConnectsToGoogle  bool
}

type proxyResponse struct {
	Data []rawProxy `json:"data"`
}

type rawProxy struct {
	IpPort      string      `json:"ipPort"`
	Country     string      `json:"country"`
	LastChecked string      `json:"last_checked"`
	Level       Level       `json:"proxy_level"`
	Protocol    Protocol    `json:"type"`
	Speed       string      `json:"speed"`
	Support     rawSupports `json:"support"`
}

// The support flags arrive as 0/1 ints and any of them may be missing.
// A missing flag is read as unsupported.
type rawSupports struct {
	Https     *int `json:"https"`
	Get       *int `json:"get"`
	Post      *int `json:"post"`
	Cookies   *int `json:"cookies"`
	Referer   *int `json:"referer"`
	UserAgent *int `json:"user_agent"`
	Google    *int `json:"google"`
}

// ParseProxies decodes one page of the pubproxy response body into validated
// proxies. Records whose country code doesn't resolve to a known ISO 3166-1
// country are dropped; in practice that's under 10% of a page. Any other
// malformed field fails the whole page, since the API is not expected to
// produce it.
func ParseProxies(body []byte) ([]Proxy, error) {
	var response proxyResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}

	proxies := make([]Proxy, 0, len(response.Data))
	for _, raw := range response.Data {
		proxy, err := raw.validate()
		if err != nil {
			return nil, err
		}
		if proxy.Country == countries.Unknown {
			continue
		}
		proxies = append(proxies, proxy)
	}
	return proxies, nil
}

func (raw rawProxy) validate() (Proxy, error) {
	socket, err := netip.ParseAddrPort(raw.IpPort)
	if err != nil {
		return Proxy{}, fmt.Errorf("invalid ipPort %q: %w", raw.IpPort, err)
	}

	lastChecked, err := time.Parse(lastCheckedLayout, raw.LastChecked)
	if err != nil {
		return Proxy{}, fmt.Errorf("invalid last_checked %q: %w", raw.LastChecked, err)
	}

	secs, err := strconv.ParseUint(raw.Speed, 10, 32)
	if err != nil {
		return Proxy{}, fmt.Errorf("invalid speed %q: %w", raw.Speed, err)
	}

	// Codes outside iso 3166-1 show up from time to time; those become
	// the Unknown sentinel and the caller filters them away.
	country := countries.ByName(raw.Country)

	return Proxy{
		Socket:        socket,
		Country:       country,
		LastChecked:   lastChecked,
		Level:         raw.Level,
		Protocol:      raw.Protocol,
		TimeToConnect: time.Duration(secs) * time.Second,
		Supports:      raw.Support.validate(),
	}, nil
}

func (raw rawSupports) validate() Supports {
	flag := func(field *int) bool {
		return field != nil && *field == 1
	}

	return Supports{
		Https:             flag(raw.Https),
		Get:               flag(raw.Get),
		Post:              flag(raw.Post),
		Cookies:           flag(raw.Cookies),
		Referer:           flag(raw.Referer),
		ForwardsUserAgent: flag(raw.UserAgent),
		ConnectsToGoogle:  flag(raw.Google),
	}
}
