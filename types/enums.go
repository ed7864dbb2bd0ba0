package types

import (
	"encoding/json"
	"fmt"
)

// Level is the anonymity level of a proxy. pubproxy only serves anonymous
// and elite proxies; transparent ones are never returned.
type Level int

const (
	LevelAnonymous Level = iota + 1
	LevelElite
)

// String returns the wire token used by both the query string and the
// response body.
func (l Level) String() string {
	switch l {
	case LevelAnonymous:
		return "anonymous"
	case LevelElite:
		return "elite"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

func (l *Level) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}
	switch token {
	case "anonymous":
		*l = LevelAnonymous
	case "elite":
		*l = LevelElite
	default:
		return fmt.Errorf("unknown proxy level %q", token)
	}
	return nil
}

// Protocol is the protocol a proxy speaks.
type Protocol int

const (
	ProtocolHttp Protocol = iota + 1
	ProtocolSocks4
	ProtocolSocks5
)

func (p Protocol) String() string {
	switch p {
	case ProtocolHttp:
		return "http"
	case ProtocolSocks4:
		return "socks4"
	case ProtocolSocks5:
		return "socks5"
	default:
		return fmt.Sprintf("Protocol(%d)", int(p))
	}
}

func (p *Protocol) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}
	switch token {
	case "http":
		*p = ProtocolHttp
	case "socks4":
		*p = ProtocolSocks4
	case "socks5":
		*p = ProtocolSocks5
	default:
		return fmt.Errorf("unknown proxy protocol %q", token)
	}
	return nil
}
