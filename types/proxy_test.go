package types

import (
	"net/netip"
	"testing"
	"time"

	"github.com/biter777/countries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProxies(t *testing.T) {
	body := []byte(`{
		"data": [
			{
				"ipPort": "67.225.164.154:80",
				"country": "US",
				"last_checked": "2020-12-13 20:06:41",
				"proxy_level": "elite",
				"type": "http",
				"speed": "10",
				"support": {"https": 0, "get": 1, "post": 1, "cookies": 1, "referer": 1, "user_agent": 1, "google": 0}
			},
			{
				"ipPort": "1.2.3.4:1234",
				"country": "",
				"last_checked": "2020-12-13 00:00:00",
				"proxy_level": "elite",
				"type": "http",
				"speed": "0",
				"support": {"get": 1, "post": 1, "cookies": 1, "referer": 1, "user_agent": 1}
			},
			{
				"ipPort": "89.24.76.185:32842",
				"country": "CZ",
				"last_checked": "2020-12-13 20:01:52",
				"proxy_level": "anonymous",
				"type": "socks5",
				"speed": "18",
				"support": {}
			}
		]
	}`)

	proxies, err := ParseProxies(body)
	require.NoError(t, err)

	// The record with an unresolvable country is dropped.
	require.Len(t, proxies, 2)

	first := proxies[0]
	assert.Equal(t, netip.MustParseAddrPort("67.225.164.154:80"), first.Socket)
	assert.Equal(t, countries.US, first.Country)
	assert.Equal(t, time.Date(2020, 12, 13, 20, 6, 41, 0, time.UTC), first.LastChecked)
	assert.Equal(t, LevelElite, first.Level)
	assert.Equal(t, ProtocolHttp, first.Protocol)
	assert.Equal(t, 10*time.Second, first.TimeToConnect)
	assert.Equal(t, Supports{
		Get:               true,
		Post:              true,
		Cookies:           true,
		Referer:           true,
		ForwardsUserAgent: true,
	}, first.Supports)

	second := proxies[1]
	assert.Equal(t, countries.CZ, second.Country)
	assert.Equal(t, LevelAnonymous, second.Level)
	assert.Equal(t, ProtocolSocks5, second.Protocol)
	// All support flags absent means nothing is supported.
	assert.Equal(t, Supports{}, second.Supports)
}

func TestParseProxies_MalformedFields(t *testing.T) {
	record := func(field, value string) []byte {
		fields := map[string]string{
			"ipPort":       `"67.225.164.154:80"`,
			"country":      `"US"`,
			"last_checked": `"2020-12-13 20:06:41"`,
			"proxy_level":  `"elite"`,
			"type":         `"http"`,
			"speed":        `"10"`,
		}
		fields[field] = value

		return []byte(`{"data": [{
			"ipPort": ` + fields["ipPort"] + `,
			"country": ` + fields["country"] + `,
			"last_checked": ` + fields["last_checked"] + `,
			"proxy_level": ` + fields["proxy_level"] + `,
			"type": ` + fields["type"] + `,
			"speed": ` + fields["speed"] + `,
			"support": {}
		}]}`)
	}

	testCases := []struct {
		name  string
		field string
		value string
	}{
		{"not json at all", "", ""},
		{"bad socket", "ipPort", `"not-a-socket"`},
		{"bad timestamp", "last_checked", `"13/12/2020"`},
		{"bad speed", "speed", `"fast"`},
		{"unknown level", "proxy_level", `"transparent"`},
		{"unknown protocol", "type", `"gopher"`},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			body := []byte(`{"data": [{]}`)
			if tt.field != "" {
				body = record(tt.field, tt.value)
			}

			_, err := ParseProxies(body)
			assert.Error(t, err)
		})
	}
}

func TestLevelAndProtocolTokens(t *testing.T) {
	assert.Equal(t, "anonymous", LevelAnonymous.String())
	assert.Equal(t, "elite", LevelElite.String())
	assert.Equal(t, "http", ProtocolHttp.String())
	assert.Equal(t, "socks4", ProtocolSocks4.String())
	assert.Equal(t, "socks5", ProtocolSocks5.String())
}

func TestCountries(t *testing.T) {
	assert.True(t, Countries{}.IsEmpty())
	assert.Equal(t, "not_country", Countries{}.WireName())

	allow := AllowCountries(countries.US)
	assert.False(t, allow.IsEmpty())
	assert.Equal(t, "country", allow.WireName())
	assert.Equal(t, "US", allow.WireValue())

	block := BlockCountries(countries.CH, countries.ES)
	assert.Equal(t, "not_country", block.WireName())
	assert.Equal(t, "CH,ES", block.WireValue())
}
