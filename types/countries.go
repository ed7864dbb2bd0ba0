package types

import (
	"strings"

	"github.com/biter777/countries"
)

// Countries is either an allowlist or a blocklist of countries that the
// returned proxies may be located in. The zero value is an empty blocklist,
// which serializes to nothing and leaves the results unconstrained.
type Countries struct {
	allow bool
	codes []countries.CountryCode
}

func AllowCountries(codes ...countries.CountryCode) Countries {
	return Countries{allow: true, codes: codes}
}

func BlockCountries(codes ...countries.CountryCode) Countries {
	return Countries{allow: false, codes: codes}
}

func (c Countries) IsEmpty() bool {
	return len(c.codes) == 0
}

// WireName is the query parameter the list serializes under.
func (c Countries) WireName() string {
	if c.allow {
		return "country"
	}
	return "not_country"
}

// WireValue is the comma-joined alpha-2 codes, e.g. "CH,ES".
func (c Countries) WireValue() string {
	parts := make([]string, len(c.codes))
	for i, code := range c.codes {
		parts[i] = code.Alpha2()
	}
	return strings.Join(parts, ",")
}
