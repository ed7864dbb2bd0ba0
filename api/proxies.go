package api

import (
	"net/http"
	"net/url"

	"github.com/CosmicHorrorDev/pubproxy-go/errors"
	"github.com/CosmicHorrorDev/pubproxy-go/logger"
	"github.com/CosmicHorrorDev/pubproxy-go/types"
)

// Proxies implements the single pubproxy endpoint,
// See: http://pubproxy.com/#api
type Proxies struct {
	api *apiClient
}

func NewProxiesApi(httpClient *http.Client, logger logger.Logger) *Proxies {
	return &Proxies{
		api: newApiClient(httpClient, logger),
	}
}

// Fetch retrieves and validates one page of proxies matching the query.
//
// Classification order matters: pubproxy reports its known errors as
// plain-text bodies under varied HTTP statuses, including 200. A non-OK
// status goes through the message table before falling back to the generic
// client/server kinds, and an OK body that won't decode as a proxy page
// gets the same message-table look before becoming KIND_UNKNOWN.
func (p *Proxies) Fetch(query url.Values) ([]types.Proxy, *errors.ApiError) {
	status, body, err := p.api.get(query)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, errors.FromResponse(status, body)
	}

	proxies, parseErr := types.ParseProxies(body)
	if parseErr != nil {
		if kind := errors.FromMessage(string(body)); kind != errors.KIND_UNKNOWN {
			return nil, &errors.ApiError{
				Kind:           kind,
				HttpStatusCode: status,
				Body:           body,
			}
		}
		return nil, &errors.ApiError{
			Kind:           errors.KIND_UNKNOWN,
			HttpStatusCode: status,
			Body:           body,
			SourceErr:      parseErr,
		}
	}

	p.api.logger.Debugf("pubproxy: fetched %d proxies", len(proxies))
	return proxies, nil
}
