package api

import (
	"io"
	"net/http"
	"net/url"

	"github.com/CosmicHorrorDev/pubproxy-go/errors"
	"github.com/CosmicHorrorDev/pubproxy-go/logger"
)

// Note: pubproxy doesn't support https. Known limitation of the service,
// not of this library.
const baseUrl = "http://pubproxy.com/api/proxy"

type apiClient struct {
	httpClient *http.Client
	logger     logger.Logger
}

func newApiClient(
	httpClient *http.Client,
	logger logger.Logger,
) *apiClient {
	return &apiClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// get issues one blocking GET against the proxy endpoint and hands back the
// raw status and body. No transport-level retries: gathering enough pages,
// and retrying when that fails, is the fetch loop's job.
func (c *apiClient) get(query url.Values) (int, []byte, *errors.ApiError) {
	endpoint := baseUrl + "?" + query.Encode()

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, &errors.ApiError{
			Kind:      errors.KIND_UNKNOWN,
			SourceErr: err,
		}
	}

	c.logger.Debugf("pubproxy: GET %s", endpoint)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &errors.ApiError{
			Kind:      errors.KIND_UNKNOWN,
			SourceErr: err,
		}
	}

	var body []byte
	if res.Body != nil {
		body, err = io.ReadAll(res.Body)
		defer func() { _ = res.Body.Close() }()
		if err != nil {
			return res.StatusCode, body, &errors.ApiError{
				Kind:           errors.KIND_UNKNOWN,
				HttpStatusCode: res.StatusCode,
				Body:           body,
				SourceErr:      err,
			}
		}
	}

	return res.StatusCode, body, nil
}
