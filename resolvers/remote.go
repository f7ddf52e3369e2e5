package resolvers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/9seconds/cartographer/cartolib"
)

type remoteResolver struct {
	client  cartolib.HTTPClient
	baseURL string
}

func (r remoteResolver) Name() string {
	return NameRemote
}

func (r remoteResolver) Resolve(ctx context.Context, addr string) (cartolib.GeoPoint, error) {
	point := cartolib.GeoPoint{}

	if _, err := cartolib.ParseAddr(addr); err != nil {
		return point, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		r.baseURL+"/api/"+addr, nil)
	if err != nil {
		return point, fmt.Errorf("cannot build a request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return point, fmt.Errorf("cannot send a request: %w", err)
	}

	defer flushResponse(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return point, cartolib.ErrRateLimited
	default:
		return point, fmt.Errorf("%w: unexpected status code %d",
			cartolib.ErrRemoteLookupFailed, resp.StatusCode)
	}

	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	if err := jsonDecoder.Decode(&point); err != nil {
		return point, fmt.Errorf("%w: cannot parse a response: %s",
			cartolib.ErrRemoteLookupFailed, err)
	}

	return point, nil
}

// NewRemote returns a resolver which delegates to a remote
// geolocation HTTP API: GET {base}/api/{ip} with a JSON body of
// latitude/longitude fields. Wrap the HTTP client with
// cartolib.NewHTTPClient to get the pacing the API expects.
func NewRemote(client cartolib.HTTPClient, baseURL string) cartolib.Resolver {
	return remoteResolver{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}
