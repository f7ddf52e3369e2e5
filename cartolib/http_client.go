package cartolib

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

type httpClient struct {
	userAgent   string
	client      *http.Client
	rateLimiter *rate.Limiter
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	if err := h.rateLimiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", h.userAgent)

	return h.client.Do(req)
}

// NewHTTPClient wraps a client with a user agent and a fixed-rate
// pacer. Pacing is intentionally dumb: remote geolocation APIs
// document a request ceiling and a steady interval between requests
// keeps us under it without any adaptive backoff.
//
// Please see https://pkg.go.dev/golang.org/x/time/rate for a meaning
// of the rate limiter parameters.
func NewHTTPClient(client *http.Client,
	userAgent string,
	rateLimiterInterval time.Duration,
	rateLimitBurst int) HTTPClient {
	return httpClient{
		userAgent:   userAgent,
		client:      client,
		rateLimiter: rate.NewLimiter(rate.Every(rateLimiterInterval), rateLimitBurst),
	}
}
