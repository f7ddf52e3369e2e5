package cartolib

import (
	"context"
	"net/http"
)

// Resolver maps a dotted-quad IPv4 address to a geographical point.
// Implementations are side-effect free apart from cache population:
// resolving the same address twice returns the same point.
type Resolver interface {
	Name() string
	Resolve(ctx context.Context, addr string) (GeoPoint, error)
}

// HTTPClient is an interface of the HTTP client backends use to talk
// to remote services.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Logger is an interface of the logger per-address outcomes are
// reported with. A failure of one address never aborts the batch, it
// only ends up here.
type Logger interface {
	LookupError(addr string, resolver string, err error)
	LookupOK(addr string, resolver string, point GeoPoint)
}
