package har

import (
	"context"

	"github.com/9seconds/cartographer/cartolib"
)

// LocatedSite is a Site pinned to a geographical point.
type LocatedSite struct {
	Site

	Point cartolib.GeoPoint
}

// Locate resolves every site's representative address to a point,
// serially, one address at a time. A failure of a single address is
// logged and that site skipped: the batch always completes for the
// rest.
func Locate(ctx context.Context,
	resolver cartolib.Resolver,
	logger cartolib.Logger,
	sites []Site) []LocatedSite {
	located := make([]LocatedSite, 0, len(sites))

	for _, site := range sites {
		point, err := resolver.Resolve(ctx, site.Addr)
		if err != nil {
			logger.LookupError(site.Addr, resolver.Name(), err)
			continue
		}

		logger.LookupOK(site.Addr, resolver.Name(), point)
		located = append(located, LocatedSite{Site: site, Point: point})
	}

	return located
}
