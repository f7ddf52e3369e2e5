package har

import (
	"context"
	"fmt"
	"net"
)

// Site is an aggregated view of all trace requests to one host.
type Site struct {
	Host  string
	Addr  string
	Bytes int64

	// Requests is a number of entries the host appears in.
	Requests int

	// Order is a zero-based index of the site among all sites by
	// their first request in the trace. The map colors endpoints
	// by it.
	Order int
}

// LookupIPer resolves a hostname to its addresses. *net.Resolver
// satisfies it.
type LookupIPer interface {
	LookupIP(ctx context.Context, network, host string) ([]net.IP, error)
}

// Aggregate groups trace entries by host, sums transferred bytes and
// assigns each host a single representative IPv4 address. Entries
// without a hostname (data: urls and alike) are ignored; hosts which
// do not resolve to any IPv4 address are dropped from the result and
// returned back for reporting.
func Aggregate(ctx context.Context, file *File, dns LookupIPer) ([]Site, []string) {
	index := map[string]*Site{}
	ordered := []*Site{}

	for _, entry := range file.Log.Entries {
		host, err := entry.Host()
		if err != nil {
			continue
		}

		site, ok := index[host]
		if !ok {
			site = &Site{Host: host, Order: len(ordered)}
			index[host] = site
			ordered = append(ordered, site)
		}

		site.Bytes += entry.Bytes()
		site.Requests++
	}

	sites := make([]Site, 0, len(ordered))
	skipped := make([]string, 0)

	for _, site := range ordered {
		addr, err := representativeAddr(ctx, dns, site.Host)
		if err != nil {
			skipped = append(skipped, site.Host)
			continue
		}

		site.Addr = addr
		sites = append(sites, *site)
	}

	return sites, skipped
}

func representativeAddr(ctx context.Context, dns LookupIPer, host string) (string, error) {
	addrs, err := dns.LookupIP(ctx, "ip4", host)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", host, err)
	}

	for _, v := range addrs {
		if v4 := v.To4(); v4 != nil {
			return v4.String(), nil
		}
	}

	return "", fmt.Errorf("host %s has no ipv4 addresses", host)
}
