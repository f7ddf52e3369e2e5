package cartolib

import "errors"

var (
	// ErrInvalidAddress means the input is not a dotted-quad IPv4
	// address. It is rejected before any lookup is attempted.
	ErrInvalidAddress = errors.New("invalid ipv4 address")

	// ErrUnresolvedAddress means the address is valid but the
	// backend does not know where it is. The caller decides
	// whether to skip the point or to render a placeholder.
	ErrUnresolvedAddress = errors.New("address cannot be resolved")

	// ErrInconsistentDatabase means the local database has
	// overlapping ranges claiming the address. The conflicting
	// records are reachable with errors.As on
	// geodb.AmbiguousRangeError.
	ErrInconsistentDatabase = errors.New("range database is inconsistent")

	// ErrRateLimited is a transient condition: the remote backend
	// throttles us. Retry after a cooldown; never cached.
	ErrRateLimited = errors.New("remote backend rate limits us")

	// ErrRemoteLookupFailed covers every other failure mode of a
	// remote backend. Non-fatal per address.
	ErrRemoteLookupFailed = errors.New("remote lookup has failed")
)
