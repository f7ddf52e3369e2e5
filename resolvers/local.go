package resolvers

import (
	"context"
	"errors"
	"fmt"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/9seconds/cartographer/geodb"
)

type localResolver struct {
	db *geodb.Database
}

func (l localResolver) Name() string {
	return NameLocal
}

func (l localResolver) Resolve(_ context.Context, addr string) (cartolib.GeoPoint, error) {
	point := cartolib.GeoPoint{}

	target, err := cartolib.ParseAddr(addr)
	if err != nil {
		return point, err
	}

	rec, err := l.db.Lookup(target)
	ambiguous := &geodb.AmbiguousRangeError{}

	switch {
	case err == nil:
	case errors.Is(err, geodb.ErrNotFound):
		return point, fmt.Errorf("%w: %s", cartolib.ErrUnresolvedAddress, addr)
	case errors.As(err, &ambiguous):
		return point, inconsistentDatabaseError{err: err}
	default:
		return point, fmt.Errorf("cannot lookup %s: %w", addr, err)
	}

	point.Latitude = rec.Latitude
	point.Longitude = rec.Longitude

	return point, nil
}

// NewLocal returns a resolver backed by the offline range database.
// The point of the matched record is returned verbatim, without any
// interpolation or rounding.
func NewLocal(db *geodb.Database) cartolib.Resolver {
	return localResolver{db: db}
}
