package cartolib_test

import (
	"context"

	"github.com/9seconds/cartographer/cartolib"
)

// fakeResolver counts how many times the underlying lookup was
// actually performed. Tests flip its fields between calls to model
// transient backend states.
type fakeResolver struct {
	point cartolib.GeoPoint
	err   error
	calls int
}

func (f *fakeResolver) Name() string {
	return "fake"
}

func (f *fakeResolver) Resolve(_ context.Context, _ string) (cartolib.GeoPoint, error) {
	f.calls++

	return f.point, f.err
}
