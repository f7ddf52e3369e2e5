package resolvers

import "github.com/9seconds/cartographer/cartolib"

// inconsistentDatabaseError marries the sentinel callers match with
// errors.Is to the AmbiguousRangeError carrying the conflicting
// records, reachable with errors.As.
type inconsistentDatabaseError struct {
	err error
}

func (e inconsistentDatabaseError) Error() string {
	return cartolib.ErrInconsistentDatabase.Error() + ": " + e.err.Error()
}

func (e inconsistentDatabaseError) Is(target error) bool {
	return target == cartolib.ErrInconsistentDatabase
}

func (e inconsistentDatabaseError) Unwrap() error {
	return e.err
}
