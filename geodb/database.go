package geodb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

var (
	// ErrUnavailable is returned when the range file cannot be
	// loaded at all. There is no recovery path: a caller which
	// needs local resolution must stop before any query.
	ErrUnavailable = errors.New("range database is not available")

	// ErrNotFound is returned when an address falls into a gap
	// which no record covers. The dataset does not have to span
	// the whole address space, so this is a legitimate outcome,
	// not a defect.
	ErrNotFound = errors.New("address is not covered by the database")
)

// AmbiguousRangeError reports a violation of the non-overlap
// invariant: more than one record claims the same address. It is
// surfaced distinctly from ErrNotFound so that data-quality
// regressions stay observable instead of being hidden behind an
// arbitrary first match.
type AmbiguousRangeError struct {
	Addr    uint32
	Records []Record
}

func (e *AmbiguousRangeError) Error() string {
	ranges := make([]string, len(e.Records))

	for i, v := range e.Records {
		ranges[i] = fmt.Sprintf("[%d, %d]", v.IPFrom, v.IPTo)
	}

	return fmt.Sprintf("address %d is claimed by %d ranges: %s",
		e.Addr, len(e.Records), strings.Join(ranges, ", "))
}

// Database is a loaded, queryable collection of range records. It is
// built once by Open, never mutated afterwards and therefore safe
// for any number of concurrent readers.
type Database struct {
	records []Record

	// maxTo[i] is the largest IPTo among records[0..i]. It bounds
	// the backward scan for overlapping records in Lookup: once
	// maxTo drops below the address, no earlier record can
	// contain it.
	maxTo []uint32

	skipped int
}

// Len returns a number of loaded records.
func (db *Database) Len() int {
	return len(db.records)
}

// Skipped returns a number of malformed rows dropped during the load.
func (db *Database) Skipped() int {
	return db.skipped
}

// Lookup returns the unique record whose range contains the given
// address. Zero matches mean ErrNotFound, more than one mean
// AmbiguousRangeError with the whole conflicting set.
func (db *Database) Lookup(addr uint32) (Record, error) {
	idx := sort.Search(len(db.records), func(i int) bool {
		return db.records[i].IPFrom > addr
	})

	var found []Record

	for i := idx - 1; i >= 0 && db.maxTo[i] >= addr; i-- {
		if db.records[i].Contains(addr) {
			found = append(found, db.records[i])
		}
	}

	switch len(found) {
	case 0:
		return Record{}, ErrNotFound
	case 1:
		return found[0], nil
	default:
		return Record{}, &AmbiguousRangeError{Addr: addr, Records: found}
	}
}

// Open loads the whole range file into memory, all or nothing.
// Records are expected in ascending ip_from order but the index is
// sorted anyway, so a shuffled file still answers queries correctly.
func Open(fs afero.Fs, path string) (*Database, error) {
	source, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	defer source.Close()

	db := &Database{}
	rd := newReader(bufio.NewReader(source))

	for {
		rec, err := rd.Read()

		switch err {
		case nil:
			db.records = append(db.records, rec)
		case io.EOF:
			return db.finish(rd.skipped)
		default:
			return nil, fmt.Errorf("%w: cannot read a row: %s", ErrUnavailable, err)
		}
	}
}

func (db *Database) finish(skipped int) (*Database, error) {
	if len(db.records) == 0 {
		return nil, fmt.Errorf("%w: no usable records", ErrUnavailable)
	}

	sort.SliceStable(db.records, func(i, j int) bool {
		return db.records[i].IPFrom < db.records[j].IPFrom
	})

	db.maxTo = make([]uint32, len(db.records))
	maxTo := db.records[0].IPTo

	for i, v := range db.records {
		if v.IPTo > maxTo {
			maxTo = v.IPTo
		}

		db.maxTo[i] = maxTo
	}

	db.skipped = skipped

	return db, nil
}
