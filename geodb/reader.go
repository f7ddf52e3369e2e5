package geodb

import (
	"encoding/csv"
	"io"
)

// reader converts rows of the range file into Records. A row which
// cannot be parsed is skipped and counted, not fatal: reference
// datasets ship with an occasional junk line and a load should not
// die because of one.
type reader struct {
	csv     *csv.Reader
	skipped int
}

func (r *reader) Read() (Record, error) {
	for {
		row, err := r.csv.Read()
		if err != nil {
			return Record{}, err
		}

		rec, err := NewRecord(row)
		if err != nil {
			r.skipped++
			continue
		}

		return rec, nil
	}
}

func newReader(source io.Reader) *reader {
	csvReader := csv.NewReader(source)
	csvReader.Comment = '#'
	csvReader.TrimLeadingSpace = true
	csvReader.ReuseRecord = true
	csvReader.FieldsPerRecord = -1

	return &reader{csv: csvReader}
}
