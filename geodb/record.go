package geodb

import (
	"fmt"
	"strconv"
)

// Number of fields in one row of the range file: ip_from, ip_to,
// country_code, country_name, region_name, city_name, latitude,
// longitude. This is the layout of IP2Location LITE DB5 CSV exports.
const recordFieldCount = 8

// Record is a single row of the range database: a contiguous block of
// IPv4 address space mapped to one representative geographical point.
// Both bounds are integer values of dotted-quad addresses, inclusive.
type Record struct {
	IPFrom      uint32
	IPTo        uint32
	CountryCode string
	CountryName string
	RegionName  string
	CityName    string
	Latitude    float64
	Longitude   float64
}

// Contains tells if the given address belongs to the record's block.
func (r Record) Contains(addr uint32) bool {
	return r.IPFrom <= addr && addr <= r.IPTo
}

// NewRecord builds a Record from a parsed CSV row.
func NewRecord(row []string) (Record, error) {
	rec := Record{}

	if len(row) != recordFieldCount {
		return rec, fmt.Errorf("expected %d fields, got %d", recordFieldCount, len(row))
	}

	from, err := strconv.ParseUint(row[0], 10, 32)
	if err != nil {
		return rec, fmt.Errorf("cannot convert a start of the range: %w", err)
	}

	to, err := strconv.ParseUint(row[1], 10, 32)
	if err != nil {
		return rec, fmt.Errorf("cannot convert an end of the range: %w", err)
	}

	if to < from {
		return rec, fmt.Errorf("range end %d is before range start %d", to, from)
	}

	lat, err := strconv.ParseFloat(row[6], 64)
	if err != nil {
		return rec, fmt.Errorf("cannot convert a latitude: %w", err)
	}

	lon, err := strconv.ParseFloat(row[7], 64)
	if err != nil {
		return rec, fmt.Errorf("cannot convert a longitude: %w", err)
	}

	rec.IPFrom = uint32(from)
	rec.IPTo = uint32(to)
	rec.CountryCode = row[2]
	rec.CountryName = row[3]
	rec.RegionName = row[4]
	rec.CityName = row[5]
	rec.Latitude = lat
	rec.Longitude = lon

	return rec, nil
}
