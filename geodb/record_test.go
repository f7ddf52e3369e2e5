package geodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordOK(t *testing.T) {
	rec, err := NewRecord([]string{
		"16777216", "16777471",
		"AU", "Australia", "Queensland", "Brisbane",
		"-27.46794", "153.02809",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint32(16777216), rec.IPFrom)
	assert.Equal(t, uint32(16777471), rec.IPTo)
	assert.Equal(t, "AU", rec.CountryCode)
	assert.Equal(t, "Australia", rec.CountryName)
	assert.Equal(t, "Queensland", rec.RegionName)
	assert.Equal(t, "Brisbane", rec.CityName)
	assert.Equal(t, -27.46794, rec.Latitude)
	assert.Equal(t, 153.02809, rec.Longitude)
}

func TestRecordShortRow(t *testing.T) {
	_, err := NewRecord([]string{"16777216", "16777471", "AU"})

	assert.Error(t, err)
}

func TestRecordIncorrectBounds(t *testing.T) {
	rows := [][]string{
		{"x", "16777471", "AU", "Australia", "-", "-", "0", "0"},
		{"16777216", "x", "AU", "Australia", "-", "-", "0", "0"},
		{"-1", "16777471", "AU", "Australia", "-", "-", "0", "0"},
		{"16777216", "99999999999", "AU", "Australia", "-", "-", "0", "0"},
		{"16777471", "16777216", "AU", "Australia", "-", "-", "0", "0"},
	}

	for _, row := range rows {
		_, err := NewRecord(row)
		assert.Error(t, err)
	}
}

func TestRecordIncorrectCoordinates(t *testing.T) {
	_, err := NewRecord([]string{
		"16777216", "16777471", "AU", "Australia", "-", "-", "north", "0",
	})
	assert.Error(t, err)

	_, err = NewRecord([]string{
		"16777216", "16777471", "AU", "Australia", "-", "-", "0", "east",
	})
	assert.Error(t, err)
}

func TestRecordContains(t *testing.T) {
	rec := Record{IPFrom: 100, IPTo: 200}

	assert.True(t, rec.Contains(100))
	assert.True(t, rec.Contains(150))
	assert.True(t, rec.Contains(200))
	assert.False(t, rec.Contains(99))
	assert.False(t, rec.Contains(201))
}
