package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLaunchYear(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		year int
		ok   bool
	}{
		{"plain integer", "2003", 2003, true},
		{"float export", "2003.0", 2003, true},
		{"whitespace", " 1995 ", 1995, true},
		{"empty", "", 0, false},
		{"text", "n/a", 0, false},
		{"fractional", "2003.5", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := ProductRecord{LaunchYear: tc.raw}
			year, ok := rec.ParseLaunchYear()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.year, year)
		})
	}
}

func TestFieldRoundTrip(t *testing.T) {
	var rec ProductRecord
	for i, c := range AllColumns {
		value := string(rune('a' + i))
		rec.SetField(c, value)
		assert.Equal(t, value, rec.Field(c))
	}
}

func TestFieldUnknownColumnIsEmpty(t *testing.T) {
	rec := ProductRecord{Region: "Europe"}
	assert.Equal(t, "", rec.Field(Column("Bogus")))
}
