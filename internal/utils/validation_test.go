package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{name: "empty query", query: "", wantErr: false},
		{name: "plain value", query: "Germany", wantErr: false},
		{name: "value with spaces", query: "United Kingdom", wantErr: false},
		{name: "SQL injection attempt", query: "x'; DROP TABLE products; --", wantErr: true},
		{name: "script tag", query: "<script>alert(1)</script>", wantErr: true},
		{name: "SQL comment", query: "value /* hidden */", wantErr: true},
		{name: "too long", query: strings.Repeat("a", 201), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.query)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "Germany", SanitizeInput("  Germany "))
	assert.Equal(t, "alert(1)", SanitizeInput("<script>alert(1)</script>"))
	assert.Equal(t, "", SanitizeInput("   "))
}

func TestValidateAndSanitizeQuery(t *testing.T) {
	// Validation runs on the raw input, so stripping tags cannot launder a
	// dangerous value into an accepted one.
	_, err := ValidateAndSanitizeQuery("<script>alert(1)</script>")
	assert.Error(t, err)

	v, err := ValidateAndSanitizeQuery("  Ibuprofen ")
	require.NoError(t, err)
	assert.Equal(t, "Ibuprofen", v)
}
