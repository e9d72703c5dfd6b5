package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2026-03-01"))

	for _, date := range []string{"", "01.03.2026", "2026-3-1", "2026-03-01T00:00"} {
		assert.Error(t, ValidateDate(date), date)
	}
}

func TestNormalizeFieldValue(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		value   float64
		present bool
		wantErr bool
	}{
		{"plain number", "82.5", 82.5, true, false},
		{"whitespace trimmed", " 82.5 ", 82.5, true, false},
		{"zero allowed", "0", 0, true, false},
		{"empty means absent", "", 0, false, false},
		{"blank means absent", "   ", 0, false, false},
		{"not a number", "abc", 0, false, true},
		{"negative rejected", "-3", 0, false, true},
		{"nan rejected", "NaN", 0, false, true},
		{"inf rejected", "Inf", 0, false, true},
		{"signed inf rejected", "+Inf", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, present, err := NormalizeFieldValue(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, present)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.present, present)
			assert.Equal(t, tt.value, value)
		})
	}
}
