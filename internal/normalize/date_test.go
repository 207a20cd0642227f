package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_StrictFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: "2024-01-15T10:30:00Z",
			want:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "iso date only",
			input: "2024-01-15",
			want:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "iso with space",
			input: "2024-01-15 10:30:00",
			want:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Strict formats must not depend on the locale hint.
			for _, locale := range []string{"en-US", "en-GB", "de-DE"} {
				got, err := Date(tt.input, locale)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDate_LocaleDisambiguation(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		locale string
		want   time.Time
	}{
		{
			name:   "en-GB reads day first",
			input:  "03/04/2024",
			locale: "en-GB",
			want:   time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "en-US reads month first",
			input:  "03/04/2024",
			locale: "en-US",
			want:   time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "german locale day first with dots",
			input:  "15.01.2024",
			locale: "de-DE",
			want:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "two digit year expands to 20xx",
			input:  "03/04/24",
			locale: "en-US",
			want:   time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "trailing time of day",
			input:  "15/01/2024 10:30:00",
			locale: "en-GB",
			want:   time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:   "time without seconds",
			input:  "15/01/2024 10:30",
			locale: "en-GB",
			want:   time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Date(tt.input, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_Unparseable(t *testing.T) {
	for _, input := range []string{"", "not a date", "31/02/2024", "13/13/2024", "2024-99-99"} {
		t.Run(input, func(t *testing.T) {
			_, err := Date(input, "en-US")
			require.Error(t, err)
			var perr *DateParseError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestDayFirst(t *testing.T) {
	assert.True(t, DayFirst("en-GB"))
	assert.True(t, DayFirst("de-DE"))
	assert.True(t, DayFirst("fr"))
	assert.False(t, DayFirst("en-US"))
	assert.False(t, DayFirst(""))
}
