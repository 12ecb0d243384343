package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 15, got.Day())
	assert.Equal(t, IST, got.Location())
}

func TestParseDateEmptyDefaultsToToday(t *testing.T) {
	got, err := ParseDate("")
	require.NoError(t, err)
	assert.WithinDuration(t, Now(), got, time.Minute)
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	_, err := ParseDate("15-06-2025")
	assert.Error(t, err)

	_, err = ParseDate("2025/06/15")
	assert.Error(t, err)
}
