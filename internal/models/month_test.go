package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMonth(t *testing.T) {
	got, err := ResolveMonth("")
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format("2006-01"), got)

	got, err = ResolveMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-02", got)

	for _, bad := range []string{"2024-2", "2024-13", "24-02", "2024-02-01", "feb"} {
		_, err := ResolveMonth(bad)
		assert.ErrorIs(t, err, ErrInvalidMonth, bad)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02", MonthOf(d))

	_, err = ParseDate("2023-02-29")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
