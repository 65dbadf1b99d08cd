package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAgeFromDOB(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	// Birthday already passed this year.
	require.Equal(t, 30, AgeFromDOB(time.Date(1996, 3, 15, 0, 0, 0, 0, time.UTC), now))

	// Birthday later this year: one less.
	require.Equal(t, 29, AgeFromDOB(time.Date(1996, 12, 15, 0, 0, 0, 0, time.UTC), now))

	// Birthday today counts as completed.
	require.Equal(t, 30, AgeFromDOB(time.Date(1996, 9, 1, 0, 0, 0, 0, time.UTC), now))

	// Born yesterday relative to a same-year date.
	require.Equal(t, 0, AgeFromDOB(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), now))

	// Future DOB clamps to zero.
	require.Equal(t, 0, AgeFromDOB(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestAgeFromDOB_LeapDay(t *testing.T) {
	dob := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)

	beforeFeb := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 25, AgeFromDOB(dob, beforeFeb))

	afterFeb := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 26, AgeFromDOB(dob, afterFeb))
}
