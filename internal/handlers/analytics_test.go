package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFallbackDiseaseMap(t *testing.T) {
	entries := FallbackDiseaseMap()
	require.Len(t, entries, 9)

	for _, e := range entries {
		require.NotEmpty(t, e.City)
		require.NotEmpty(t, e.State)
		require.NotEmpty(t, e.Disease)
		require.Greater(t, e.Count, int64(0))
		require.NotZero(t, e.Lat)
		require.NotZero(t, e.Lng)
	}
}

func TestFormatOutbreakAlert(t *testing.T) {
	msg := FormatOutbreakAlert("Mumbai", "Dengue", 87)
	require.Equal(t, "Outbreak alert: 87 active Dengue cases reported in Mumbai in the last 7 days", msg)
}

func TestZeroFilledOutcomes(t *testing.T) {
	stats := ZeroFilledOutcomes([]statusCount{{Status: "active", Count: 12}})
	require.Equal(t, int64(12), stats.Active)
	require.Equal(t, int64(0), stats.Recovered)
	require.Equal(t, int64(0), stats.Deceased)

	stats = ZeroFilledOutcomes(nil)
	require.Equal(t, OutcomeStats{}, stats)

	stats = ZeroFilledOutcomes([]statusCount{
		{Status: "recovered", Count: 40},
		{Status: "deceased", Count: 2},
		{Status: "active", Count: 7},
	})
	require.Equal(t, OutcomeStats{Active: 7, Recovered: 40, Deceased: 2}, stats)
}
