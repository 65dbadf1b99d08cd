package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCityFromAddress(t *testing.T) {
	require.Equal(t, "Pune", CityFromAddress("12 Main St, Pune"))
	require.Equal(t, "Mumbai", CityFromAddress("Flat 4, Marine Drive, Mumbai"))
	require.Equal(t, "Delhi", CityFromAddress("AIIMS Campus,   Delhi  "))

	require.Equal(t, "Unknown", CityFromAddress(""))
	require.Equal(t, "Unknown", CityFromAddress("12 Main St"))
	require.Equal(t, "Unknown", CityFromAddress("12 Main St,"))
	require.Equal(t, "Unknown", CityFromAddress("12 Main St,   "))
}
