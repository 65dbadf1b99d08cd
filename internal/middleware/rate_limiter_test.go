package middleware

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIPRateLimiter_PerIPBuckets(t *testing.T) {
	l := NewIPRateLimiter(1, 2)

	a := l.GetLimiter("10.0.0.1")
	b := l.GetLimiter("10.0.0.2")
	require.NotSame(t, a, b)

	// Same IP returns the same bucket.
	require.Same(t, a, l.GetLimiter("10.0.0.1"))
}

func TestIPRateLimiter_BurstExhaustion(t *testing.T) {
	l := NewIPRateLimiter(1, 2)

	lim := l.GetLimiter("10.0.0.3")
	require.True(t, lim.Allow())
	require.True(t, lim.Allow())
	// Burst of 2 spent; an immediate third request is rejected.
	require.False(t, lim.Allow())

	// Another IP is unaffected.
	require.True(t, l.GetLimiter("10.0.0.4").Allow())
}
