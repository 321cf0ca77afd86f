package units

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMilesToKm(t *testing.T) {
	require.Equal(t, 1.60934, MilesToKm(1))
	require.InDelta(t, 2.41401, MilesToKm(1.5), 1e-9)
	require.Equal(t, 0.0, MilesToKm(0))
}

func TestTotalSeconds(t *testing.T) {
	require.Equal(t, int64(5196), TotalSeconds(1, 26, 36))
	require.Equal(t, int64(0), TotalSeconds(0, 0, 0))
	require.Equal(t, int64(3600), TotalSeconds(1, 0, 0))
	require.Equal(t, int64(75), TotalSeconds(0, 1, 15))
}

func TestRound2(t *testing.T) {
	require.Equal(t, 2.41, Round2(2.41401))
	require.Equal(t, 4.99, Round2(3.1*KmPerMile))
	require.Equal(t, 2.5, Round2(2.5))
	require.Equal(t, 0.13, Round2(0.125))
}
