package debayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateChannelStatistics(t *testing.T) {
	raw := mosaic(4, 4, 0, 100, 0)
	// red sites of a 4x4 frame
	raw[IndexOf(0, 0, 4, 4)] = 10
	raw[IndexOf(2, 0, 4, 4)] = 20
	raw[IndexOf(0, 2, 4, 4)] = 30
	raw[IndexOf(2, 2, 4, 4)] = 255

	stats, err := CalculateChannelStatistics(raw, 4, 4)
	require.NoError(t, err)

	assert.Equal(t, ChannelStatistics{Count: 4, Mean: 78.75, Median: 25, Saturated: 1}, stats.R)
	assert.Equal(t, ChannelStatistics{Count: 8, Mean: 100, Median: 100}, stats.G)
	assert.Equal(t, ChannelStatistics{Count: 4}, stats.B)
}

func TestCalculateChannelStatisticsOddCount(t *testing.T) {
	// 3x1: R G R
	stats, err := CalculateChannelStatistics([]byte{7, 1, 9}, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 8.0, stats.R.Median)
	assert.Equal(t, 1.0, stats.G.Median)
	assert.Zero(t, stats.B.Count)

	stats, err = CalculateChannelStatistics([]byte{7, 1, 9, 1, 3}, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.R.Count)
	assert.Equal(t, 7.0, stats.R.Median)
}

func TestCalculateChannelStatisticsPreconditions(t *testing.T) {
	_, err := CalculateChannelStatistics(make([]byte, 3), 2, 2)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}
