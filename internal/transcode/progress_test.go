package transcode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedAll(pp *progressParser, lines ...string) []Progress {
	var blocks []Progress
	for _, line := range lines {
		if block, ok := pp.feed(line); ok {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func TestProgressParser(t *testing.T) {
	pp := newProgressParser(20)
	blocks := feedAll(pp,
		"frame=120",
		"out_time_us=5000000",
		"total_size=1048576",
		"speed=1.98x",
		"progress=continue",
		"out_time_us=25000000",
		"speed= 2.01x",
		"progress=end",
	)
	require.Len(t, blocks, 2)

	assert.Equal(t, 5*time.Second, blocks[0].OutTime)
	assert.InDelta(t, 0.25, blocks[0].Ratio, 1e-9)
	assert.Equal(t, 25, blocks[0].Percent())
	assert.Equal(t, "1.98x", blocks[0].Speed)
	assert.Equal(t, int64(1048576), blocks[0].TotalSize)
	assert.False(t, blocks[0].Done)

	assert.Equal(t, 1.0, blocks[1].Ratio, "ratio is capped")
	assert.Equal(t, "2.01x", blocks[1].Speed)
	assert.True(t, blocks[1].Done)
}

func TestProgressParser_UnknownDuration(t *testing.T) {
	pp := newProgressParser(0)
	blocks := feedAll(pp, "out_time_ms=3000000", "progress=continue", "progress=end")
	require.Len(t, blocks, 2)
	assert.Equal(t, 3*time.Second, blocks[0].OutTime)
	assert.Zero(t, blocks[0].Ratio)
	assert.Equal(t, 100, blocks[1].Percent())
}

func TestProgressParser_IgnoresGarbage(t *testing.T) {
	pp := newProgressParser(10)
	blocks := feedAll(pp, "", "no equals sign", "out_time_us=N/A", "out_time_us=-5", "progress=continue")
	require.Len(t, blocks, 1)
	assert.Zero(t, blocks[0].OutTime)
}
