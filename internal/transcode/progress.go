package transcode

import (
	"strconv"
	"strings"
	"time"
)

// Keys of the ffmpeg -progress key=value stream
const (
	progressOutTimeUs = "out_time_us"
	progressOutTimeMs = "out_time_ms" // microseconds despite the name
	progressSpeed     = "speed"
	progressTotalSize = "total_size"
	progressState     = "progress"
	progressStateEnd  = "end"
)

// Progress is one block of the ffmpeg progress stream
type Progress struct {
	OutTime   time.Duration
	Speed     string
	TotalSize int64
	// Ratio is OutTime over the probed input duration, 0 when unknown
	Ratio float64
	Done  bool
}

// Percent returns Ratio as an integer percentage
func (p Progress) Percent() int {
	return int(p.Ratio * 100)
}

// progressParser accumulates key=value lines into Progress blocks. A block
// ends with a "progress=continue" or "progress=end" line.
type progressParser struct {
	duration float64
	current  Progress
}

func newProgressParser(durationSec float64) *progressParser {
	return &progressParser{duration: durationSec}
}

// feed consumes one line and returns a completed block when the line
// terminates one.
func (pp *progressParser) feed(line string) (Progress, bool) {
	key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
	if !ok {
		return Progress{}, false
	}
	value = strings.TrimSpace(value)

	switch key {
	case progressOutTimeUs, progressOutTimeMs:
		us, err := strconv.ParseInt(value, 10, 64)
		if err != nil || us < 0 {
			return Progress{}, false
		}
		pp.current.OutTime = time.Duration(us) * time.Microsecond
		if pp.duration > 0 {
			ratio := pp.current.OutTime.Seconds() / pp.duration
			if ratio > 1 {
				ratio = 1
			}
			pp.current.Ratio = ratio
		}
	case progressSpeed:
		pp.current.Speed = value
	case progressTotalSize:
		if size, err := strconv.ParseInt(value, 10, 64); err == nil {
			pp.current.TotalSize = size
		}
	case progressState:
		block := pp.current
		if value == progressStateEnd {
			block.Done = true
			block.Ratio = 1
		}
		return block, true
	}
	return Progress{}, false
}
