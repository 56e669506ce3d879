package subtitle

import (
	"fmt"
	"strconv"
	"time"
)

// TimecodeError reports a timeframe line whose numeric fields could not be
// decomposed. Given the strictness of the timeframe pattern this should not
// occur in practice; it aborts conversion of the current file only.
type TimecodeError struct {
	Line int
	Text string
	Err  error
}

func (e *TimecodeError) Error() string {
	return fmt.Sprintf("invalid timeframe at line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *TimecodeError) Unwrap() error { return e.Err }

func parseTimecode(
	hours, minutes, seconds, millis string,
) (time.Duration, error) {
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, err
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}

// shiftTimecode applies the offset, clamping negative results to zero.
func shiftTimecode(t, offset time.Duration) time.Duration {
	t += offset
	if t < 0 {
		return 0
	}
	return t
}

// formatTimecode renders a timecode as HH:MM:SS.mmm. Hours are zero-padded
// to at least two digits and may grow past two for long media.
func formatTimecode(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
