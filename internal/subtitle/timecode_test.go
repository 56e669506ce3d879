package subtitle

import (
	"testing"
	"time"
)

func TestParseTimecode(t *testing.T) {
	got, err := parseTimecode("01", "02", "03", "004")
	if err != nil {
		t.Fatalf("parseTimecode returned error: %v", err)
	}

	want := time.Hour + 2*time.Minute + 3*time.Second + 4*time.Millisecond
	if got != want {
		t.Errorf("parseTimecode = %v, want %v", got, want)
	}
}

func TestParseTimecodeRejectsNonNumeric(t *testing.T) {
	if _, err := parseTimecode("0x", "00", "00", "000"); err == nil {
		t.Error("expected error for non-numeric hours field")
	}
}

func TestFormatTimecode(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "00:00:00.000"},
		{"millis only", 7 * time.Millisecond, "00:00:00.007"},
		{"full fields", time.Hour + 2*time.Minute + 3*time.Second + 45*time.Millisecond, "01:02:03.045"},
		{"single digit everywhere", 9*time.Hour + 9*time.Minute + 9*time.Second + 9*time.Millisecond, "09:09:09.009"},
		{"hours exceed two digits", 100 * time.Hour, "100:00:00.000"},
		{"just under an hour", time.Hour - time.Millisecond, "00:59:59.999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTimecode(tt.d); got != tt.want {
				t.Errorf("formatTimecode(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestShiftTimecodeClampsAtZero(t *testing.T) {
	tests := []struct {
		name   string
		t      time.Duration
		offset time.Duration
		want   time.Duration
	}{
		{"positive shift", time.Second, time.Second, 2 * time.Second},
		{"negative shift", 3 * time.Second, -time.Second, 2 * time.Second},
		{"clamped to zero", time.Second, -2 * time.Second, 0},
		{"exactly zero", time.Second, -time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shiftTimecode(tt.t, tt.offset); got != tt.want {
				t.Errorf("shiftTimecode(%v, %v) = %v, want %v", tt.t, tt.offset, got, tt.want)
			}
		})
	}
}

// On the nonzero-offset path, parse then format must round-trip any
// canonically padded timecode shifted by the offset, clamped at zero.
func TestTimecodeRoundTripWithOffset(t *testing.T) {
	timecodes := []time.Duration{
		0,
		500 * time.Millisecond,
		time.Second,
		time.Hour + 23*time.Minute + 45*time.Second + 678*time.Millisecond,
		99*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond,
	}
	offsets := []time.Duration{
		time.Millisecond,
		-time.Millisecond,
		2500 * time.Millisecond,
		-2 * time.Hour,
		30 * time.Minute,
	}

	for _, tc := range timecodes {
		for _, off := range offsets {
			shifted := shiftTimecode(tc, off)

			want := tc + off
			if want < 0 {
				want = 0
			}
			if shifted != want {
				t.Errorf("shiftTimecode(%v, %v) = %v, want %v", tc, off, shifted, want)
				continue
			}

			text := formatTimecode(shifted)
			parsed, err := parseTimecode(text[:len(text)-10], text[len(text)-9:len(text)-7],
				text[len(text)-6:len(text)-4], text[len(text)-3:])
			if err != nil {
				t.Errorf("parseTimecode(%q) returned error: %v", text, err)
				continue
			}
			if parsed != shifted {
				t.Errorf("round trip of %v via %q = %v", shifted, text, parsed)
			}
		}
	}
}
