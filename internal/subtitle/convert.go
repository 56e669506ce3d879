package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// dialogue lines far exceeding any real subtitle still convert
const maxLineBytes = 10 * 1024 * 1024

// Config carries the per-run conversion settings, shared read-only by
// every file.
type Config struct {
	// TimeOffset is added to every cue timestamp. Zero means the
	// timeframe line is reformatted syntactically without arithmetic.
	TimeOffset time.Duration
}

// Converter rewrites SRT-encoded subtitle text as WebVTT.
type Converter struct {
	cfg Config
}

func NewConverter(cfg Config) *Converter {
	return &Converter{cfg: cfg}
}

var (
	// an SRT sequence-index line: nothing but decimal digits
	indexRegex = regexp.MustCompile(`^\d+$`)

	// an SRT cue timeframe line, fixed field widths and separators
	timeframeRegex = regexp.MustCompile(
		`^(\d{2}):(\d{2}):(\d{2}),(\d{3}) --> (\d{2}):(\d{2}):(\d{2}),(\d{3})$`,
	)
)

// every input line is exactly one of these
type lineKind int

const (
	lineIndex lineKind = iota
	lineTimeframe
	lineText
)

// classifyLine matches in a fixed order: index, then timeframe, then text.
// The index and timeframe patterns can never both match the same line (a
// timeframe always contains colons and the arrow token).
func classifyLine(line string) lineKind {
	if indexRegex.MatchString(line) {
		return lineIndex
	}
	if timeframeRegex.MatchString(line) {
		return lineTimeframe
	}
	return lineText
}

// Convert reads SRT text from r and writes the WebVTT rendition to w in a
// single forward pass. Sequence-index lines are dropped, timeframe lines
// are rewritten (shifted by the configured offset when nonzero), and all
// other lines pass through with Latin-1 supplement characters escaped.
//
// The input may carry a UTF-8 or UTF-16 byte order mark; it is decoded
// transparently. Output is always UTF-8.
func (c *Converter) Convert(r io.Reader, w io.Writer) error {
	out := bufio.NewWriter(w)

	// mandatory WebVTT header
	if _, err := out.WriteString("WEBVTT\n\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	scanner := bufio.NewScanner(newDecodingReader(r))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNum := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		switch classifyLine(line) {
		case lineIndex:
			// SRT sequence numbers have no WebVTT equivalent
			continue

		case lineTimeframe:
			rewritten, err := c.rewriteTimeframe(line)
			if err != nil {
				return &TimecodeError{Line: lineNum, Text: line, Err: err}
			}
			line = rewritten

		case lineText:
			line = escapeText(line)
		}

		if _, err := out.WriteString(line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := out.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	return out.Flush()
}

// rewriteTimeframe converts one matched timeframe line to VTT form. With no
// offset configured this is a pure separator swap that keeps the input's
// digit grouping byte for byte; with an offset the timecodes are parsed,
// shifted, clamped at zero, and re-emitted with canonical zero padding.
func (c *Converter) rewriteTimeframe(line string) (string, error) {
	if c.cfg.TimeOffset == 0 {
		return strings.ReplaceAll(line, ",", "."), nil
	}

	m := timeframeRegex.FindStringSubmatch(line)
	start, err := parseTimecode(m[1], m[2], m[3], m[4])
	if err != nil {
		return "", fmt.Errorf("invalid start timestamp: %w", err)
	}
	end, err := parseTimecode(m[5], m[6], m[7], m[8])
	if err != nil {
		return "", fmt.Errorf("invalid end timestamp: %w", err)
	}

	start = shiftTimecode(start, c.cfg.TimeOffset)
	end = shiftTimecode(end, c.cfg.TimeOffset)

	return formatTimecode(start) + " --> " + formatTimecode(end), nil
}
