package subtitle

import (
	"strconv"
	"strings"
)

func needsEscape(r rune) bool {
	return r >= 160 && r <= 255
}

// escapeText replaces every rune in the Latin-1 supplement band (code
// points 160 through 255) with its decimal numeric character reference,
// so browsers render accented text consistently. All other runes pass
// through untouched. Replacements are written to a fresh buffer and are
// never re-scanned.
func escapeText(line string) string {
	if !strings.ContainsFunc(line, needsEscape) {
		return line
	}

	var sb strings.Builder
	for _, r := range line {
		if needsEscape(r) {
			sb.WriteString("&#")
			sb.WriteString(strconv.Itoa(int(r)))
			sb.WriteByte(';')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
