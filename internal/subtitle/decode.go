package subtitle

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newDecodingReader normalizes the input stream to UTF-8. A UTF-8 or
// UTF-16 byte order mark selects the decoder and is stripped; input
// without a mark is assumed to already be UTF-8.
func newDecodingReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
