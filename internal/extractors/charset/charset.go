// Package charset decodes document bytes to UTF-8 given a detected
// encoding label.
package charset

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/doctext/internal/logger"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Lookup resolves an encoding label such as "Shift_JIS" or "ISO-8859-1".
// WHATWG names are tried first, then IANA names.
func Lookup(label string) (encoding.Encoding, bool) {
	if label == "" {
		return nil, false
	}
	if enc, err := htmlindex.Get(label); err == nil {
		return enc, true
	}
	if enc, err := ianaindex.IANA.Encoding(label); err == nil && enc != nil {
		return enc, true
	}
	return nil, false
}

// Decode converts data from the labelled encoding to UTF-8.
// An empty or unknown label decodes as UTF-8. A leading byte order mark is
// dropped and, for UTF-8 or UTF-16, overrides the label. Undecodable
// sequences are dropped rather than reported.
func Decode(data []byte, label string) string {
	data = bytes.TrimPrefix(data, utf8BOM)

	if enc, ok := Lookup(label); ok {
		out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
		if err == nil {
			return strings.ToValidUTF8(string(out), "")
		}
		logger.Debug("decoding as %s failed, falling back to UTF-8: %v", label, err)
	} else if label != "" {
		logger.Debug("unknown encoding %q, decoding as UTF-8", label)
	}

	return strings.ToValidUTF8(string(data), "")
}
