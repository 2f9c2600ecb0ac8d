package swchess

import (
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newTextReader drops a UTF-8 byte order mark and transcodes BOM-marked
// UTF-16 input to UTF-8. Anything else passes through unchanged.
func newTextReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}

func readBoardFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeBoardText(data)
}

// decodeBoardText normalizes a placement file to UTF-8. Files without a BOM
// that are not valid UTF-8 are read as Windows-1252.
func decodeBoardText(data []byte) ([]byte, error) {
	var fallback transform.Transformer = transform.Nop
	if !utf8.Valid(data) {
		fallback = charmap.Windows1252.NewDecoder()
	}
	decoded, _, err := transform.Bytes(unicode.BOMOverride(fallback), data)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}
