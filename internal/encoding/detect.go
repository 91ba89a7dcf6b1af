// Package encoding normalizes uploaded text files to UTF-8.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader detects the encoding of r and returns a reader that yields
// UTF-8.
//
// Detection order:
//  1. BOM (UTF-8 BOM is stripped, UTF-16 LE/BE is decoded)
//  2. valid UTF-8 is returned as-is
//  3. chardet heuristics
//  4. Windows-1254
//
// Latin-1 guesses are decoded as Windows-1254: the two only differ in the
// Turkish letters, which chardet cannot tell apart on short inputs.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	case bytes.HasPrefix(buf, bomUTF16LE):
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
	case bytes.HasPrefix(buf, bomUTF16BE):
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), nil
	}

	if utf8.Valid(buf) {
		return br, nil
	}

	result, detectErr := chardet.NewTextDetector().DetectBest(buf)
	if detectErr == nil {
		switch result.Charset {
		case "UTF-8":
			return br, nil
		case "ISO-8859-9":
			return transform.NewReader(br, charmap.ISO8859_9.NewDecoder()), nil
		case "ISO-8859-1", "windows-1252", "windows-1254":
			return transform.NewReader(br, charmap.Windows1254.NewDecoder()), nil
		}
	}

	return transform.NewReader(br, charmap.Windows1254.NewDecoder()), nil
}

// IsText reports whether a file name has an extension that is stored as
// UTF-8 text.
func IsText(ext string) bool {
	switch ext {
	case ".csv", ".txt", ".tsv":
		return true
	}

	return false
}
