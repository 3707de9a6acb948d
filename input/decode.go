// Package input turns stylesheet bytes into text following the CSS rules for
// determining the fallback encoding: byte order mark, then @charset rule,
// then caller supplied label, then UTF-8.
package input

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when nothing else determines encoding.
const DefaultEncoding = "utf-8"

var (
	charsetPrefix = []byte(`@charset "`)
	charsetSuffix = []byte(`";`)
)

// maxCharsetLen bounds @charset rule lookup the same way browsers do.
const maxCharsetLen = 1024

// Decode converts data to text. It returns encoding name actually used.
func Decode(data []byte, fallback string) (string, string, error) {
	enc, name := Detect(data, fallback)

	// BOMOverride strips byte order mark and switches decoder when it finds one
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return "", name, fmt.Errorf("unable to decode stylesheet as %s: %w", name, err)
	}
	return string(out), name, nil
}

// Detect determines stylesheet encoding without decoding it.
func Detect(data []byte, fallback string) (encoding.Encoding, string) {
	switch {
	case bytes.HasPrefix(data, []byte{0xef, 0xbb, 0xbf}):
		return unicode.UTF8, "utf-8"
	case bytes.HasPrefix(data, []byte{0xfe, 0xff}):
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), "utf-16be"
	case bytes.HasPrefix(data, []byte{0xff, 0xfe}):
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), "utf-16le"
	}

	if label, ok := charsetRule(data); ok {
		if enc, name := charset.Lookup(label); enc != nil {
			// stylesheet can not be in UTF-16 if its @charset rule is readable as ASCII
			if strings.HasPrefix(name, "utf-16") {
				return unicode.UTF8, DefaultEncoding
			}
			return enc, name
		}
	}

	if fallback != "" {
		if enc, name := charset.Lookup(fallback); enc != nil {
			return enc, name
		}
	}
	return unicode.UTF8, DefaultEncoding
}

// charsetRule extracts label from leading `@charset "label";`.
func charsetRule(data []byte) (string, bool) {
	if !bytes.HasPrefix(data, charsetPrefix) {
		return "", false
	}
	rest := data[len(charsetPrefix):]
	if len(rest) > maxCharsetLen {
		rest = rest[:maxCharsetLen]
	}
	end := bytes.Index(rest, charsetSuffix)
	if end < 0 {
		return "", false
	}
	return string(rest[:end]), true
}
