package input

import (
	"bytes"
	"testing"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func encodeWith(t *testing.T, text string, encoder transform.Transformer) []byte {
	t.Helper()
	out, _, err := transform.Bytes(encoder, []byte(text))
	if err != nil {
		t.Fatalf("Failed to encode test data: %v", err)
	}
	return out
}

func TestDecode(t *testing.T) {
	const text = "a::after { content: \"é→\" }"

	tests := []struct {
		name     string
		data     []byte
		fallback string
		want     string
		encoding string
	}{
		{
			name:     "plain utf-8",
			data:     []byte(text),
			want:     text,
			encoding: "utf-8",
		},
		{
			name:     "utf-8 bom",
			data:     append([]byte{0xef, 0xbb, 0xbf}, text...),
			want:     text,
			encoding: "utf-8",
		},
		{
			name:     "utf-16be bom",
			data:     encodeWith(t, text, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()),
			want:     text,
			encoding: "utf-16be",
		},
		{
			name:     "utf-16le bom",
			data:     encodeWith(t, text, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()),
			want:     text,
			encoding: "utf-16le",
		},
		{
			name:     "charset rule",
			data:     append([]byte(`@charset "windows-1251";`), 0xcf, 0xf0),
			want:     `@charset "windows-1251";Пр`,
			encoding: "windows-1251",
		},
		{
			name:     "charset rule wins over fallback",
			data:     append([]byte(`@charset "iso-8859-1";`), 0xe9),
			fallback: "windows-1251",
			want:     `@charset "iso-8859-1";é`,
			encoding: "windows-1252",
		},
		{
			name:     "charset utf-16 means utf-8",
			data:     []byte(`@charset "utf-16";a`),
			want:     `@charset "utf-16";a`,
			encoding: "utf-8",
		},
		{
			name:     "fallback label",
			data:     []byte{'a', 0xe9},
			fallback: "latin1",
			want:     "aé",
			encoding: "windows-1252",
		},
		{
			name:     "unknown fallback",
			data:     []byte("a"),
			fallback: "no-such-encoding",
			want:     "a",
			encoding: "utf-8",
		},
		{
			name:     "malformed charset rule",
			data:     []byte(`@charset 'koi8-r'; a`),
			want:     `@charset 'koi8-r'; a`,
			encoding: "utf-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, enc, err := Decode(tt.data, tt.fallback)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
			if enc != tt.encoding {
				t.Errorf("Decode() encoding = %q, want %q", enc, tt.encoding)
			}
		})
	}
}

func TestDecode_InvalidUTF8(t *testing.T) {
	got, _, err := Decode([]byte{'a', 0xff, 'b'}, "")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "a�b" {
		t.Errorf("Decode() = %q, want replacement character", got)
	}
}

func TestDetect_LongCharsetRule(t *testing.T) {
	data := append([]byte(`@charset "`), bytes.Repeat([]byte("x"), 2*maxCharsetLen)...)
	data = append(data, `";`...)
	if _, name := Detect(data, ""); name != DefaultEncoding {
		t.Errorf("Detect() = %s, want %s", name, DefaultEncoding)
	}
}
