package tokenizer

// eof is returned by peek past the end of input. It is not a valid codepoint
// so every classification below is false for it.
const eof rune = -1

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexValue(r rune) int {
	switch {
	case isDigit(r):
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isNonASCIIIdent covers codepoints above ASCII allowed in identifiers.
func isNonASCIIIdent(r rune) bool {
	switch {
	case r == 0xb7, r == 0x200c, r == 0x200d, r == 0x203f, r == 0x2040:
		return true
	case r >= 0xc0 && r <= 0xd6,
		r >= 0xd8 && r <= 0xf6,
		r >= 0xf8 && r <= 0x37d,
		r >= 0x37f && r <= 0x1fff,
		r >= 0x2070 && r <= 0x218f,
		r >= 0x2c00 && r <= 0x2fef,
		r >= 0x3001 && r <= 0xd7ff,
		r >= 0xf900 && r <= 0xfdcf,
		r >= 0xfdf0 && r <= 0xfffd:
		return true
	}
	return r >= 0x10000
}

func isIdentStart(r rune) bool {
	return isLetter(r) || r == '_' || isNonASCIIIdent(r)
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || isDigit(r) || r == '-'
}

func isNonPrintable(r rune) bool {
	return (r >= 0 && r <= 0x08) || r == 0x0b || (r >= 0x0e && r <= 0x1f) || r == 0x7f
}

func isWhitespace(r rune) bool {
	return r == '\n' || r == '\t' || r == ' '
}

func isQuote(r rune) bool {
	return r == '"' || r == '\''
}

func isSurrogate(v int) bool {
	return v >= 0xd800 && v <= 0xdfff
}
