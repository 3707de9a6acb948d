package tokenizer

import "unicode/utf8"

// Normalize converts text into the codepoint sequence the tokenizer works
// on. CRLF pairs, lone CR and FF become LF, NUL and surrogates become U+FFFD.
// Invalid UTF-8 is already decoded into U+FFFD by the string iteration.
func Normalize(text string) []rune {
	return NormalizeRunes([]rune(text))
}

// NormalizeRunes is Normalize for already decoded input. Applying it to
// its own output changes nothing.
func NormalizeRunes(in []rune) []rune {
	out := make([]rune, 0, len(in))
	for i := 0; i < len(in); i++ {
		r := in[i]
		switch {
		case r == '\r':
			if i+1 < len(in) && in[i+1] == '\n' {
				i++
			}
			r = '\n'
		case r == '\f':
			r = '\n'
		case r == 0 || !utf8.ValidRune(r):
			r = utf8.RuneError
		}
		out = append(out, r)
	}
	return out
}
