// Package tokenizer turns stylesheet text into a flat sequence of tokens.
// Tokenization never fails: malformed input degrades into bad-string,
// bad-url and delim tokens.
package tokenizer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"cssfe/token"
)

type tokenizer struct {
	cursor
	start  token.Position
	tokens []token.Token
}

// Tokenize normalizes text and tokenizes it.
func Tokenize(text string) []token.Token {
	return TokenizeRunes(Normalize(text))
}

// TokenizeRunes tokenizes already normalized codepoints. Spans of returned
// tokens are contiguous: first token starts at index 0 and every token
// starts where previous one ended.
func TokenizeRunes(cps []rune) []token.Token {
	t := &tokenizer{cursor: cursor{cps: cps, pos: token.StartPosition}}
	for !t.eof() {
		t.start = t.pos
		t.consumeToken()
	}
	return t.tokens
}

// emit appends token covering everything consumed since the token start.
func (t *tokenizer) emit(tok token.Token) {
	tok.Raw = string(t.cps[t.start.Index:t.pos.Index])
	tok.Span = token.Span{Start: t.start, End: t.pos}
	t.tokens = append(t.tokens, tok)
}

func (t *tokenizer) consumeToken() {
	switch r := t.peek(0); {
	case r == '/' && t.peek(1) == '*':
		t.consumeComment()
	case isWhitespace(r):
		t.consumeWhitespace()
	case isQuote(r):
		t.consumeString()
	case r == '#':
		if isIdentChar(t.peek(1)) || t.validEscapeAt(1) {
			t.consumeHash()
		} else {
			t.consumeDelim()
		}
	case r == '(':
		t.consumeOne(token.KindLeftParens)
	case r == ')':
		t.consumeOne(token.KindRightParens)
	case r == '[':
		t.consumeOne(token.KindLeftSquare)
	case r == ']':
		t.consumeOne(token.KindRightSquare)
	case r == '{':
		t.consumeOne(token.KindLeftCurly)
	case r == '}':
		t.consumeOne(token.KindRightCurly)
	case r == ':':
		t.consumeOne(token.KindColon)
	case r == ';':
		t.consumeOne(token.KindSemicolon)
	case r == ',':
		t.consumeOne(token.KindComma)
	case r == '+' || r == '.':
		if t.startsNumber() {
			t.consumeNumeric()
		} else {
			t.consumeDelim()
		}
	case r == '-':
		switch {
		case t.startsNumber():
			t.consumeNumeric()
		case t.peek(1) == '-' && t.peek(2) == '>':
			t.consumeFixed(token.KindCdc, 3)
		case t.identSequenceStartAt(0):
			t.consumeIdentLike()
		default:
			t.consumeDelim()
		}
	case r == '<':
		cdo := t.isolated(func() bool {
			t.advance()
			return t.peek(0) == '!' && t.peek(1) == '-' && t.peek(2) == '-'
		})
		if cdo {
			t.consumeFixed(token.KindCdo, 4)
		} else {
			t.consumeDelim()
		}
	case r == '@':
		keyword := t.isolated(func() bool {
			t.advance()
			return t.identSequenceStartAt(0)
		})
		if keyword {
			t.advance()
			t.emit(token.Token{Kind: token.KindAtKeyword, Value: t.consumeIdentSequence()})
		} else {
			t.consumeDelim()
		}
	case r == '\\':
		if t.validEscapeAt(0) {
			t.consumeIdentLike()
		} else {
			t.consumeDelim()
		}
	case isDigit(r):
		t.consumeNumeric()
	case isIdentStart(r):
		t.consumeIdentLike()
	default:
		t.consumeDelim()
	}
}

func (t *tokenizer) consumeOne(kind token.Kind) {
	t.emit(token.Token{Kind: kind, Value: string(t.advance())})
}

func (t *tokenizer) consumeDelim() {
	t.consumeOne(token.KindDelim)
}

func (t *tokenizer) consumeFixed(kind token.Kind, n int) {
	for range n {
		t.advance()
	}
	t.emit(token.Token{Kind: kind})
}

// consumeComment emits comment even when it is not terminated, running to the
// end of input in that case.
func (t *tokenizer) consumeComment() {
	t.advance()
	t.advance()
	data := t.scoped(func() {
		for !t.eof() && (t.peek(0) != '*' || t.peek(1) != '/') {
			t.advance()
		}
	})
	if !t.eof() {
		t.advance()
		t.advance()
	}
	t.emit(token.Token{Kind: token.KindComment, Value: string(data)})
}

func (t *tokenizer) consumeWhitespace() {
	data := t.scoped(func() {
		for isWhitespace(t.peek(0)) {
			t.advance()
		}
	})
	t.emit(token.Token{Kind: token.KindWhitespace, Value: string(data)})
}

// consumeString stops before an unescaped LF producing bad-string. Escaped
// LF continues the string and is kept only in the raw text.
func (t *tokenizer) consumeString() {
	quote := t.advance()
	kind := token.KindString

	var b strings.Builder
loop:
	for {
		switch r := t.peek(0); {
		case r == eof:
			break loop
		case r == quote:
			t.advance()
			break loop
		case r == '\n':
			kind = token.KindBadString
			break loop
		case r == '\\':
			t.advance()
			switch t.peek(0) {
			case eof:
			case '\n':
				t.advance()
			default:
				b.WriteRune(t.consumeEscapedCodepoint())
			}
		default:
			b.WriteRune(t.advance())
		}
	}

	tok := token.Token{Kind: kind, Quote: quote}
	if kind == token.KindString {
		tok.Value = b.String()
	}
	t.emit(tok)
}

// consumeEscapedCodepoint expects leading backslash to be consumed already.
func (t *tokenizer) consumeEscapedCodepoint() rune {
	switch r := t.peek(0); {
	case isHexDigit(r):
		v := 0
		for i := 0; i < 6 && isHexDigit(t.peek(0)); i++ {
			v = v*16 + hexValue(t.advance())
		}
		if isWhitespace(t.peek(0)) {
			t.advance()
		}
		if v == 0 || isSurrogate(v) || v > unicode.MaxRune {
			return utf8.RuneError
		}
		return rune(v)
	case r == eof:
		return utf8.RuneError
	default:
		return t.advance()
	}
}

func (t *tokenizer) consumeIdentSequence() string {
	var b strings.Builder
	for {
		switch r := t.peek(0); {
		case isIdentChar(r):
			b.WriteRune(t.advance())
		case t.validEscapeAt(0):
			t.advance()
			b.WriteRune(t.consumeEscapedCodepoint())
		default:
			return b.String()
		}
	}
}

func (t *tokenizer) consumeHash() {
	t.advance()
	id := t.identSequenceStartAt(0)
	t.emit(token.Token{Kind: token.KindHash, Value: t.consumeIdentSequence(), ID: id})
}

// consumeIdentLike produces ident, function or url tokens. For url( followed
// by a quoted string only function token is produced and the string is left
// for the following tokens.
func (t *tokenizer) consumeIdentLike() {
	name := t.consumeIdentSequence()
	switch {
	case strings.EqualFold(name, "url") && t.peek(0) == '(':
		t.advance()
		for isWhitespace(t.peek(0)) && isWhitespace(t.peek(1)) {
			t.advance()
		}
		if r := t.peek(0); isQuote(r) || (isWhitespace(r) && isQuote(t.peek(1))) {
			t.emit(token.Token{Kind: token.KindFunction, Value: name})
			return
		}
		t.consumeURL()
	case t.peek(0) == '(':
		t.advance()
		t.emit(token.Token{Kind: token.KindFunction, Value: name})
	default:
		t.emit(token.Token{Kind: token.KindIdent, Value: name})
	}
}

// consumeURL expects "url(" to be consumed already.
func (t *tokenizer) consumeURL() {
	for isWhitespace(t.peek(0)) {
		t.advance()
	}

	var b strings.Builder
	for {
		switch r := t.peek(0); {
		case r == ')':
			t.advance()
			t.emit(token.Token{Kind: token.KindUrl, Value: b.String()})
			return
		case r == eof:
			t.emit(token.Token{Kind: token.KindUrl, Value: b.String()})
			return
		case isWhitespace(r):
			for isWhitespace(t.peek(0)) {
				t.advance()
			}
			if t.peek(0) == ')' || t.peek(0) == eof {
				continue
			}
			t.consumeBadURL()
			return
		case isQuote(r) || r == '(' || isNonPrintable(r):
			t.consumeBadURL()
			return
		case r == '\\':
			if !t.validEscapeAt(0) {
				t.consumeBadURL()
				return
			}
			t.advance()
			b.WriteRune(t.consumeEscapedCodepoint())
		default:
			b.WriteRune(t.advance())
		}
	}
}

// consumeBadURL skips to the closing parenthesis, which is left in place, and
// emits bad-url.
func (t *tokenizer) consumeBadURL() {
	for !t.eof() && t.peek(0) != ')' {
		if t.validEscapeAt(0) {
			t.advance()
			t.consumeEscapedCodepoint()
			continue
		}
		t.advance()
	}
	t.emit(token.Token{Kind: token.KindBadUrl})
}

func (t *tokenizer) consumeNumeric() {
	repr, n, typ := t.consumeNumber()
	switch {
	case t.identSequenceStartAt(0):
		unit := t.consumeIdentSequence()
		t.emit(token.Token{Kind: token.KindDimension, Value: repr, Number: n, Type: typ, Unit: unit})
	case t.peek(0) == '%':
		t.advance()
		t.emit(token.Token{Kind: token.KindPercentage, Value: repr, Number: n, Type: typ})
	default:
		t.emit(token.Token{Kind: token.KindNumber, Value: repr, Number: n, Type: typ})
	}
}

func (t *tokenizer) consumeNumber() (string, float64, token.NumberType) {
	typ := token.NumberTypeInteger
	repr := t.scoped(func() {
		if r := t.peek(0); r == '+' || r == '-' {
			t.advance()
		}
		t.consumeDigits()
		if t.peek(0) == '.' && isDigit(t.peek(1)) {
			t.advance()
			t.consumeDigits()
			typ = token.NumberTypeDecimal
		}
		e, sign, next := t.peek(0), t.peek(1), t.peek(2)
		if (e == 'e' || e == 'E') && (isDigit(sign) || ((sign == '+' || sign == '-') && isDigit(next))) {
			t.advance()
			if sign == '+' || sign == '-' {
				t.advance()
			}
			t.consumeDigits()
			typ = token.NumberTypeDecimal
		}
	})
	s := string(repr)
	// out of range literals come back as +-Inf or 0 which is what we want
	n, _ := strconv.ParseFloat(s, 64)
	return s, n, typ
}

func (t *tokenizer) consumeDigits() {
	for isDigit(t.peek(0)) {
		t.advance()
	}
}
