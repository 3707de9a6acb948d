package parser

import (
	"fmt"

	"go.uber.org/zap"

	"cssfe/token"
)

// stream is a forward cursor over a fixed token slice. It never backtracks,
// reinterpreting a region means starting another stream over a sub-slice.
type stream struct {
	log      *zap.Logger
	tokens   []token.Token
	idx      int
	eof      token.Token
	lastEnd  token.Position
	warnings *[]string
}

// newStream positions the end of input sentinel right after the last token,
// or at fallback when there are no tokens.
func newStream(log *zap.Logger, tokens []token.Token, fallback token.Position, warnings *[]string) *stream {
	end := fallback
	if n := len(tokens); n > 0 {
		end = tokens[n-1].Span.End
	}
	start := end
	if len(tokens) > 0 {
		start = tokens[0].Span.Start
	}
	return &stream{
		log:      log,
		tokens:   tokens,
		eof:      token.EOF(end),
		lastEnd:  start,
		warnings: warnings,
	}
}

// sub starts independent stream over tokens which are part of this one.
func (s *stream) sub(tokens []token.Token, fallback token.Position) *stream {
	return newStream(s.log, tokens, fallback, s.warnings)
}

func (s *stream) peek() token.Token {
	if s.idx < len(s.tokens) {
		return s.tokens[s.idx]
	}
	return s.eof
}

// advance consumes current token. At the end of input it keeps returning the
// sentinel.
func (s *stream) advance() token.Token {
	t := s.peek()
	if s.idx < len(s.tokens) {
		s.idx++
		s.lastEnd = t.Span.End
	}
	return t
}

func (s *stream) skipWhitespace() {
	for s.peek().Kind == token.KindWhitespace {
		s.advance()
	}
}

// skipToSemicolon discards tokens up to, not including, the next semicolon.
func (s *stream) skipToSemicolon() {
	for k := s.peek().Kind; k != token.KindSemicolon && k != token.KindEOF; k = s.peek().Kind {
		s.advance()
	}
}

// slice returns tokens consumed between two cursor positions. Capacity is
// clipped so nothing can append into the parent's tokens.
func (s *stream) slice(from, to int) []token.Token {
	return s.tokens[from:to:to]
}

// spanFrom covers everything consumed since start.
func (s *stream) spanFrom(start token.Position) token.Span {
	end := s.lastEnd
	if end.Index < start.Index {
		end = start
	}
	return token.Span{Start: start, End: end}
}

// warn records recovered parse error.
func (s *stream) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	at := s.peek().Span.Start
	s.log.Debug("CSS parse error", zap.String("error", msg), zap.Stringer("at", at))
	if s.warnings != nil {
		*s.warnings = append(*s.warnings, fmt.Sprintf("%s: %s", at, msg))
	}
}

// syntaxError reports problem at the end of the current token.
func (s *stream) syntaxError(format string, args ...any) error {
	at := s.peek().Span.End
	return &SyntaxError{Message: fmt.Sprintf(format, args...), Line: at.Line, Column: at.Column}
}
