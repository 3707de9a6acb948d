package analyze

import (
	"cssfe/token"
	"cssfe/tokenizer"
)

func tokenize(s string) []token.Token {
	return tokenizer.Tokenize(s)
}
