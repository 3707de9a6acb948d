package token

import (
	"testing"
)

func TestKind_Mirror(t *testing.T) {
	tests := []struct {
		open Kind
		want Kind
	}{
		{KindLeftCurly, KindRightCurly},
		{KindLeftSquare, KindRightSquare},
		{KindLeftParens, KindRightParens},
	}

	for _, tt := range tests {
		t.Run(tt.open.String(), func(t *testing.T) {
			if !tt.open.IsOpen() {
				t.Errorf("IsOpen() = false for %s", tt.open)
			}
			if got := tt.open.Mirror(); got != tt.want {
				t.Errorf("Mirror() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestKind_MirrorPanicsOnNonBracket(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Mirror() on ident did not panic")
		}
	}()
	KindIdent.Mirror()
}

func TestKind_Parse(t *testing.T) {
	k, err := ParseKind("at-keyword")
	if err != nil {
		t.Fatalf("ParseKind() error = %v", err)
	}
	if k != KindAtKeyword {
		t.Errorf("ParseKind() = %s, want at-keyword", k)
	}

	if _, err := ParseKind("selector"); err == nil {
		t.Error("ParseKind() expected error for unknown kind")
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{"ident", Token{Kind: KindIdent, Value: "color"}, `ident("color")`},
		{"hash", Token{Kind: KindHash, Value: "fff"}, `hash("fff")`},
		{"integer", Token{Kind: KindNumber, Number: 12, Type: NumberTypeInteger}, `number(12)`},
		{"decimal", Token{Kind: KindNumber, Number: 1.5, Type: NumberTypeDecimal}, `number(1.5)`},
		{"decimal whole", Token{Kind: KindNumber, Number: 500, Type: NumberTypeDecimal}, `number(500.0)`},
		{"percentage", Token{Kind: KindPercentage, Number: 50}, `percentage(50)`},
		{"dimension", Token{Kind: KindDimension, Number: 90, Unit: "px"}, `dimension(90 "px")`},
		{"bad url", Token{Kind: KindBadUrl}, `bad-url()`},
		{"cdo", Token{Kind: KindCdo}, `cdo()`},
		{"eof", EOF(StartPosition), `EOF()`},
		{"string with quote", Token{Kind: KindString, Value: `a"b`}, `string("a\"b")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	tokens := []Token{
		{Kind: KindIdent, Value: "a"},
		{Kind: KindColon, Value: ":"},
		{Kind: KindWhitespace, Value: " "},
		{Kind: KindNumber, Number: 1, Type: NumberTypeInteger},
	}
	want := `ident("a") colon(":") whitespace(" ") number(1)`
	if got := Stringify(tokens); got != want {
		t.Errorf("Stringify() = %s, want %s", got, want)
	}
	if got := Stringify(nil); got != "" {
		t.Errorf("Stringify(nil) = %q, want empty", got)
	}
}

func TestToken_Predicates(t *testing.T) {
	bang := Token{Kind: KindDelim, Value: "!"}
	if !bang.IsDelim("!") || bang.IsDelim("&") {
		t.Error("IsDelim() mismatch")
	}
	imp := Token{Kind: KindIdent, Value: "ImPoRtAnT"}
	if !imp.IsIdent("important") {
		t.Error("IsIdent() should match case-insensitively")
	}
	if (Token{Kind: KindString, Value: "important"}).IsIdent("important") {
		t.Error("IsIdent() matched a string token")
	}
}

func TestSpan_Cover(t *testing.T) {
	a := Span{Start: Position{0, 1, 1}, End: Position{3, 1, 4}}
	b := Span{Start: Position{5, 2, 1}, End: Position{9, 2, 5}}
	got := a.Cover(b)
	if got.Start != a.Start || got.End != b.End {
		t.Errorf("Cover() = %s, want %s-%s", got, a.Start, b.End)
	}
	if got.Len() != 9 {
		t.Errorf("Len() = %d, want 9", got.Len())
	}
}
