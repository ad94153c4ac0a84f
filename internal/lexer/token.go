package lexer

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind int

const (
	EOF Kind = iota
	Newline
	Layout      // @layout
	Breakpoints // @breakpoints
	Ident
	LBrace
	RBrace
	Slot     // [name], Text holds the bare name
	GridLine // verbatim border or content line
	Property // key: value, Text holds the trimmed "key: value" text
	Ellipsis // ...
)

var kindNames = map[Kind]string{
	EOF:         "end of input",
	Newline:     "newline",
	Layout:      "@layout",
	Breakpoints: "@breakpoints",
	Ident:       "identifier",
	LBrace:      "'{'",
	RBrace:      "'}'",
	Slot:        "slot marker",
	GridLine:    "grid line",
	Property:    "property",
	Ellipsis:    "'...'",
}

// String returns a human readable name used in parse errors.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexeme with its 1-based source position.
type Token struct {
	Kind   Kind
	Text   string
	Line   int
	Column int
}

// KeyValue splits a Property token into its key and value.
// ok is false for any other kind of token.
func (t Token) KeyValue() (key, value string, ok bool) {
	if t.Kind != Property {
		return "", "", false
	}
	key, value, found := cutProperty(t.Text)
	return key, value, found
}

// String renders the token for error messages.
func (t Token) String() string {
	switch t.Kind {
	case EOF, Newline, LBrace, RBrace, Ellipsis, Layout, Breakpoints:
		return t.Kind.String()
	case Slot:
		return fmt.Sprintf("[%s]", t.Text)
	default:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	}
}
