package repr

import "reprkit/internal/common"

// TokenKind classifies the tokens emitted by Pretty.
type TokenKind int

const (
	TokenOpen   TokenKind = iota // head name plus opening parenthesis
	TokenIndent                  // increase indentation
	TokenName                    // attribute name plus "="
	TokenValue                   // formatted attribute value
	TokenComma                   // separator; printers break the line here
	TokenDedent                  // decrease indentation
	TokenClose                   // closing parenthesis
)

// String returns a human-readable token kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenOpen:
		return "open"
	case TokenIndent:
		return "indent"
	case TokenName:
		return "name"
	case TokenValue:
		return "value"
	case TokenComma:
		return "comma"
	case TokenDedent:
		return "dedent"
	case TokenClose:
		return "close"
	default:
		return common.UnknownStr
	}
}

// Token is one unit of pretty-printer output. Text carries the printable
// payload for Open, Name, Value, and Close tokens; Indent, Comma, and
// Dedent are structural and carry none.
type Token struct {
	Kind TokenKind
	Text string
}

// Pretty returns the token sequence an indenting pretty-printer consumes
// for v. format renders nested values; pass nil to use Debug. Every call
// builds a fresh slice, so independent consumers can request the sequence
// at any time, and abandoning one sequence part-way has no effect on
// anything else.
func Pretty(v Representable, format func(any) string) []Token {
	if format == nil {
		format = Debug
	}

	args := v.ReprArgs()
	toks := make([]Token, 0, 4+3*len(args))

	toks = append(toks,
		Token{Kind: TokenOpen, Text: Name(v) + "("},
		Token{Kind: TokenIndent},
	)

	for _, a := range args {
		if a.Name != "" {
			toks = append(toks, Token{Kind: TokenName, Text: a.Name + "="})
		}

		toks = append(toks,
			Token{Kind: TokenValue, Text: format(a.Value)},
			Token{Kind: TokenComma},
		)
	}

	toks = append(toks,
		Token{Kind: TokenDedent},
		Token{Kind: TokenClose, Text: ")"},
	)

	return toks
}

// Rich returns the attribute entries for structured display tools. The
// slice is freshly built per call; mutating it affects neither the object
// nor other consumers.
func Rich(v Representable) []Attr {
	args := v.ReprArgs()
	out := make([]Attr, len(args))
	copy(out, args)

	return out
}
