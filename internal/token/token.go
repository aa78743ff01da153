package token

import (
	"ream/internal/source"
)

// Token represents a single source token with its location and trivia.
// Literal tokens additionally carry their decoded payload so downstream
// phases never re-parse Text.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia

	// Decoded literal payloads; valid only for the matching Kind.
	Int   uint64  // IntLit
	Float float64 // FloatLit
	Rune  rune    // CharLit
	Bool  bool    // BoolLit
	Str   string  // StringLit (inner text), AtomLit (name without ':')
}

// IsLiteral reports whether the token is a literal of any kind.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case BoolLit, IntLit, FloatLit, CharLit, StringLit, AtomLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwQuote, KwLet, KwFn, KwLambda, KwSeq, KwIf, KwInclude,
		KwBottom, KwTuple, KwList, KwVector, KwFunction, KwSum, KwProduct:
		return true
	default:
		return false
	}
}

// IsTypeKeyword reports whether the token names a type constructor.
func (t Token) IsTypeKeyword() bool {
	switch t.Kind {
	case KwBottom, KwTuple, KwList, KwVector, KwFunction, KwSum, KwProduct:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
