package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwQuote represents the 'quote' keyword.
	KwQuote // quote
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwFn represents the 'fn' keyword (reserved, no surface production).
	KwFn // fn
	// KwLambda represents the 'lambda' keyword.
	KwLambda // lambda
	// KwSeq represents the 'seq' keyword ('begin' lexes to the same kind).
	KwSeq // seq
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwInclude represents the 'include' keyword.
	KwInclude // include

	// KwBottom represents the 'Bottom' type keyword.
	KwBottom // Bottom
	// KwTuple represents the 'Tuple' type keyword.
	KwTuple // Tuple
	// KwList represents the 'List' type keyword.
	KwList // List
	// KwVector represents the 'Vector' type keyword.
	KwVector // Vector
	// KwFunction represents the 'Function' type keyword.
	KwFunction // Function
	// KwSum represents the 'Sum' type keyword.
	KwSum // Sum
	// KwProduct represents the 'Product' type keyword.
	KwProduct // Product

	// BoolLit represents a boolean literal token (#t, #true, #f, #false).
	BoolLit
	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// CharLit represents a character literal token.
	CharLit
	// StringLit represents a string literal token.
	StringLit
	// AtomLit represents an atom literal token (:name).
	AtomLit

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// Dot represents the dot token used in dotted datum lists.
	Dot // .
	// Backtick represents the backtick quotation shorthand token.
	Backtick // `
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	KwQuote:    "quote",
	KwLet:      "let",
	KwFn:       "fn",
	KwLambda:   "lambda",
	KwSeq:      "seq",
	KwIf:       "if",
	KwInclude:  "include",
	KwBottom:   "Bottom",
	KwTuple:    "Tuple",
	KwList:     "List",
	KwVector:   "Vector",
	KwFunction: "Function",
	KwSum:      "Sum",
	KwProduct:  "Product",
	BoolLit:    "BoolLit",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	CharLit:    "CharLit",
	StringLit:  "StringLit",
	AtomLit:    "AtomLit",
	LParen:     "'('",
	RParen:     "')'",
	Dot:        "'.'",
	Backtick:   "'`'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Invalid"
}
