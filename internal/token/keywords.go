package token

var keywords = map[string]Kind{
	"quote":   KwQuote,
	"let":     KwLet,
	"fn":      KwFn,
	"lambda":  KwLambda,
	"seq":     KwSeq,
	"begin":   KwSeq,
	"if":      KwIf,
	"include": KwInclude,

	"Bottom":   KwBottom,
	"Tuple":    KwTuple,
	"List":     KwList,
	"Vector":   KwVector,
	"Function": KwFunction,
	"Sum":      KwSum,
	"Product":  KwProduct,
}

// LookupKeyword returns the keyword kind for ident, if there is one.
// Keywords are case sensitive; type constructor keywords are capitalized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
