package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"ream/internal/diag"
	"ream/internal/token"
)

const floatRadixHelp = "this number appears to be a float, however floats can only be created using decimal notation"

// scanNumber consumes a number run and decodes it.
// Supported shapes: 123, 1_000, 1.5, 0x1F, 0o17, 0b101. Underscores are
// stripped before decoding; floats must be decimal.
//
// The run greedily takes hex digits plus radix markers and '.', so a
// malformed tail ("123abc") stays inside one Invalid token instead of
// leaking extra tokens.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for {
		b := lx.cursor.Peek()
		if isHex(b) || b == 'x' || b == 'X' || b == 'o' || b == 'O' || b == '_' || b == '.' {
			lx.cursor.Bump()
			continue
		}
		break
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	digits := strings.ReplaceAll(text, "_", "")

	radix := 10
	rest := digits
	if len(digits) >= 2 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X':
			radix, rest = 16, digits[2:]
		case 'o', 'O':
			radix, rest = 8, digits[2:]
		case 'b', 'B':
			radix, rest = 2, digits[2:]
		}
	}

	if strings.Contains(digits, ".") {
		if radix != 10 {
			lx.errLexNote(diag.LexInvalidNumber, sp,
				fmt.Sprintf("invalid number literal %q", text), floatRadixHelp)
			return token.Token{Kind: token.Invalid, Span: sp, Text: text}
		}
		val, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			lx.errLex(diag.LexInvalidNumber, sp, fmt.Sprintf("invalid number literal %q", text))
			return token.Token{Kind: token.Invalid, Span: sp, Text: text}
		}
		return token.Token{Kind: token.FloatLit, Span: sp, Text: text, Float: val}
	}

	val, err := strconv.ParseUint(rest, radix, 64)
	if err != nil {
		lx.errLex(diag.LexInvalidNumber, sp, fmt.Sprintf("invalid number literal %q", text))
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: token.IntLit, Span: sp, Text: text, Int: val}
}
