package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

// ===== Rune access on top of Cursor =====

// peekRune reads the rune at the cursor without consuming it.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	return r, sz
}

// bumpRune consumes the rune at the cursor.
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// ===== Classifiers =====

// idStartExtra are the ASCII symbols allowed to start an identifier in
// addition to letters. This is what lets '+', '<=' or 'null?' be plain
// identifiers.
const idStartExtra = "!$%&*/<=>?^_~:+-"

func isIdentStartRune(r rune) bool {
	return unicode.IsLetter(r) || strings.ContainsRune(idStartExtra, r)
}

func isIdentContinueRune(r rune) bool {
	return isIdentStartRune(r) || unicode.IsDigit(r) || r == '.' || r == '@'
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// isDelimiter reports whether b ends an atom or boolean run: whitespace
// or one of the structural characters.
func isDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '(', ')', '"', '\'', ';', '`':
		return true
	}
	return false
}

// takeUntilDelimiter consumes bytes up to the next delimiter or EOF.
func (lx *Lexer) takeUntilDelimiter() {
	for !lx.cursor.EOF() && !isDelimiter(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// takeIdentContinue consumes a run of identifier-continue runes.
func (lx *Lexer) takeIdentContinue() {
	for {
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			return
		}
		lx.bumpRune()
	}
}
