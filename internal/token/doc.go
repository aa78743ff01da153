// Package token defines lexical token kinds and trivia for the ream front-end.
// Invariants:
//   - Token.Text is the exact source text of the token.
//   - Token.Span matches Text exactly (Start..End).
//   - Literal tokens carry decoded payloads (Int, Float, Rune, Bool, Str);
//     downstream phases never re-parse Text.
//   - Whitespace and ';' line comments are leading Trivia and never appear
//     in the main token stream.
//   - 'seq' and 'begin' lex to the same kind; 'fn' is reserved but unused.
package token
