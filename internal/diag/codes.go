package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for unmapped errors.
	UnknownCode Code = 0

	// Lexical
	LexInfo             Code = 1000
	LexUnexpectedEof    Code = 1001
	LexUnexpectedSymbol Code = 1002
	LexInvalidBoolean   Code = 1003
	LexInvalidEscape    Code = 1004
	LexInvalidNumber    Code = 1005
	LexUnknownSymbol    Code = 1006

	// Syntax
	SynInfo                 Code = 2000
	SynUnexpectedEof        Code = 2001
	SynUnexpectedToken      Code = 2002
	SynInvalidExpression    Code = 2003
	SynInvalidAnnotation    Code = 2004
	SynInvalidDatum         Code = 2005
	SynInvalidLambdaFormals Code = 2006
	SynInvalidTypeSpec      Code = 2007

	// Evaluation
	EvalInfo               Code = 3000
	EvalUnknownIdentifier  Code = 3001
	EvalNotAFunction       Code = 3002
	EvalWrongArgumentCount Code = 3003
	EvalWrongType          Code = 3004
	EvalDivideByZero       Code = 3005
	EvalUnsupported        Code = 3006

	// I/O
	IOLoadFileError Code = 4001

	// VM runtime
	RunInfo           Code = 5000
	RunWrongType      Code = 5001
	RunStackOverflow  Code = 5002
	RunStackUnderflow Code = 5003
	RunDivideByZero   Code = 5004
	RunBadConstant    Code = 5005
	RunBadOpcode      Code = 5006
)

var codeDescription = map[Code]string{
	UnknownCode:             "Unknown error",
	LexInfo:                 "Lexical information",
	LexUnexpectedEof:        "Unexpected end of input",
	LexUnexpectedSymbol:     "Unexpected symbol",
	LexInvalidBoolean:       "Invalid boolean literal",
	LexInvalidEscape:        "Invalid escape sequence",
	LexInvalidNumber:        "Invalid number literal",
	LexUnknownSymbol:        "Unknown symbol",
	SynInfo:                 "Syntax information",
	SynUnexpectedEof:        "Unexpected end of input",
	SynUnexpectedToken:      "Unexpected token",
	SynInvalidExpression:    "Invalid expression",
	SynInvalidAnnotation:    "Invalid annotation",
	SynInvalidDatum:         "Invalid datum",
	SynInvalidLambdaFormals: "Invalid lambda formals",
	SynInvalidTypeSpec:      "Invalid type specification",
	EvalInfo:                "Evaluation information",
	EvalUnknownIdentifier:   "Unknown identifier",
	EvalNotAFunction:        "Not a function",
	EvalWrongArgumentCount:  "Wrong argument count",
	EvalWrongType:           "Wrong type",
	EvalDivideByZero:        "Division by zero",
	EvalUnsupported:         "Unsupported expression",
	IOLoadFileError:         "I/O load file error",
	RunInfo:                 "Runtime information",
	RunWrongType:            "Wrong operand type",
	RunStackOverflow:        "Stack overflow",
	RunStackUnderflow:       "Stack underflow",
	RunDivideByZero:         "Division by zero",
	RunBadConstant:          "Bad constant index",
	RunBadOpcode:            "Bad opcode",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("RUN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
