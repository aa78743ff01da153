package vm

import "strconv"

// ValueKind discriminates VM value variants. The constant pool carries
// every literal kind; arithmetic opcodes accept only the numeric ones.
type ValueKind uint8

const (
	ValInvalid ValueKind = iota
	ValBoolean
	ValInteger
	ValFloat
	ValCharacter
	ValString
)

var valueKindNames = [...]string{
	ValInvalid:   "Invalid",
	ValBoolean:   "Boolean",
	ValInteger:   "Integer",
	ValFloat:     "Float",
	ValCharacter: "Character",
	ValString:    "String",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) && valueKindNames[k] != "" {
		return valueKindNames[k]
	}
	return "Invalid"
}

// Value is one VM stack slot. Fields are exported so chunks serialize
// with msgpack.
type Value struct {
	Kind  ValueKind `msgpack:"k"`
	Bool  bool      `msgpack:"b,omitempty"`
	Int   int64     `msgpack:"i,omitempty"`
	Float float64   `msgpack:"f,omitempty"`
	Rune  rune      `msgpack:"c,omitempty"`
	Str   string    `msgpack:"s,omitempty"`
}

// Boolean builds a boolean value.
func Boolean(b bool) Value {
	return Value{Kind: ValBoolean, Bool: b}
}

// Integer builds an integer value.
func Integer(i int64) Value {
	return Value{Kind: ValInteger, Int: i}
}

// Float64 builds a float value.
func Float64(f float64) Value {
	return Value{Kind: ValFloat, Float: f}
}

// Character builds a character value.
func Character(r rune) Value {
	return Value{Kind: ValCharacter, Rune: r}
}

// Str builds a string value.
func Str(s string) Value {
	return Value{Kind: ValString, Str: s}
}

func (v Value) String() string {
	switch v.Kind {
	case ValBoolean:
		if v.Bool {
			return "#t"
		}
		return "#f"
	case ValInteger:
		return strconv.FormatInt(v.Int, 10)
	case ValFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValCharacter:
		return "'" + string(v.Rune) + "'"
	case ValString:
		return strconv.Quote(v.Str)
	default:
		return "#<invalid>"
	}
}
