package guess

import "regexp"

// Kind is the coarse scalar classification of a literal.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindInt
	KindFloat
	KindString
	KindAny

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindAny:
		return "any"
	default:
		return "unknown"
	}
}

// StubType returns the stub-dialect type spelling for the kind.
func (k Kind) StubType() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "str"
	default:
		return "Any"
	}
}

var (
	intPattern   = regexp.MustCompile(`^-?(0[xX][0-9a-fA-F]+|0[bB][01]+|\d+)[uUlL]*$`)
	floatPattern = regexp.MustCompile(`^-?(\d+\.\d*|\.\d+)([eE][-+]?\d+)?[fF]?$|^-?\d+([eE][-+]?\d+[fF]?|[fF])$`)
)

// Int reports whether the literal looks like an integer constant,
// including hex, binary and suffixed native spellings.
func Int(literal string) bool {
	return intPattern.MatchString(literal)
}

// Float reports whether the literal looks like a floating point
// constant.
func Float(literal string) bool {
	return floatPattern.MatchString(literal)
}

// Str reports whether the literal looks like a quoted string constant.
func Str(literal string) bool {
	for i := 0; i < len(literal); i++ {
		if literal[i] == '"' || literal[i] == '\'' {
			return true
		}
	}
	return false
}

// Classify buckets a literal by, in priority order, the integer pattern,
// the float pattern, the string pattern, and finally the any-type
// sentinel.
func Classify(literal string) Kind {
	switch {
	case literal == "":
		return KindAny
	case Int(literal):
		return KindInt
	case Float(literal):
		return KindFloat
	case Str(literal):
		return KindString
	default:
		return KindAny
	}
}

// Define buckets a define literal into string-or-integer: the upstream
// representation of defines is always textual, so any quote character
// means string and everything else is assumed integral.
func Define(value string) Kind {
	for i := 0; i < len(value); i++ {
		if value[i] == '"' {
			return KindString
		}
	}
	return KindInt
}
