package naming

import "strings"

// Normalizer maps raw native identifiers to their public stub spelling.
// The zero value performs no renaming.
type Normalizer struct {
	// Prefix is the native identifier prefix to strip, e.g. "wx".
	Prefix string

	// Package is the public package name the stubs belong to, used for
	// qualified references such as the deprecation decorator.
	Package string
}

// New returns a Normalizer stripping prefix and qualifying with pkg.
func New(prefix, pkg string) *Normalizer {
	return &Normalizer{Prefix: prefix, Package: pkg}
}

// Fix strips the configured native prefix from name. The prefix is only
// stripped when it is followed by an upper-case letter or an underscore,
// so ordinary words that merely start with the prefix letters survive.
func (n *Normalizer) Fix(name string) string {
	if n == nil || n.Prefix == "" || !strings.HasPrefix(name, n.Prefix) {
		return name
	}

	rest := name[len(n.Prefix):]
	if rest == "" {
		return name
	}

	c := rest[0]
	if (c >= 'A' && c <= 'Z') || c == '_' {
		return rest
	}

	return name
}

// FixBase normalizes a base-class reference. Namespace separators become
// attribute access before the prefix is stripped.
func (n *Normalizer) FixBase(name string) string {
	return n.Fix(strings.ReplaceAll(name, "::", "."))
}

// Deprecated returns the decorator line marking a stub as deprecated.
func (n *Normalizer) Deprecated() string {
	if n == nil || n.Package == "" {
		return "@deprecated"
	}
	return "@" + n.Package + ".deprecated"
}

// CleanType maps a declared native type to its stub spelling. Qualifiers
// and indirection are dropped first; well-known scalar spellings map to
// builtin names, everything else gets the prefix treatment. An empty
// result means the type could not be classified.
func (n *Normalizer) CleanType(typ string) string {
	t := strings.ReplaceAll(typ, "*", " ")
	t = strings.ReplaceAll(t, "&", " ")

	var kept []string
	for _, word := range strings.Fields(t) {
		switch word {
		case "const", "volatile", "struct", "enum":
			continue
		}
		kept = append(kept, word)
	}

	if len(kept) == 0 {
		return ""
	}

	isChar := kept[0] == "char"
	joined := strings.Join(kept, " ")

	switch joined {
	case "int", "long", "short", "size_t", "ssize_t", "byte",
		"long long", "unsigned", "unsigned int", "unsigned long",
		"unsigned short", "unsigned char", "signed int", "signed long":
		return "int"
	case "float", "double", "long double":
		return "float"
	case "bool":
		return "bool"
	case "void":
		return "None"
	case "char", "string":
		return "str"
	}

	// A bare char with dropped indirection was a C string.
	if isChar && len(kept) == 1 {
		return "str"
	}

	if strings.Contains(joined, " ") {
		// Multi-word spelling we do not recognize.
		return ""
	}

	return n.FixBase(joined)
}

// magicMethods maps native operator method names to their stub-dialect
// magic method names.
var magicMethods = map[string]string{
	"operator==": "__eq__",
	"operator!=": "__ne__",
	"operator<":  "__lt__",
	"operator<=": "__le__",
	"operator>":  "__gt__",
	"operator>=": "__ge__",
	"operator+":  "__add__",
	"operator-":  "__sub__",
	"operator*":  "__mul__",
	"operator/":  "__truediv__",
	"operator+=": "__iadd__",
	"operator-=": "__isub__",
	"operator*=": "__imul__",
	"operator/=": "__itruediv__",
	"operator!":  "__bool__",
	"operator[]": "__getitem__",
	"operator()": "__call__",
}

// MagicName maps an operator method name to its magic method spelling,
// or returns the name unchanged.
func MagicName(name string) string {
	if magic, ok := magicMethods[name]; ok {
		return magic
	}
	return name
}
