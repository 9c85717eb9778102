package model

// Module is the root of one extraction tree. It maps to one destination
// file pair.
type Module struct {
	ItemBase

	// Name is the native module name, e.g. "_core".
	Name string

	// Docstring becomes the top-level docstring of a freshly created
	// destination file.
	Docstring string

	// Imports lists sibling module names referenced by this module.
	Imports []string

	// Items are the top-level declarations in original order.
	Items []Item
}

// Class describes a native class.
type Class struct {
	ItemBase

	Name      string
	StubName  string // public name override; empty means Name
	Docstring string

	// Bases are the declared base-class names. TemplateParams that appear
	// in Bases are dropped during emission.
	Bases          []string
	TemplateParams []string

	// BaseOverride, when non-nil, replaces the computed base list for
	// stub output.
	BaseOverride []string

	// InnerClasses are nested class declarations.
	InnerClasses []*Class

	// Items are the class members in original order. Protection is
	// recorded per member; private members never reach this tree.
	Items []Item
}

// PublicName returns the stub-facing class name.
func (c *Class) PublicName() string {
	if c.StubName != "" {
		return c.StubName
	}
	return c.Name
}

// Function describes a callable: a module-level function or a class
// method, together with its overload chain.
type Function struct {
	ItemBase

	Name      string
	StubName  string // public name override; empty means Name
	Docstring string

	// ArgsString is the precomputed signature text from the extraction
	// stage, e.g. "(x, y=0)". When empty, Params is rendered instead.
	ArgsString string

	// Params is the structured parameter list, used only when ArgsString
	// is absent.
	Params []Param

	IsStatic bool
	IsCtor   bool
	IsDtor   bool

	// Overloads are the alternate signatures recorded after this one,
	// in declaration order.
	Overloads []*Function
}

// PublicName returns the stub-facing callable name.
func (f *Function) PublicName() string {
	if f.StubName != "" {
		return f.StubName
	}
	return f.Name
}

// HasOverloads reports whether the callable carries alternate signatures.
func (f *Function) HasOverloads() bool { return len(f.Overloads) > 0 }

// All returns the callable followed by its overloads, in declaration
// order.
func (f *Function) All() []*Function {
	all := make([]*Function, 0, len(f.Overloads)+1)
	all = append(all, f)
	all = append(all, f.Overloads...)
	return all
}

// Param is one entry of a structured parameter list.
type Param struct {
	Name    string
	Default string
	Ignored bool
}

// Enum describes an enumerated type. A name containing "Flags" designates
// a bit-flag enum; any other name designates an exclusive enum.
type Enum struct {
	ItemBase

	// Name may be empty or contain the reserved '@' marker, in which case
	// the enum is anonymous.
	Name string

	Items []EnumValue
}

// EnumValue is one enum member.
type EnumValue struct {
	Name        string
	StubName    string // public name override; empty means Name
	Ignored     bool
	StubIgnored bool
}

// PublicName returns the stub-facing member name.
func (v EnumValue) PublicName() string {
	if v.StubName != "" {
		return v.StubName
	}
	return v.Name
}

// Suppressed reports whether the member should produce no output.
func (v EnumValue) Suppressed() bool { return v.Ignored || v.StubIgnored }

// Property describes a getter/setter pair exposed as an attribute.
// At least one accessor is always present.
type Property struct {
	ItemBase

	Name   string
	Getter string
	Setter string
}

// MemberVar describes a public data member of a class.
type MemberVar struct {
	ItemBase

	Name string
	Type string // declared type text; empty degrades to the any-type sentinel
}

// GlobalVar describes a module-level variable.
type GlobalVar struct {
	ItemBase

	Name     string
	StubName string // public name override; empty means Name
	Type     string // declared type text, may be empty
	Value    string // literal text used for scalar-kind guessing
}

// PublicName returns the stub-facing variable name.
func (g *GlobalVar) PublicName() string {
	if g.StubName != "" {
		return g.StubName
	}
	return g.Name
}

// Define describes a preprocessor-style constant. Its value is always
// textual and is bucketed into string-or-integer at emission time.
type Define struct {
	ItemBase

	Name     string
	StubName string // public name override; empty means Name
	Value    string
}

// PublicName returns the stub-facing constant name.
func (d *Define) PublicName() string {
	if d.StubName != "" {
		return d.StubName
	}
	return d.Name
}

// Typedef describes a type alias. It is emitted only when it names a
// template instantiation or is explicitly flagged to be documented as a
// class.
type Typedef struct {
	ItemBase

	Name      string
	Type      string // underlying type text
	Docstring string

	// DocAsClass forces emission as a synthetic class using Bases.
	DocAsClass bool
	Bases      []string
}

// Code is a verbatim block of stub-dialect text passed through to the
// output. Blocks carrying an Order key are hoisted to the front of the
// module, sorted by that key, since they commonly declare shared state
// referenced by later declarations.
type Code struct {
	ItemBase

	Code  string
	Order *int
}

// WigCode is glue code for the wrapper generator backend. The stub
// backend recognizes the kind and deliberately emits nothing for it.
type WigCode struct {
	ItemBase

	Code string
}
