package manifest

// File represents the root of a YAML module manifest.
type File struct {
	// Module is the native module name, e.g. "_core".
	Module string `yaml:"module"`

	// Docstring becomes the top-level docstring of freshly created
	// destination files.
	Docstring string `yaml:"docstring,omitempty"`

	// Package is the public package the stubs belong to, e.g. "wx".
	Package string `yaml:"package,omitempty"`

	// Prefix is the native identifier prefix stripped from public names.
	Prefix string `yaml:"prefix,omitempty"`

	// Imports lists sibling module names referenced by this module.
	Imports []string `yaml:"imports,omitempty"`

	// Items are the top-level declarations in original order.
	Items []Node `yaml:"items,omitempty"`
}

// Known node kind discriminators.
const (
	KindClass        = "class"
	KindFunction     = "function"
	KindMethod       = "method"
	KindEnum         = "enum"
	KindProperty     = "property"
	KindMemberVar    = "membervar"
	KindGlobalVar    = "globalvar"
	KindDefine       = "define"
	KindTypedef      = "typedef"
	KindCode         = "code"
	KindWigCode      = "wigcode"
	KindStubFunction = "stubfunction"
	KindStubMethod   = "stubmethod"
	KindStubClass    = "stubclass"
	KindStubProperty = "stubproperty"
)

// KnownKind reports whether kind is a recognized discriminator.
func KnownKind(kind string) bool {
	switch kind {
	case KindClass, KindFunction, KindMethod, KindEnum, KindProperty,
		KindMemberVar, KindGlobalVar, KindDefine, KindTypedef, KindCode,
		KindWigCode, KindStubFunction, KindStubMethod, KindStubClass,
		KindStubProperty:
		return true
	default:
		return false
	}
}

// Node is one manifest item. The Kind discriminator selects which of
// the remaining fields are meaningful; unrelated fields are ignored.
type Node struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name,omitempty"`

	// StubName overrides Name in stub output.
	StubName string `yaml:"stub_name,omitempty"`

	Docstring string `yaml:"docstring,omitempty"`

	// Ignored excludes the node and its descendants from emission.
	Ignored bool `yaml:"ignored,omitempty"`

	// Protection is "public" (default) or "protected" for class members.
	Protection string `yaml:"protection,omitempty"`

	// Class fields.
	Bases          []string `yaml:"bases,omitempty"`
	BaseOverride   []string `yaml:"base_override,omitempty"`
	TemplateParams []string `yaml:"template_params,omitempty"`
	Members        []Node   `yaml:"members,omitempty"`

	// Callable fields.
	Args      string  `yaml:"args,omitempty"`
	Params    []Param `yaml:"params,omitempty"`
	Static    bool    `yaml:"static,omitempty"`
	Ctor      bool    `yaml:"ctor,omitempty"`
	Dtor      bool    `yaml:"dtor,omitempty"`
	Overloads []Node  `yaml:"overloads,omitempty"`

	// Enum fields.
	Values []EnumValue `yaml:"values,omitempty"`

	// Property fields.
	Getter string `yaml:"getter,omitempty"`
	Setter string `yaml:"setter,omitempty"`

	// Variable, define and typedef fields.
	Type       string `yaml:"type,omitempty"`
	Value      string `yaml:"value,omitempty"`
	DocAsClass bool   `yaml:"doc_as_class,omitempty"`

	// Raw code fields.
	Code  string `yaml:"code,omitempty"`
	Order *int   `yaml:"order,omitempty"`

	// Stub-dialect fields.
	StubArgs   string `yaml:"stub_args,omitempty"`
	Deprecated bool   `yaml:"deprecated,omitempty"`
}

// Param is one structured parameter of a callable.
type Param struct {
	Name    string `yaml:"name"`
	Default string `yaml:"default,omitempty"`
	Ignored bool   `yaml:"ignored,omitempty"`
}

// EnumValue is one enum member.
type EnumValue struct {
	Name     string `yaml:"name"`
	StubName string `yaml:"stub_name,omitempty"`
	Ignored  bool   `yaml:"ignored,omitempty"`
}
