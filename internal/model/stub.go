package model

// The Stub* kinds are declarations authored directly in the stub dialect
// by the extraction scripts. Their signatures need no inference or
// rewriting beyond indentation.

// StubFunction is a module-level function written in the stub dialect.
type StubFunction struct {
	ItemBase

	Name       string
	ArgsString string
	Docstring  string
	IsStatic   bool
	Deprecated bool
}

// StubMethod is a class method written in the stub dialect.
type StubMethod struct {
	ItemBase

	Name       string
	ArgsString string

	// StubArgsString, when non-empty, replaces ArgsString for stub
	// output.
	StubArgsString string

	Docstring string
	IsStatic  bool
}

// Args returns the signature text to emit.
func (m *StubMethod) Args() string {
	if m.StubArgsString != "" {
		return m.StubArgsString
	}
	return m.ArgsString
}

// StubClass is a class written in the stub dialect. Its members are
// limited to stub-dialect kinds and raw code blocks.
type StubClass struct {
	ItemBase

	Name       string
	Bases      []string
	Docstring  string
	Deprecated bool
	Items      []Item
}

// StubProperty is a property written in the stub dialect. At least one
// accessor is always present.
type StubProperty struct {
	ItemBase

	Name   string
	Getter string
	Setter string
}
