package emit

import (
	"fmt"
	"strings"

	"stub-generator/internal/guess"
	"stub-generator/internal/model"
)

// enum emits the canonical hidden enum type plus, for named enums, a
// module-level alias accepting either the enum or a plain int and one
// rebinding line per member so call sites can use the bare member name.
// Anonymous enums (empty name or containing the reserved '@' marker)
// synthesize a unique internal name and skip the alias and rebindings.
func (e *Emitter) enum(enum *model.Enum, ctx Context) {
	var alias, enumName string
	if enum.Name == "" || strings.Contains(enum.Name, "@") {
		enumName = "_enum_" + strings.TrimSpace(strings.ReplaceAll(enum.Name, "@", ""))
	} else {
		alias = e.fix(enum.Name)
		enumName = "_" + alias
	}

	enumType := "IntEnum"
	if strings.Contains(enumName, "Flags") {
		enumType = "IntFlag"
	}

	fmt.Fprintf(&e.buf, "\n%sclass %s(%s):\n", ctx.Indent, enumName, enumType)
	for _, v := range enum.Items {
		if v.Suppressed() {
			continue
		}
		fmt.Fprintf(&e.buf, "%s%s%s = auto()\n", ctx.Indent, indentStep, v.PublicName())
	}

	if alias == "" {
		return
	}

	fmt.Fprintf(&e.buf, "%s%s: TypeAlias = Union[%s, int]\n", ctx.Indent, alias, enumName)
	for _, v := range enum.Items {
		if v.Suppressed() {
			continue
		}
		name := v.PublicName()
		fmt.Fprintf(&e.buf, "%s%s = %s.%s\n", ctx.Indent, name, enumName, name)
	}
}

// globalVar emits a module-level variable declaration, guessing the
// scalar kind from its literal value before consulting the declared
// type, and degrading to the any-type sentinel.
func (e *Emitter) globalVar(v *model.GlobalVar) {
	typ := "Any"
	if kind := guess.Classify(v.Value); kind != guess.KindAny {
		typ = kind.StubType()
	} else if v.Type != "" {
		if cleaned := e.cfg.Normalizer.CleanType(v.Type); cleaned != "" {
			typ = cleaned
		}
	}
	fmt.Fprintf(&e.buf, "%s: %s\n", v.PublicName(), typ)
}

// define emits a constant declaration. Define values are always textual
// upstream, so they bucket into string-or-integer only.
func (e *Emitter) define(d *model.Define) {
	fmt.Fprintf(&e.buf, "%s: %s\n", d.PublicName(), guess.Define(d.Value).StubType())
}

// typedef emits a synthetic class for a type alias when the alias is a
// template instantiation or is explicitly flagged to be documented as a
// class; every other typedef is dropped silently.
func (e *Emitter) typedef(t *model.Typedef, ctx Context) {
	isTemplate := strings.Contains(t.Type, "<") && strings.Contains(t.Type, ">")
	if !t.DocAsClass && !isTemplate {
		return
	}

	var bases []string
	if t.DocAsClass {
		for _, b := range t.Bases {
			bases = append(bases, e.fixBase(b))
		}
	} else {
		// Derive the bases from the template arguments.
		raw := strings.ReplaceAll(t.Type, ">", "")
		raw = strings.ReplaceAll(raw, " ", "")
		for _, b := range strings.Split(raw, "<") {
			if b == "" {
				continue
			}
			bases = append(bases, e.fixBase(b))
		}
	}

	if len(bases) == 0 {
		// No base could be derived; fall back to the universal base.
		bases = []string{"object"}
	}

	fmt.Fprintf(&e.buf, "%sclass %s(%s):\n", ctx.Indent, e.fix(t.Name), strings.Join(bases, ", "))

	indent2 := ctx.Indent + indentStep
	if t.Docstring != "" {
		e.docstring(t.Docstring, indent2)
	} else {
		fmt.Fprintf(&e.buf, "%spass\n\n", indent2)
	}
}

// code passes a raw stub-dialect block through verbatim, re-indented to
// the current level. Inside a class the "ClassName." prefix is stripped
// so the block reads as a member of the class.
func (e *Emitter) code(c *model.Code, ctx Context) {
	text := c.Code
	if ctx.ClassName != "" {
		text = strings.ReplaceAll(text, ctx.ClassName+".", "")
	}

	e.buf.WriteString("\n")
	e.buf.WriteString(Reindent(text, len(ctx.Indent)))
}

// stubFunction emits a function authored directly in the stub dialect.
func (e *Emitter) stubFunction(f *model.StubFunction, ctx Context) {
	e.buf.WriteString("\n")
	if f.Deprecated {
		fmt.Fprintf(&e.buf, "%s%s\n", ctx.Indent, e.cfg.Normalizer.Deprecated())
	}
	if f.IsStatic {
		fmt.Fprintf(&e.buf, "%s@staticmethod\n", ctx.Indent)
	}
	fmt.Fprintf(&e.buf, "%sdef %s%s:\n", ctx.Indent, f.Name, f.ArgsString)

	indent2 := ctx.Indent + indentStep
	if f.Docstring != "" {
		e.docstring(f.Docstring, indent2)
	}
	fmt.Fprintf(&e.buf, "%spass\n", indent2)
}

// stubMethod emits a method authored directly in the stub dialect.
func (e *Emitter) stubMethod(m *model.StubMethod, ctx Context) {
	if m.IsStatic {
		fmt.Fprintf(&e.buf, "\n%s@staticmethod", ctx.Indent)
	}
	fmt.Fprintf(&e.buf, "\n%sdef %s%s:\n", ctx.Indent, m.Name, m.Args())
	e.docstring(m.Docstring, ctx.Indent+indentStep)
}

// stubClass emits a class authored directly in the stub dialect. Its
// member set is restricted to stub-dialect kinds and raw code blocks.
func (e *Emitter) stubClass(c *model.StubClass, ctx Context) {
	if c.Deprecated {
		fmt.Fprintf(&e.buf, "%s%s\n", ctx.Indent, e.cfg.Normalizer.Deprecated())
	}
	fmt.Fprintf(&e.buf, "%sclass %s", ctx.Indent, c.Name)
	if len(c.Bases) > 0 {
		fmt.Fprintf(&e.buf, "(%s):\n", strings.Join(c.Bases, ", "))
	} else {
		e.buf.WriteString(":\n")
	}

	inner := ctx.nested(c.Name, c.Docstring)
	if c.Docstring != "" {
		e.docstring(c.Docstring, inner.Indent)
	}

	for _, item := range c.Items {
		if item.Suppressed() {
			continue
		}
		switch it := item.(type) {
		case *model.StubFunction:
			e.stubFunction(it, inner)
		case *model.StubProperty:
			e.property(it.Name, it.Getter, it.Setter, inner.Indent)
		case *model.Code:
			e.code(it, inner)
		case *model.StubClass:
			e.stubClass(it, inner)
		default:
			panic(fmt.Sprintf("emit: no stub-class strategy for node kind %T", item))
		}
	}
}
