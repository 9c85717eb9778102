package emit

import (
	"fmt"
	"slices"

	"stub-generator/internal/model"
)

// class emits one class declaration with its docstring, nested classes,
// and members in the canonical order: nested classes, public enums,
// constructors, remaining public members, then protected members.
// Private members are filtered upstream and never reach this walker.
func (e *Emitter) class(c *model.Class, ctx Context) {
	name := c.PublicName()

	fmt.Fprintf(&e.buf, "\n%sclass %s", ctx.Indent, name)
	if bases := e.classBases(c); len(bases) > 0 {
		e.buf.WriteString("(")
		for i, b := range bases {
			if i > 0 {
				e.buf.WriteString(", ")
			}
			e.buf.WriteString(b)
		}
		e.buf.WriteString(")")
	}
	e.buf.WriteString(":\n")

	inner := ctx.nested(name, c.Docstring)
	e.docstring(c.Docstring, inner.Indent)

	for _, nested := range c.InnerClasses {
		if nested.Suppressed() {
			continue
		}
		e.class(nested, inner)
	}

	enums, ctors, public, protected := splitMembers(c.Items)

	for _, en := range enums {
		if en.Suppressed() {
			continue
		}
		e.enum(en, inner)
	}

	for _, ct := range ctors {
		if !ct.IsCtor {
			continue
		}
		e.method(ct, inner)
	}

	for _, item := range public {
		if memberSuppressed(item) {
			continue
		}
		e.classItem(item, inner)
	}

	for _, item := range protected {
		if memberSuppressed(item) {
			continue
		}
		e.classItem(item, inner)
	}

	fmt.Fprintf(&e.buf, "%s# end of class %s\n\n", ctx.Indent, name)
}

// classBases computes the emitted base list: the explicit stub override
// when present, otherwise the declared bases minus template parameters,
// normalized to their public spelling.
func (e *Emitter) classBases(c *model.Class) []string {
	declared := c.BaseOverride
	if declared == nil {
		for _, b := range c.Bases {
			if slices.Contains(c.TemplateParams, b) {
				continue
			}
			declared = append(declared, b)
		}
	}

	bases := make([]string, 0, len(declared))
	for _, b := range declared {
		bases = append(bases, e.fixBase(b))
	}
	return bases
}

// memberSuppressed decides whether a class member is skipped before
// dispatch. Callables are always dispatched: an ignored chain root may
// still carry live overloads, and method picks the first live signature
// or emits nothing.
func memberSuppressed(item model.Item) bool {
	if _, ok := item.(*model.Function); ok {
		return false
	}
	return item.Suppressed()
}

// splitMembers groups class members for ordered emission. Enum and
// constructor groups only take public members; protected enums and the
// rest keep their original relative order within their group.
func splitMembers(items []model.Item) (enums []*model.Enum, ctors []*model.Function, public, protected []model.Item) {
	for _, item := range items {
		switch it := item.(type) {
		case *model.Enum:
			if it.Access() == model.Public {
				enums = append(enums, it)
				continue
			}
		case *model.Function:
			if it.Access() == model.Public && (it.IsCtor || it.IsDtor) {
				ctors = append(ctors, it)
				continue
			}
		}

		if item.Access() == model.Protected {
			protected = append(protected, item)
		} else {
			public = append(public, item)
		}
	}
	return enums, ctors, public, protected
}

// memberVar emits a typed data-member declaration, degrading to the
// any-type sentinel when the declared type is absent or unclassifiable.
func (e *Emitter) memberVar(m *model.MemberVar, ctx Context) {
	typ := "Any"
	if m.Type != "" {
		if cleaned := e.cfg.Normalizer.CleanType(m.Type); cleaned != "" {
			typ = cleaned
		}
	}
	fmt.Fprintf(&e.buf, "%s%s: %s\n", ctx.Indent, m.Name, typ)
}

// property emits a property binding for whichever accessors exist.
// Upstream guarantees at least one accessor.
func (e *Emitter) property(name, getter, setter, indent string) {
	switch {
	case getter != "" && setter != "":
		fmt.Fprintf(&e.buf, "%s%s = property(%s, %s)\n", indent, name, getter, setter)
	case getter != "":
		fmt.Fprintf(&e.buf, "%s%s = property(%s)\n", indent, name, getter)
	case setter != "":
		fmt.Fprintf(&e.buf, "%s%s = property(fset=%s)\n", indent, name, setter)
	}
}
