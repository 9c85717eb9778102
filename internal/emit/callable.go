package emit

import (
	"fmt"
	"strings"

	"stub-generator/internal/model"
	"stub-generator/internal/naming"
)

// signatures returns the emittable overload chain in declaration order:
// the callable itself followed by its non-ignored alternates.
func signatures(fn *model.Function) []*model.Function {
	var sigs []*model.Function
	for _, sig := range fn.All() {
		if sig.Suppressed() {
			continue
		}
		sigs = append(sigs, sig)
	}
	return sigs
}

// function emits a module-level callable. With N recorded signatures the
// first N-1 are marked @overload with a placeholder body; the final one
// is unmarked and carries the real docstring.
func (e *Emitter) function(fn *model.Function) {
	if fn.PublicName() == "" {
		return
	}

	sigs := signatures(fn)
	for i, sig := range sigs {
		e.functionSig(fn.PublicName(), sig, fn.Docstring, i < len(sigs)-1)
	}
}

func (e *Emitter) functionSig(name string, sig *model.Function, docstring string, overload bool) {
	if overload {
		e.buf.WriteString("\n@overload")
	}
	fmt.Fprintf(&e.buf, "\ndef %s%s:\n", name, e.args(sig, false))

	if overload {
		e.buf.WriteString(indentStep + "...\n")
		return
	}
	e.docstring(docstring, indentStep)
}

// method emits a class-level callable. Constructors are renamed to the
// canonical initializer and fall back to the owning class's docstring;
// destructors are never emitted; operator names map to their magic
// method spelling.
func (e *Emitter) method(m *model.Function, ctx Context) {
	// Use the first non-ignored signature as the chain root.
	var root *model.Function
	for _, sig := range m.All() {
		if !sig.Suppressed() {
			root = sig
			break
		}
	}
	if root == nil || root.IsDtor {
		return
	}

	name := naming.MagicName(root.PublicName())
	docstring := root.Docstring
	if root.IsCtor {
		name = "__init__"
		if strings.TrimSpace(docstring) == "" {
			docstring = ctx.DocFallback
		}
	}

	sigs := signatures(root)
	for i, sig := range sigs {
		e.methodSig(name, sig, docstring, ctx, i < len(sigs)-1)
	}
}

func (e *Emitter) methodSig(name string, sig *model.Function, docstring string, ctx Context, overload bool) {
	if overload {
		fmt.Fprintf(&e.buf, "\n%s@overload", ctx.Indent)
	}
	if sig.IsStatic {
		fmt.Fprintf(&e.buf, "\n%s@staticmethod", ctx.Indent)
	}
	fmt.Fprintf(&e.buf, "\n%sdef %s%s:\n", ctx.Indent, name, e.args(sig, !sig.IsStatic))

	indent2 := ctx.Indent + indentStep
	if overload {
		e.buf.WriteString(indent2 + "...\n")
		return
	}
	e.docstring(docstring, indent2)
}

// args returns the normalized signature text for one callable: the
// precomputed argument string when present, otherwise the rendered
// structured parameter list. Namespace separators become attribute
// access and a self parameter is injected for bound methods.
func (e *Emitter) args(fn *model.Function, injectSelf bool) string {
	s := fn.ArgsString
	if s == "" && len(fn.Params) > 0 {
		s = "(" + RenderParams(fn.Params) + ")"
	}
	if s == "" {
		s = "()"
	}
	if s[0] != '(' {
		if pos := strings.IndexByte(s, '('); pos >= 0 {
			s = s[pos:]
		}
	}

	if injectSelf {
		if s == "()" {
			s = "(self)"
		} else {
			s = "(self, " + s[1:]
		}
	}

	return strings.ReplaceAll(s, "::", ".")
}

// RenderParams renders a structured parameter list left to right,
// skipping ignored parameters and appending "=default" for defaulted
// ones. The separator is omitted after the last parameter that is
// followed by no further non-ignored parameter.
func RenderParams(params []model.Param) string {
	last := -1
	for i, p := range params {
		if !p.Ignored {
			last = i
		}
	}

	var b strings.Builder
	for i, p := range params {
		if p.Ignored {
			continue
		}
		b.WriteString(p.Name)
		if p.Default != "" {
			b.WriteString("=" + p.Default)
		}
		if i != last {
			b.WriteString(", ")
		}
	}

	return b.String()
}
