package manifest

import (
	"fmt"

	"stub-generator/internal/diagnostic"
)

// Validate checks the manifest for structural problems and returns the
// collected diagnostics. Errors mean Build would fail or the emitter
// would produce broken output; warnings are suspicious but harmless.
func Validate(f *File) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if f.Module == "" {
		diags.AddError("empty-module-name", "manifest has no module name", "", "")
	}

	for _, n := range f.Items {
		validateNode(n, f.Module, f.Module, &diags)
	}

	return diags
}

func validateNode(n Node, module, path string, diags *diagnostic.Diagnostics) {
	path = childPath(path, n.Name)

	if !KnownKind(n.Kind) {
		diags.AddError("unknown-kind", fmt.Sprintf("unknown node kind %q", n.Kind), module, path)
		return
	}

	switch n.Protection {
	case "", "public", "protected":
	default:
		diags.AddError("bad-protection", fmt.Sprintf("unknown protection %q", n.Protection), module, path)
	}

	switch n.Kind {
	case KindClass, KindStubClass:
		if n.Name == "" {
			diags.AddError("unnamed-class", "class has no name", module, path)
		}
		for _, member := range n.Members {
			validateNode(member, module, path, diags)
		}

	case KindFunction, KindMethod, KindStubFunction, KindStubMethod:
		if n.Name == "" {
			diags.AddError("unnamed-callable", "callable has no name", module, path)
		}
		for _, o := range n.Overloads {
			if o.Kind == "" {
				// Overloads inherit the chain's kind.
				o.Kind = n.Kind
			}
			if o.Name == "" {
				o.Name = n.Name
			}
			validateNode(o, module, path, diags)
		}

	case KindEnum:
		emittable := 0
		for _, v := range n.Values {
			if !v.Ignored {
				emittable++
			}
		}
		if emittable == 0 && !n.Ignored {
			diags.AddWarning("empty-enum", "enum has no emittable members", module, path)
		}

	case KindProperty, KindStubProperty:
		if n.Getter == "" && n.Setter == "" {
			diags.AddError("property-accessors", "property has neither getter nor setter", module, path)
		}

	case KindTypedef:
		if n.DocAsClass && len(n.Bases) == 0 {
			diags.AddInfo("typedef-universal-base", "typedef documented as class has no bases; the universal base will be used", module, path)
		}
	}
}
