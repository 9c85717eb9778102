package emit

import (
	"fmt"
	"sort"
	"strings"

	"stub-generator/internal/model"
)

// indentStep is one level of stub-dialect indentation.
const indentStep = "    "

// Context carries the emission state threaded through recursive emit
// calls: the current indentation, the name of the enclosing class (used
// to strip class-prefix text from raw code blocks), and the docstring a
// constructor falls back to.
type Context struct {
	Indent      string
	ClassName   string
	DocFallback string
}

// nested returns the context for members of the named class.
func (c Context) nested(className, docFallback string) Context {
	return Context{
		Indent:      c.Indent + indentStep,
		ClassName:   className,
		DocFallback: docFallback,
	}
}

// Emitter renders one module tree into a single ordered text buffer.
type Emitter struct {
	cfg Config
	buf strings.Builder
}

// NewEmitter returns an Emitter using the given configuration.
func NewEmitter(cfg Config) *Emitter {
	return &Emitter{cfg: cfg}
}

// Module walks the tree depth-first and returns the generated body text.
func (e *Emitter) Module(m *model.Module) string {
	for _, imp := range m.Imports {
		name := strings.TrimPrefix(imp, "_")
		if name == e.cfg.CoreModule {
			continue
		}
		if pkg := e.pkg(); pkg != "" {
			fmt.Fprintf(&e.buf, "import %s.%s\n", pkg, name)
		} else {
			fmt.Fprintf(&e.buf, "import %s\n", name)
		}
	}

	for _, item := range hoistOrdered(m.Items) {
		if item.Suppressed() {
			continue
		}
		e.moduleItem(item, Context{})
	}

	return e.buf.String()
}

// moduleItem dispatches one top-level item to its emission strategy.
// A kind missing here is a contract violation, not a recoverable runtime
// condition.
func (e *Emitter) moduleItem(item model.Item, ctx Context) {
	switch it := item.(type) {
	case *model.Class:
		e.class(it, ctx)
	case *model.Define:
		e.define(it)
	case *model.Function:
		e.function(it)
	case *model.Enum:
		e.enum(it, ctx)
	case *model.GlobalVar:
		e.globalVar(it)
	case *model.Typedef:
		e.typedef(it, ctx)
	case *model.WigCode:
		// wrapper-generator glue carries nothing into stubs
	case *model.Code:
		e.code(it, ctx)
	case *model.StubFunction:
		e.stubFunction(it, ctx)
	case *model.StubClass:
		e.stubClass(it, ctx)
	default:
		panic(fmt.Sprintf("emit: no module-level strategy for node kind %T", item))
	}
}

// classItem dispatches one class member to its emission strategy.
func (e *Emitter) classItem(item model.Item, ctx Context) {
	switch it := item.(type) {
	case *model.MemberVar:
		e.memberVar(it, ctx)
	case *model.Typedef:
		// class-level aliases carry no stub declaration
	case *model.Property:
		e.property(it.Name, it.Getter, it.Setter, ctx.Indent)
	case *model.StubProperty:
		e.property(it.Name, it.Getter, it.Setter, ctx.Indent)
	case *model.Function:
		e.method(it, ctx)
	case *model.Enum:
		e.enum(it, ctx)
	case *model.StubMethod:
		e.stubMethod(it, ctx)
	case *model.Code:
		e.code(it, ctx)
	case *model.WigCode:
		// wrapper-generator glue carries nothing into stubs
	default:
		panic(fmt.Sprintf("emit: no class-level strategy for node kind %T", item))
	}
}

// hoistOrdered moves raw code blocks carrying an explicit ordering key
// to the front, sorted by that key, since they commonly declare shared
// state that later declarations reference. All other items keep their
// original order. The input slice is never mutated.
func hoistOrdered(items []model.Item) []model.Item {
	var keyed []*model.Code
	rest := make([]model.Item, 0, len(items))

	for _, item := range items {
		if code, ok := item.(*model.Code); ok && code.Order != nil {
			keyed = append(keyed, code)
			continue
		}
		rest = append(rest, item)
	}

	if len(keyed) == 0 {
		return items
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return *keyed[i].Order < *keyed[j].Order
	})

	ordered := make([]model.Item, 0, len(items))
	for _, code := range keyed {
		ordered = append(ordered, code)
	}
	return append(ordered, rest...)
}

func (e *Emitter) fix(name string) string {
	return e.cfg.Normalizer.Fix(name)
}

func (e *Emitter) fixBase(name string) string {
	return e.cfg.Normalizer.FixBase(name)
}

func (e *Emitter) pkg() string {
	if e.cfg.Normalizer == nil {
		return ""
	}
	return e.cfg.Normalizer.Package
}

// docstring writes a triple-quoted docstring block. Blank content still
// produces the quote pair; classes always carry one.
func (e *Emitter) docstring(text, indent string) {
	e.buf.WriteString(indent + `"""` + "\n")
	if strings.TrimSpace(text) != "" {
		e.buf.WriteString(Reindent(text, len(indent)))
	}
	e.buf.WriteString(indent + `"""` + "\n")
}
