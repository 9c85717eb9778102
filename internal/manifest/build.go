package manifest

import (
	"fmt"

	"stub-generator/internal/model"
)

// Build converts the manifest into the model tree consumed by the
// emitter. The manifest should be validated first; Build only fails on
// structural problems that would otherwise panic the emitter.
func (f *File) Build() (*model.Module, error) {
	m := &model.Module{
		Name:      f.Module,
		Docstring: f.Docstring,
		Imports:   f.Imports,
	}

	for _, n := range f.Items {
		item, err := buildItem(n, f.Module)
		if err != nil {
			return nil, err
		}
		m.Items = append(m.Items, item)
	}

	return m, nil
}

// buildItem converts one manifest node. path locates the node in error
// messages.
func buildItem(n Node, path string) (model.Item, error) {
	path = childPath(path, n.Name)

	base, err := buildBase(n, path)
	if err != nil {
		return nil, err
	}

	switch n.Kind {
	case KindClass:
		return buildClass(n, base, path)

	case KindFunction, KindMethod:
		return buildFunction(n, base, path)

	case KindEnum:
		enum := &model.Enum{ItemBase: base, Name: n.Name}
		for _, v := range n.Values {
			enum.Items = append(enum.Items, model.EnumValue{
				Name:     v.Name,
				StubName: v.StubName,
				Ignored:  v.Ignored,
			})
		}
		return enum, nil

	case KindProperty:
		return &model.Property{ItemBase: base, Name: n.Name, Getter: n.Getter, Setter: n.Setter}, nil

	case KindStubProperty:
		return &model.StubProperty{ItemBase: base, Name: n.Name, Getter: n.Getter, Setter: n.Setter}, nil

	case KindMemberVar:
		return &model.MemberVar{ItemBase: base, Name: n.Name, Type: n.Type}, nil

	case KindGlobalVar:
		return &model.GlobalVar{ItemBase: base, Name: n.Name, StubName: n.StubName, Type: n.Type, Value: n.Value}, nil

	case KindDefine:
		return &model.Define{ItemBase: base, Name: n.Name, StubName: n.StubName, Value: n.Value}, nil

	case KindTypedef:
		return &model.Typedef{
			ItemBase:   base,
			Name:       n.Name,
			Type:       n.Type,
			Docstring:  n.Docstring,
			DocAsClass: n.DocAsClass,
			Bases:      n.Bases,
		}, nil

	case KindCode:
		return &model.Code{ItemBase: base, Code: n.Code, Order: n.Order}, nil

	case KindWigCode:
		return &model.WigCode{ItemBase: base, Code: n.Code}, nil

	case KindStubFunction:
		return &model.StubFunction{
			ItemBase:   base,
			Name:       n.Name,
			ArgsString: n.Args,
			Docstring:  n.Docstring,
			IsStatic:   n.Static,
			Deprecated: n.Deprecated,
		}, nil

	case KindStubMethod:
		return &model.StubMethod{
			ItemBase:       base,
			Name:           n.Name,
			ArgsString:     n.Args,
			StubArgsString: n.StubArgs,
			Docstring:      n.Docstring,
			IsStatic:       n.Static,
		}, nil

	case KindStubClass:
		return buildStubClass(n, base, path)

	default:
		return nil, fmt.Errorf("%s: unknown node kind %q", path, n.Kind)
	}
}

func buildBase(n Node, path string) (model.ItemBase, error) {
	base := model.ItemBase{Ignored: n.Ignored}

	switch n.Protection {
	case "", "public":
		base.Protection = model.Public
	case "protected":
		base.Protection = model.Protected
	default:
		return base, fmt.Errorf("%s: unknown protection %q", path, n.Protection)
	}

	return base, nil
}

func buildClass(n Node, base model.ItemBase, path string) (*model.Class, error) {
	c := &model.Class{
		ItemBase:       base,
		Name:           n.Name,
		StubName:       n.StubName,
		Docstring:      n.Docstring,
		Bases:          n.Bases,
		BaseOverride:   n.BaseOverride,
		TemplateParams: n.TemplateParams,
	}

	for _, member := range n.Members {
		if member.Kind == KindClass {
			nested, err := buildItem(member, path)
			if err != nil {
				return nil, err
			}
			c.InnerClasses = append(c.InnerClasses, nested.(*model.Class))
			continue
		}

		item, err := buildItem(member, path)
		if err != nil {
			return nil, err
		}
		c.Items = append(c.Items, item)
	}

	return c, nil
}

func buildFunction(n Node, base model.ItemBase, path string) (*model.Function, error) {
	fn := &model.Function{
		ItemBase:   base,
		Name:       n.Name,
		StubName:   n.StubName,
		Docstring:  n.Docstring,
		ArgsString: n.Args,
		IsStatic:   n.Static,
		IsCtor:     n.Ctor,
		IsDtor:     n.Dtor,
	}

	for _, p := range n.Params {
		fn.Params = append(fn.Params, model.Param{Name: p.Name, Default: p.Default, Ignored: p.Ignored})
	}

	for _, o := range n.Overloads {
		if o.Kind == "" {
			o.Kind = n.Kind
		}
		if o.Name == "" {
			o.Name = n.Name
		}
		alt, err := buildFunction(o, model.ItemBase{Ignored: o.Ignored, Protection: base.Protection}, childPath(path, "overload"))
		if err != nil {
			return nil, err
		}
		fn.Overloads = append(fn.Overloads, alt)
	}

	return fn, nil
}

func buildStubClass(n Node, base model.ItemBase, path string) (*model.StubClass, error) {
	c := &model.StubClass{
		ItemBase:   base,
		Name:       n.Name,
		Bases:      n.Bases,
		Docstring:  n.Docstring,
		Deprecated: n.Deprecated,
	}

	for _, member := range n.Members {
		switch member.Kind {
		case KindStubFunction, KindStubProperty, KindCode, KindStubClass:
			item, err := buildItem(member, path)
			if err != nil {
				return nil, err
			}
			c.Items = append(c.Items, item)
		default:
			return nil, fmt.Errorf("%s: kind %q is not allowed inside a stub class", path, member.Kind)
		}
	}

	return c, nil
}

func childPath(path, name string) string {
	if name == "" {
		return path
	}
	if path == "" {
		return name
	}
	return path + "." + name
}
