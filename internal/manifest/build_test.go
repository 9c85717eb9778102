package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stub-generator/internal/model"
)

func TestBuild_Module(t *testing.T) {
	f, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	m, err := f.Build()
	require.NoError(t, err)

	assert.Equal(t, "_core", m.Name)
	assert.Equal(t, "Core wrappers.", m.Docstring)
	assert.Equal(t, []string{"_adv"}, m.Imports)
	require.Len(t, m.Items, 2)

	define, ok := m.Items[0].(*model.Define)
	require.True(t, ok)
	assert.Equal(t, "wxMAJOR_VERSION", define.Name)
	assert.Equal(t, "4", define.Value)
}

func TestBuild_ClassMembers(t *testing.T) {
	f, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	m, err := f.Build()
	require.NoError(t, err)

	class, ok := m.Items[1].(*model.Class)
	require.True(t, ok)
	assert.Equal(t, "wxWindow", class.Name)
	require.Len(t, class.Items, 2)

	ctor, ok := class.Items[0].(*model.Function)
	require.True(t, ok)
	assert.True(t, ctor.IsCtor)

	setSize, ok := class.Items[1].(*model.Function)
	require.True(t, ok)
	require.Len(t, setSize.Overloads, 1)
	assert.Equal(t, "SetSize", setSize.Overloads[0].Name, "overload inherits the chain name")
	assert.Equal(t, "(w, h)", setSize.Overloads[0].ArgsString)
}

func TestBuild_NestedClasses(t *testing.T) {
	f := &File{
		Module: "_core",
		Items: []Node{{
			Kind: KindClass,
			Name: "Outer",
			Members: []Node{
				{Kind: KindClass, Name: "Inner"},
				{Kind: KindMemberVar, Name: "count", Type: "int"},
			},
		}},
	}

	m, err := f.Build()
	require.NoError(t, err)

	class := m.Items[0].(*model.Class)
	require.Len(t, class.InnerClasses, 1)
	assert.Equal(t, "Inner", class.InnerClasses[0].Name)
	require.Len(t, class.Items, 1)
	assert.IsType(t, &model.MemberVar{}, class.Items[0])
}

func TestBuild_ProtectionParsing(t *testing.T) {
	f := &File{
		Module: "_core",
		Items: []Node{
			{Kind: KindFunction, Name: "Public"},
			{Kind: KindFunction, Name: "Guarded", Protection: "protected"},
		},
	}

	m, err := f.Build()
	require.NoError(t, err)

	assert.Equal(t, model.Public, m.Items[0].Access())
	assert.Equal(t, model.Protected, m.Items[1].Access())
}

func TestBuild_BadProtectionFails(t *testing.T) {
	f := &File{
		Module: "_core",
		Items:  []Node{{Kind: KindFunction, Name: "F", Protection: "private"}},
	}

	_, err := f.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown protection "private"`)
}

func TestBuild_UnknownKindFails(t *testing.T) {
	f := &File{
		Module: "_core",
		Items:  []Node{{Kind: "widget", Name: "X"}},
	}

	_, err := f.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown node kind "widget"`)
}

func TestBuild_StubClassRejectsForeignMembers(t *testing.T) {
	f := &File{
		Module: "_core",
		Items: []Node{{
			Kind:    KindStubClass,
			Name:    "Helper",
			Members: []Node{{Kind: KindMethod, Name: "M"}},
		}},
	}

	_, err := f.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed inside a stub class")
}

func TestBuild_OverloadsInheritProtection(t *testing.T) {
	f := &File{
		Module: "_core",
		Items: []Node{{
			Kind:       KindClass,
			Name:       "C",
			Members: []Node{{
				Kind:       KindMethod,
				Name:       "M",
				Protection: "protected",
				Overloads:  []Node{{Args: "(x)"}},
			}},
		}},
	}

	m, err := f.Build()
	require.NoError(t, err)

	method := m.Items[0].(*model.Class).Items[0].(*model.Function)
	require.Len(t, method.Overloads, 1)
	assert.Equal(t, model.Protected, method.Overloads[0].Access())
}
