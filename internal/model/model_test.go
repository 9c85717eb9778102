package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunction_All(t *testing.T) {
	alt1 := &Function{Name: "F"}
	alt2 := &Function{Name: "F"}
	fn := &Function{Name: "F", Overloads: []*Function{alt1, alt2}}

	all := fn.All()
	assert.Equal(t, []*Function{fn, alt1, alt2}, all)

	assert.True(t, fn.HasOverloads())
	assert.False(t, alt1.HasOverloads())
}

func TestPublicName_StubNameWins(t *testing.T) {
	assert.Equal(t, "Frame", (&Class{Name: "wxFrame", StubName: "Frame"}).PublicName())
	assert.Equal(t, "wxFrame", (&Class{Name: "wxFrame"}).PublicName())

	assert.Equal(t, "Create", (&Function{Name: "DoCreate", StubName: "Create"}).PublicName())
	assert.Equal(t, "OK", (EnumValue{Name: "wxOK", StubName: "OK"}).PublicName())
}

func TestSuppressed(t *testing.T) {
	assert.False(t, (&Class{}).Suppressed())
	assert.True(t, (&Class{ItemBase: ItemBase{Ignored: true}}).Suppressed())
	assert.True(t, (&Class{ItemBase: ItemBase{StubIgnored: true}}).Suppressed())

	assert.True(t, EnumValue{Ignored: true}.Suppressed())
	assert.True(t, EnumValue{StubIgnored: true}.Suppressed())
}

func TestProtection(t *testing.T) {
	assert.Equal(t, Public, ItemBase{}.Protection, "public is the zero value")
	assert.Equal(t, "public", Public.String())
	assert.Equal(t, "protected", Protected.String())
	assert.Equal(t, "unknown", Protection(42).String())
}
