package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stub-generator/internal/model"
	"stub-generator/internal/naming"
)

func render(t *testing.T, items ...model.Item) string {
	t.Helper()

	return NewEmitter(DefaultConfig()).Module(&model.Module{Name: "_core", Items: items})
}

func TestModule_ImportsSkipCoreAndStripUnderscore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Normalizer = naming.New("wx", "wx")

	out := NewEmitter(cfg).Module(&model.Module{
		Name:    "_core",
		Imports: []string{"_adv", "_core", "dataview"},
	})

	assert.Equal(t, "import wx.adv\nimport wx.dataview\n", out)
}

func TestModule_IgnoredItemProducesNothing(t *testing.T) {
	ignored := &model.Class{
		ItemBase: model.ItemBase{Ignored: true},
		Name:     "Hidden",
		Items: []model.Item{
			&model.MemberVar{Name: "visible_anyway", Type: "int"},
		},
	}

	assert.Empty(t, render(t, ignored))
}

func TestModule_StubIgnoredItemProducesNothing(t *testing.T) {
	out := render(t, &model.Define{
		ItemBase: model.ItemBase{StubIgnored: true},
		Name:     "HIDDEN",
		Value:    "1",
	})

	assert.Empty(t, out)
}

func TestModule_UnknownKindPanics(t *testing.T) {
	// A Module nested as an item has no emission strategy; the dispatch
	// must abort rather than silently skip.
	assert.Panics(t, func() {
		render(t, &model.Module{Name: "nested"})
	})
}

func TestModule_OrderedCodeBlocksHoistedToFront(t *testing.T) {
	second, first := 20, 10

	out := render(t,
		&model.Define{Name: "AFTER", Value: "1"},
		&model.Code{Code: "shared_two = 2\n", Order: &second},
		&model.Code{Code: "shared_one = 1\n", Order: &first},
		&model.Code{Code: "unkeyed = 0\n"},
	)

	posOne := strings.Index(out, "shared_one")
	posTwo := strings.Index(out, "shared_two")
	posAfter := strings.Index(out, "AFTER")
	posUnkeyed := strings.Index(out, "unkeyed")

	require.NotEqual(t, -1, posOne)
	assert.Less(t, posOne, posTwo, "keyed blocks sort by their order key")
	assert.Less(t, posTwo, posAfter, "keyed blocks come before everything else")
	assert.Less(t, posAfter, posUnkeyed, "unkeyed items keep their original order")
}

func TestModule_HoistingDoesNotMutateTree(t *testing.T) {
	key := 1
	code := &model.Code{Code: "x = 1\n", Order: &key}
	m := &model.Module{Name: "_core", Items: []model.Item{
		&model.Define{Name: "A", Value: "1"},
		code,
	}}

	NewEmitter(DefaultConfig()).Module(m)

	require.Len(t, m.Items, 2)
	assert.Same(t, code, m.Items[1])
}

func TestModule_WigCodeEmitsNothing(t *testing.T) {
	out := render(t, &model.WigCode{Code: "%TypeHeaderCode\n"})

	assert.Empty(t, out)
}

func TestCode_ClassPrefixStrippedInsideClass(t *testing.T) {
	out := render(t, &model.Class{
		Name: "Window",
		Items: []model.Item{
			&model.Code{Code: "Window.FindFocus = staticmethod(_FindFocus)\n"},
		},
	})

	assert.Contains(t, out, "    FindFocus = staticmethod(_FindFocus)\n")
	assert.NotContains(t, out, "Window.FindFocus")
}
