package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyDocument(t *testing.T) {
	doc := Empty()

	require.NotNil(t, doc.Root)
	assert.Equal(t, SchemaVersion, doc.SchemaVersion)
	assert.Equal(t, RootID, doc.Root.ID)
	assert.Empty(t, doc.Root.Children)
	assert.Empty(t, doc.Components)
}

func TestCloneIsDeep(t *testing.T) {
	doc := Empty()
	doc.Root.Children = []string{"a"}
	doc.Components["a"] = &Node{
		ID:   "a",
		Type: "Heading",
		Props: map[string]any{
			"text":     "Hello",
			"fontSize": map[string]any{"mobile": 18},
		},
		States: map[string]map[string]any{
			StateHover: {"textColor": "#ff0000"},
		},
		Transition: &Transition{Property: "colors", Duration: 0.3},
	}
	doc.Zones = map[string][]string{"sidebar": {"a"}}

	clone := doc.Clone()
	clone.Components["a"].Props["text"] = "Changed"
	clone.Components["a"].Props["fontSize"].(map[string]any)["mobile"] = 99
	clone.Components["a"].States[StateHover]["textColor"] = "#00ff00"
	clone.Components["a"].Transition.Duration = 9
	clone.Zones["sidebar"][0] = "b"

	assert.Equal(t, "Hello", doc.Components["a"].Props["text"])
	assert.Equal(t, 18, doc.Components["a"].Props["fontSize"].(map[string]any)["mobile"])
	assert.Equal(t, "#ff0000", doc.Components["a"].States[StateHover]["textColor"])
	assert.Equal(t, 0.3, doc.Components["a"].Transition.Duration)
	assert.Equal(t, "a", doc.Zones["sidebar"][0])
}

func TestValidateRefsFindsDangling(t *testing.T) {
	doc := Empty()
	doc.Root.Children = []string{"a", "ghost-1"}
	doc.Components["a"] = &Node{ID: "a", Type: "Text", Props: map[string]any{}, Children: []string{"ghost-2"}}
	doc.Zones = map[string][]string{"sidebar": {"ghost-3"}}

	diags := &Diagnostics{}
	ValidateRefs(doc, diags)

	assert.Len(t, diags.All(), 3)
	assert.True(t, diags.Has(CodeDanglingRef))
}

func TestValidateRefsCleanDocument(t *testing.T) {
	doc := Empty()
	doc.Root.Children = []string{"a"}
	doc.Components["a"] = &Node{ID: "a", Type: "Text", Props: map[string]any{}}

	diags := &Diagnostics{}
	ValidateRefs(doc, diags)

	assert.Empty(t, diags.All())
}

func TestDiagnosticsMerge(t *testing.T) {
	a := &Diagnostics{}
	a.Warnf(CodeCycle, "n1", "cycle at %s", "n1")
	b := &Diagnostics{}
	b.Errorf(CodeUnknownType, "n2", "unknown")

	a.Merge(b)

	require.Len(t, a.All(), 2)
	assert.Equal(t, LevelWarning, a.All()[0].Level)
	assert.Equal(t, LevelError, a.All()[1].Level)
}
