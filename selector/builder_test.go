package selector_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cssb/selector"
)

func TestBuilder_Chain(t *testing.T) {
	b, err := selector.New().Element("div")
	require.NoError(t, err)
	b, err = b.ID("main")
	require.NoError(t, err)
	b, err = b.Class("a")
	require.NoError(t, err)

	assert.Equal(t, "div#main.a", b.String())
}

func TestBuilder_ZeroValue(t *testing.T) {
	var b selector.Builder
	assert.True(t, b.IsEmpty())
	assert.Equal(t, "", b.String())

	b, err := b.Class("note")
	require.NoError(t, err)
	assert.Equal(t, ".note", b.String())
	assert.False(t, b.IsEmpty())
}

func TestBuild_AllKinds(t *testing.T) {
	b, err := selector.Build(
		selector.Part{Kind: selector.KindElement, Value: "a"},
		selector.Part{Kind: selector.KindID, Value: "x"},
		selector.Part{Kind: selector.KindClass, Value: "c1"},
		selector.Part{Kind: selector.KindClass, Value: "c2"},
		selector.Part{Kind: selector.KindAttribute, Value: `href$=".png"`},
		selector.Part{Kind: selector.KindAttribute, Value: "target"},
		selector.Part{Kind: selector.KindPseudoClass, Value: "hover"},
		selector.Part{Kind: selector.KindPseudoClass, Value: "first-child"},
		selector.Part{Kind: selector.KindPseudoElement, Value: "before"},
	)
	require.NoError(t, err)
	assert.Equal(t, `a#x.c1.c2[href$=".png"][target]:hover:first-child::before`, b.String())
	assert.Len(t, b.Parts(), 9)
	assert.True(t, b.Has(selector.KindPseudoElement))
}

func TestBuilder_AttributeVerbatim(t *testing.T) {
	b, err := selector.New().Attribute(`href$=".png"`)
	require.NoError(t, err)
	assert.Equal(t, `[href$=".png"]`, b.String())
}

func TestBuilder_SingleKinds(t *testing.T) {
	tests := []struct {
		kind selector.Kind
		want string
	}{
		{selector.KindElement, "v"},
		{selector.KindID, "#v"},
		{selector.KindClass, ".v"},
		{selector.KindAttribute, "[v]"},
		{selector.KindPseudoClass, ":v"},
		{selector.KindPseudoElement, "::v"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			b, err := selector.New().Append(tt.kind, "v")
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.String())
			assert.Equal(t, tt.want, selector.Part{Kind: tt.kind, Value: "v"}.String())
		})
	}
}

func TestBuilder_DuplicateSingletons(t *testing.T) {
	for _, kind := range []selector.Kind{selector.KindElement, selector.KindID, selector.KindPseudoElement} {
		t.Run(kind.String(), func(t *testing.T) {
			b, err := selector.New().Append(kind, "first")
			require.NoError(t, err)

			_, err = b.Append(kind, "second")
			require.ErrorIs(t, err, selector.ErrDuplicatePart)

			var dup *selector.DuplicatePartError
			require.True(t, errors.As(err, &dup))
			assert.Equal(t, kind, dup.Kind)
			assert.Equal(t, "second", dup.Value)
		})
	}
}

func TestBuilder_RepeatableKinds(t *testing.T) {
	for _, kind := range []selector.Kind{selector.KindClass, selector.KindAttribute, selector.KindPseudoClass} {
		b, err := selector.New().Append(kind, "x")
		require.NoError(t, err)
		_, err = b.Append(kind, "y")
		assert.NoError(t, err, kind.String())
	}
}

func TestBuilder_Order(t *testing.T) {
	b, err := selector.New().Class("a")
	require.NoError(t, err)

	_, err = b.ID("b")
	require.ErrorIs(t, err, selector.ErrOrder)

	var oe *selector.OrderError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, selector.KindID, oe.Kind)
	assert.Equal(t, selector.KindClass, oe.After)
	assert.Contains(t, err.Error(), "id \"b\" cannot follow class")

	// receiver stays usable after a failure
	b, err = b.PseudoClass("hover")
	require.NoError(t, err)
	assert.Equal(t, ".a:hover", b.String())

	_, err = b.Attribute("x")
	assert.ErrorIs(t, err, selector.ErrOrder)
}

func TestBuilder_DuplicateReportedBeforeOrder(t *testing.T) {
	b, err := selector.Build(
		selector.Part{Kind: selector.KindID, Value: "main"},
		selector.Part{Kind: selector.KindClass, Value: "a"},
	)
	require.NoError(t, err)

	_, err = b.ID("other")
	assert.ErrorIs(t, err, selector.ErrDuplicatePart)
	assert.NotErrorIs(t, err, selector.ErrOrder)
}

func TestBuilder_Immutable(t *testing.T) {
	base, err := selector.New().Element("div")
	require.NoError(t, err)

	x, err := base.Class("x")
	require.NoError(t, err)
	y, err := base.Class("y")
	require.NoError(t, err)

	assert.Equal(t, "div", base.String())
	assert.Equal(t, "div.x", x.String())
	assert.Equal(t, "div.y", y.String())
	assert.Equal(t, []selector.Part{{Kind: selector.KindElement, Value: "div"}, {Kind: selector.KindClass, Value: "x"}}, x.Parts())

	parts := y.Parts()
	parts[0].Value = "span"
	assert.Equal(t, "div", y.Parts()[0].Value)
}

func TestBuilder_Concurrent(t *testing.T) {
	base, err := selector.New().Element("li")
	require.NoError(t, err)

	const n = 32
	results := make([]string, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := base.Class("c")
			if err == nil {
				b, err = b.PseudoClass("hover")
			}
			if err == nil {
				results[i] = b.String()
			}
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "li.c:hover", r)
	}
	assert.Equal(t, "li", base.String())
}

func TestBuild_ReportsPartIndex(t *testing.T) {
	_, err := selector.Build(
		selector.Part{Kind: selector.KindPseudoElement, Value: "after"},
		selector.Part{Kind: selector.KindElement, Value: "p"},
	)
	require.ErrorIs(t, err, selector.ErrOrder)
	assert.Contains(t, err.Error(), "part 1")
}

func TestBuilder_UnknownKind(t *testing.T) {
	_, err := selector.New().Append(selector.Kind(42), "x")
	assert.ErrorIs(t, err, selector.ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want selector.Kind
	}{
		{"element", selector.KindElement},
		{"ID", selector.KindID},
		{"class", selector.KindClass},
		{"attribute", selector.KindAttribute},
		{"pseudo-class", selector.KindPseudoClass},
		{"pseudoClass", selector.KindPseudoClass},
		{"pseudo_element", selector.KindPseudoElement},
		{"pseudoElement", selector.KindPseudoElement},
	}
	for _, tt := range tests {
		got, err := selector.ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := selector.ParseKind("tag")
	assert.ErrorIs(t, err, selector.ErrUnknownKind)
	assert.Equal(t, []string{"element", "id", "class", "attribute", "pseudo-class", "pseudo-element"}, selector.KindNames())
	assert.Equal(t, "Kind(9)", selector.Kind(9).String())
}
