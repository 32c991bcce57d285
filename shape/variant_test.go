package shape

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariant_DispatchMatchesFactory(t *testing.T) {
	for _, k := range Kinds() {
		s, ok := Create(k)
		require.True(t, ok)
		v, ok := VariantFor(k)
		require.True(t, ok)

		var viaFactory, viaVariant bytes.Buffer
		s.Draw(&viaFactory)
		v.Draw(&viaVariant)

		assert.Equal(t, viaFactory.String(), viaVariant.String(), "kind %s", k)
		assert.Equal(t, k, v.Kind())
	}
}

func TestVariantOf(t *testing.T) {
	var buf bytes.Buffer
	VariantOf(Circle{}).Draw(&buf)
	VariantOf(Rectangle{}).Draw(&buf)
	assert.Equal(t, "Drawing a Circle\nDrawing a Rectangle\n", buf.String())
}

func TestMatch_Exhaustive(t *testing.T) {
	name := func(v Variant) string {
		return Match(v,
			func(Circle) string { return "round" },
			func(Rectangle) string { return "boxy" },
		)
	}

	assert.Equal(t, "round", name(VariantOf(Circle{})))
	assert.Equal(t, "boxy", name(VariantOf(Rectangle{})))
	assert.Equal(t, "", name(Variant{}))
}

func TestVariant_ZeroValue(t *testing.T) {
	var buf bytes.Buffer
	Variant{}.Draw(&buf)
	assert.Empty(t, buf.String())
	assert.Equal(t, Kind(0), Variant{}.Kind())

	_, ok := VariantFor(0)
	assert.False(t, ok)
}
