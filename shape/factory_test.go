package shape

import (
	"bytes"
	"creational/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_RecognisedKinds(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindCircle, "Drawing a Circle\n"},
		{KindRectangle, "Drawing a Rectangle\n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.kind.String(), func(t *testing.T) {
			s, ok := Create(tc.kind)
			require.True(t, ok)
			require.NotNil(t, s)

			var buf bytes.Buffer
			s.Draw(&buf)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestCreate_ConcreteTypes(t *testing.T) {
	c, _ := Create(KindCircle)
	r, _ := Create(KindRectangle)
	assert.IsType(t, &Circle{}, c)
	assert.IsType(t, &Rectangle{}, r)
}

func TestCreate_UnrecognisedKind(t *testing.T) {
	for _, k := range []Kind{0, Kind(-1), KindRectangle + 1, Kind(99)} {
		assert.NotPanics(t, func() {
			s, ok := Create(k)
			assert.False(t, ok, "kind %d", int(k))
			assert.Nil(t, s)
		})
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"circle", KindCircle, false},
		{"Circle", KindCircle, false},
		{"rectangle", KindRectangle, false},
		{" RECT ", KindRectangle, false},
		{"triangle", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseKind(tc.in)
			if tc.wantErr {
				assert.True(t, domain.IsUnknownKindError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "circle", KindCircle.String())
	assert.Equal(t, "rectangle", KindRectangle.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
	assert.Equal(t, []Kind{KindCircle, KindRectangle}, Kinds())
}
