package shape

import "io"

// Variant holds exactly one of Circle or Rectangle by value. Construct it with
// VariantOf; the zero Variant holds nothing and draws nothing.
type Variant struct {
	shape variantShape
}

// variantShape seals the set of types a Variant can hold.
type variantShape interface {
	variant()
}

func (Circle) variant()    {}
func (Rectangle) variant() {}

// VariantOf wraps a concrete shape.
func VariantOf[S Circle | Rectangle](s S) Variant {
	return Variant{shape: any(s).(variantShape)}
}

// VariantFor returns the variant for k, or false if k is not recognised.
func VariantFor(k Kind) (Variant, bool) {
	switch k {
	case KindCircle:
		return VariantOf(Circle{}), true
	case KindRectangle:
		return VariantOf(Rectangle{}), true
	default:
		return Variant{}, false
	}
}

// Match calls the handler for the shape v holds and returns its result. For
// the zero Variant it returns the zero T.
func Match[T any](v Variant, circle func(Circle) T, rectangle func(Rectangle) T) T {
	switch s := v.shape.(type) {
	case Circle:
		return circle(s)
	case Rectangle:
		return rectangle(s)
	}
	var zero T
	return zero
}

// Draw dispatches through Match to the held shape, without going through Shape.
func (v Variant) Draw(w io.Writer) {
	Match(v,
		func(c Circle) struct{} {
			c.Draw(w)
			return struct{}{}
		},
		func(r Rectangle) struct{} {
			r.Draw(w)
			return struct{}{}
		},
	)
}

// Kind reports which shape v holds; 0 for the zero Variant.
func (v Variant) Kind() Kind {
	return Match(v,
		func(Circle) Kind { return KindCircle },
		func(Rectangle) Kind { return KindRectangle },
	)
}
