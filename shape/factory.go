package shape

// Create returns a new shape for k. The second result is false when k is not
// a recognised Kind; the Shape is then nil and must not be used.
func Create(k Kind) (Shape, bool) {
	switch k {
	case KindCircle:
		return &Circle{}, true
	case KindRectangle:
		return &Rectangle{}, true
	default:
		return nil, false
	}
}
