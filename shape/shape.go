// Package shape demonstrates the Factory Method pattern: shapes created from a
// Kind discriminator, and the same shapes held in a closed sum type.
package shape

import (
	"creational/domain"
	"fmt"
	"io"
	"strings"
)

// Shape can be drawn
type Shape interface {
	Draw(w io.Writer)
}

// Circle is a stateless circle
type Circle struct{}

func (Circle) Draw(w io.Writer) {
	fmt.Fprintln(w, "Drawing a Circle")
}

// Rectangle is a stateless rectangle
type Rectangle struct{}

func (Rectangle) Draw(w io.Writer) {
	fmt.Fprintln(w, "Drawing a Rectangle")
}

// Kind discriminates the concrete shape to create. The zero Kind is not a
// valid shape.
type Kind int

const (
	KindCircle Kind = iota + 1
	KindRectangle
)

// Kinds lists the recognised kinds in display order.
func Kinds() []Kind {
	return []Kind{KindCircle, KindRectangle}
}

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind resolves a shape name such as "circle" or "Rectangle".
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "circle":
		return KindCircle, nil
	case "rectangle", "rect":
		return KindRectangle, nil
	default:
		return 0, domain.NewUnknownKindError("shape", name)
	}
}
