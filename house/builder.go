package house

// Builder stages a House under construction. Setters overwrite the staged
// field and return the same builder for chaining.
//
// Build does not reset the staged house: a reused builder starts from the
// previous house's fields. Discard the builder to start from scratch.
type Builder struct {
	house House
}

// NewBuilder returns a builder staging an empty House.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetWalls overwrites the staged walls.
func (b *Builder) SetWalls(walls string) *Builder {
	b.house.Walls = walls
	return b
}

// SetDoors overwrites the staged doors.
func (b *Builder) SetDoors(doors string) *Builder {
	b.house.Doors = doors
	return b
}

// SetWindows overwrites the staged windows.
func (b *Builder) SetWindows(windows string) *Builder {
	b.house.Windows = windows
	return b
}

// SetRoof overwrites the staged roof.
func (b *Builder) SetRoof(roof string) *Builder {
	b.house.Roof = roof
	return b
}

// Build returns a copy of the staged house.
func (b *Builder) Build() House {
	return b.house
}
