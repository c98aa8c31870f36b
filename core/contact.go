package core

// Contact is one newly-began touch between two entities, delivered once per simulation step
// Order of A and B is arbitrary
type Contact struct {
	A         Entity
	CategoryA Category
	B         Entity
	CategoryB Category
	Point     Vec2
}

// Canonical returns the contact with the lower category identifier first
// Equal categories keep the lower entity handle first so the result is order independent
func (c Contact) Canonical() Contact {
	if c.CategoryA > c.CategoryB || (c.CategoryA == c.CategoryB && c.A > c.B) {
		return Contact{A: c.B, CategoryA: c.CategoryB, B: c.A, CategoryB: c.CategoryA, Point: c.Point}
	}
	return c
}
