package aabbtree

import "math"

// Vec2 is a 2D point or vector of float64 components.
type Vec2 struct {
	X, Y float64
}

// Rect is a half-open axis-aligned bounding box [Min, Max) with
// Min <= Max componentwise.
type Rect struct {
	Min, Max Vec2
}

// Combine returns the smallest Rect containing both a and b.
func Combine(a, b Rect) Rect {
	return Rect{
		Min: Vec2{X: math.Min(a.Min.X, b.Min.X), Y: math.Min(a.Min.Y, b.Min.Y)},
		Max: Vec2{X: math.Max(a.Max.X, b.Max.X), Y: math.Max(a.Max.Y, b.Max.Y)},
	}
}

// Expand inflates r by v uniformly on every side. A negative v shrinks the
// rect but never inverts it: if shrinking would push Min past Max on an
// axis, that axis collapses to its midpoint instead.
func (r Rect) Expand(v float64) Rect {
	return r.ExpandVec(Vec2{X: v, Y: v})
}

// ExpandVec inflates r by v.X on the X axis and v.Y on the Y axis
// independently, with the same never-invert rule as Expand.
func (r Rect) ExpandVec(v Vec2) Rect {
	minX, maxX := r.Min.X-v.X, r.Max.X+v.X
	if minX > maxX {
		minX = (minX + maxX) / 2
		maxX = minX
	}
	minY, maxY := r.Min.Y-v.Y, r.Max.Y+v.Y
	if minY > maxY {
		minY = (minY + maxY) / 2
		maxY = minY
	}

	return Rect{Min: Vec2{X: minX, Y: minY}, Max: Vec2{X: maxX, Y: maxY}}
}

// ExpandInDir asymmetrically inflates r: on each axis, a negative component
// of v extends the near side (Min), a positive component extends the far
// side (Max).
func (r Rect) ExpandInDir(v Vec2) Rect {
	minX, maxX := r.Min.X, r.Max.X
	if v.X < 0 {
		minX += v.X
	} else {
		maxX += v.X
	}
	minY, maxY := r.Min.Y, r.Max.Y
	if v.Y < 0 {
		minY += v.Y
	} else {
		maxY += v.Y
	}

	return Rect{Min: Vec2{X: minX, Y: minY}, Max: Vec2{X: maxX, Y: maxY}}
}

// Contains reports whether other lies entirely within r, inclusive.
func (r Rect) Contains(other Rect) bool {
	return r.Min.X <= other.Min.X && r.Min.Y <= other.Min.Y &&
		other.Max.X <= r.Max.X && other.Max.Y <= r.Max.Y
}

// ContainsPoint reports whether p lies within r's half-open extent:
// r.Min <= p < r.Max.
func (r Rect) ContainsPoint(p Vec2) bool {
	return r.Min.X <= p.X && p.X < r.Max.X && r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Intersects reports whether r and other overlap, using strict inequalities
// on both sides (so two rects that merely touch at an edge do not count).
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X < other.Max.X && other.Min.X < r.Max.X &&
		r.Min.Y < other.Max.Y && other.Min.Y < r.Max.Y
}

// Perimeter returns 2*(width+height), the surface-area-heuristic cost proxy
// used by Insert's sibling selection.
func (r Rect) Perimeter() float64 {
	return 2 * ((r.Max.X - r.Min.X) + (r.Max.Y - r.Min.Y))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
