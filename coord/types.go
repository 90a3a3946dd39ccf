package coord

import "fmt"

// Direction is one of the four cardinal directions a tile edge can face.
// The numeric values are load-bearing: Opposite(d) == d^2, and
// BorderEdgeIndex packs Direction into its low 2 bits.
type Direction uint8

const (
	DirPlusX  Direction = 0 // +X, "east"
	DirPlusY  Direction = 1 // +Y, "south" (row-major Y increases downward)
	DirMinusX Direction = 2 // -X, "west"
	DirMinusY Direction = 3 // -Y, "north"
)

// numDirections is the number of cardinal directions (4, per spec.md's
// "four cardinal directions" scope — diagonals are out of scope).
const numDirections = 4

// Opposite returns the direction facing the opposite way. Bit k of a tile's
// mask facing d is matched against bit k of the neighbor's mask facing
// Opposite(d); spec.md calls this "direction i^2" and that identity holds
// exactly because DirPlusX/DirPlusY/DirMinusX/DirMinusY are numbered 0..3.
func (d Direction) Opposite() Direction {
	return d ^ 2
}

// String renders a Direction for diagnostics and test failure messages.
func (d Direction) String() string {
	switch d {
	case DirPlusX:
		return "+X"
	case DirPlusY:
		return "+Y"
	case DirMinusX:
		return "-X"
	case DirMinusY:
		return "-Y"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// dir4Offsets gives the (dx, dy) unit step for each Direction, indexed by
// its numeric value. Kept as a package-level array (not a method switch) so
// hot loops in chunkconn can range over it directly.
var dir4Offsets = [numDirections][2]int{
	DirPlusX:  {1, 0},
	DirPlusY:  {0, 1},
	DirMinusX: {-1, 0},
	DirMinusY: {0, -1},
}

// Dir4Offsets returns the four cardinal (dx, dy) steps indexed by Direction.
func Dir4Offsets() [numDirections][2]int {
	return dir4Offsets
}

// GlobalTileCoord identifies a single cell in world space, independent of
// chunking.
type GlobalTileCoord struct {
	X, Y int
}

// ChunkCoord identifies one whole chunk's position in the chunk grid (i.e.
// GlobalTileCoord divided by the chunk side N, floored).
type ChunkCoord struct {
	X, Y int
}

// Add returns the chunk coordinate offset by one step in direction d.
func (c ChunkCoord) Add(d Direction) ChunkCoord {
	off := dir4Offsets[d]
	return ChunkCoord{X: c.X + off[0], Y: c.Y + off[1]}
}

// ChunkRect is an inclusive min/max bounding rectangle over chunk
// coordinates, used by splitter to track the chunk-coord bounds of the
// per-chunk components a fragment has absorbed so far (spec.md §4.3).
type ChunkRect struct {
	Min, Max ChunkCoord
}

// PointChunkRect returns the 1x1 chunk rectangle containing exactly c.
func PointChunkRect(c ChunkCoord) ChunkRect {
	return ChunkRect{Min: c, Max: c}
}

// Union returns the tight bound containing both r and other.
func (r ChunkRect) Union(other ChunkRect) ChunkRect {
	if other.Min.X < r.Min.X {
		r.Min.X = other.Min.X
	}
	if other.Min.Y < r.Min.Y {
		r.Min.Y = other.Min.Y
	}
	if other.Max.X > r.Max.X {
		r.Max.X = other.Max.X
	}
	if other.Max.Y > r.Max.Y {
		r.Max.Y = other.Max.Y
	}

	return r
}

// InChunkCoord identifies a cell's position within its chunk: 0 <= X,Y < N.
type InChunkCoord struct {
	X, Y int
}

// InBounds reports whether c lies within an N×N chunk.
func (c InChunkCoord) InBounds(n int) bool {
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}

// Step returns the in-chunk coordinate offset by one cell in direction d,
// without any bounds check — callers check InBounds themselves, since a
// step may legitimately leave the chunk (that's what border edges are for).
func (c InChunkCoord) Step(d Direction) InChunkCoord {
	off := dir4Offsets[d]
	return InChunkCoord{X: c.X + off[0], Y: c.Y + off[1]}
}

// InChunkRect is an inclusive min/max bounding rectangle over in-chunk
// tile coordinates, used as a Component's tight bound (spec.md §3: "the
// rectangle is the tight bound of the tiles").
type InChunkRect struct {
	Min, Max InChunkCoord
}

// PointRect returns the 1x1 rectangle containing exactly p, the seed value
// spec.md §4.2 describes for a component's first discovered tile.
func PointRect(p InChunkCoord) InChunkRect {
	return InChunkRect{Min: p, Max: p}
}

// Extend grows r to include p, returning the new tight bound.
func (r InChunkRect) Extend(p InChunkCoord) InChunkRect {
	if p.X < r.Min.X {
		r.Min.X = p.X
	}
	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}
	if p.X > r.Max.X {
		r.Max.X = p.X
	}
	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}

	return r
}

// Union returns the tight bound containing both r and other.
func (r InChunkRect) Union(other InChunkRect) InChunkRect {
	r = r.Extend(other.Min)
	r = r.Extend(other.Max)

	return r
}

// TileEdgeConnectivity is the bitmask attached to one side of one tile; two
// adjacent tiles are connected iff the bitwise AND of the masks facing each
// other is non-zero. Per spec.md §3, the mask is not direction-reversed when
// flipping sides: bit k of tile A facing DirPlusX is matched against bit k
// of tile B facing DirMinusX directly.
type TileEdgeConnectivity uint32

// Connects reports whether two tile-edge masks, facing each other across an
// adjacency, permit movement.
func (m TileEdgeConnectivity) Connects(other TileEdgeConnectivity) bool {
	return m&other != 0
}

// BorderEdgeIndex is a compact encoding of (side, offset) for one of a
// chunk's 4N outer edges: (offset << 2) | side. The space of valid values is
// densely enumerable as [0, 4N).
type BorderEdgeIndex int

// PackBorderEdge encodes a (direction, offset) pair, offset in [0, n).
// Panics if direction or offset is out of range: this is a programmer error
// (a malformed index), not a recoverable runtime condition, matching this
// module's panic-on-misuse convention for malformed indices elsewhere
// (sparseset's range check, chunkconn.NewChunkComponents).
func PackBorderEdge(d Direction, offset, n int) BorderEdgeIndex {
	if d > DirMinusY {
		panic(fmt.Sprintf("coord: PackBorderEdge: invalid direction %d", d))
	}
	if offset < 0 || offset >= n {
		panic(fmt.Sprintf("coord: PackBorderEdge: offset %d out of range [0,%d)", offset, n))
	}

	return BorderEdgeIndex(offset<<2 | int(d))
}

// Unpack decodes a BorderEdgeIndex back into its (direction, offset) pair.
func (e BorderEdgeIndex) Unpack() (d Direction, offset int) {
	return Direction(e & 3), int(e >> 2)
}

// NumBorderEdges returns 4*n, the number of distinct border-edge indices for
// an n-side chunk.
func NumBorderEdges(n int) int {
	return numDirections * n
}

// InvalidComponentIndex is the sentinel "no component" value used wherever
// spec.md calls for an invalid ComponentIndex or GlobalComponentIndex.
const InvalidComponentIndex = -1
