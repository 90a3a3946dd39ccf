package aabbtree

import "fmt"

// invalidNode is the "no node" sentinel for parent/child/root fields.
const invalidNode = -1

// Node is one AabbTree node: a leaf iff Children[0] == invalid. Internal
// nodes hold the combined AABB and max-plus-one height of their children;
// leaves hold the caller's rectangle (fattened by the tree's margin) and
// UserData.
type Node struct {
	aabb     Rect
	height   int
	parent   int
	children [2]int
	userData any
}

// Tree is a dynamic bounding-volume hierarchy over caller rectangles,
// supporting Insert/Remove/Modify and point/rect/predicate queries.
//
// Nodes are addressed by integer index into an owned slice; freed slots are
// recycled via an embedded free list (Node.children[0] repurposed as the
// next-free pointer while a slot is free), so a long sequence of
// Insert/Remove pairs does not grow the backing array without bound.
type Tree struct {
	nodes    []Node
	root     int
	freeList int

	extraMargin          Vec2
	shrinkMargin         Vec2
	velocityMarginFactor float64
	balanceThreshold     int
}

type treeOptions struct {
	extraMargin          Vec2
	shrinkMargin         Vec2
	shrinkMarginSet      bool
	velocityMarginFactor float64
	balanceThreshold     int
}

func defaultTreeOptions() treeOptions {
	return treeOptions{
		extraMargin:          Vec2{X: 0.1, Y: 0.1},
		velocityMarginFactor: 1,
		balanceThreshold:     2, // spec.md §9: damps oscillation better than the source's default of 1.
	}
}

// Option configures a Tree at construction time.
type Option func(*treeOptions)

// WithExtraMargin sets the initial inflation applied to every inserted
// AABB, tolerating small movements without forcing a re-insertion.
func WithExtraMargin(v Vec2) Option {
	return func(o *treeOptions) { o.extraMargin = v }
}

// WithShrinkMargin sets the additional slack, on top of extra margin,
// before Modify re-tightens a leaf's stored AABB. If omitted, it defaults to
// 4x the extra margin, the convention spec.md §4.4 names.
func WithShrinkMargin(v Vec2) Option {
	return func(o *treeOptions) { o.shrinkMargin = v; o.shrinkMarginSet = true }
}

// WithVelocityMarginFactor sets the multiplier applied to a reported
// movement direction when Modify computes a leaf's predictive fattening.
func WithVelocityMarginFactor(f float64) Option {
	return func(o *treeOptions) { o.velocityMarginFactor = f }
}

// WithBalanceThreshold sets the largest child-height difference a node may
// keep without rebalancing: a rotation is triggered only when the
// difference exceeds n. Panics if n < 1 (spec.md §4.4).
func WithBalanceThreshold(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("aabbtree: balance threshold must be >= 1, got %d", n))
	}
	return func(o *treeOptions) { o.balanceThreshold = n }
}

// New constructs an empty Tree.
func New(opts ...Option) *Tree {
	cfg := defaultTreeOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.shrinkMarginSet {
		cfg.shrinkMargin = Vec2{X: cfg.extraMargin.X * 4, Y: cfg.extraMargin.Y * 4}
	}

	return &Tree{
		root:                 invalidNode,
		freeList:             invalidNode,
		extraMargin:          cfg.extraMargin,
		shrinkMargin:         cfg.shrinkMargin,
		velocityMarginFactor: cfg.velocityMarginFactor,
		balanceThreshold:     cfg.balanceThreshold,
	}
}

// Empty reports whether the tree currently holds no nodes.
func (t *Tree) Empty() bool {
	return t.root == invalidNode
}

// Height returns the tree's overall height (that of the root), or -1 if the
// tree is empty.
func (t *Tree) Height() int {
	if t.root == invalidNode {
		return -1
	}
	return t.nodes[t.root].height
}

// AABB returns the current stored (margin-fattened) AABB for leaf id.
func (t *Tree) AABB(id int) Rect {
	return t.nodes[id].aabb
}

// UserData returns the UserData associated with leaf id at Insert time.
func (t *Tree) UserData(id int) any {
	return t.nodes[id].userData
}

func (t *Tree) isLeaf(i int) bool {
	return t.nodes[i].children[0] == invalidNode
}

func (t *Tree) allocateNode() int {
	if t.freeList == invalidNode {
		id := len(t.nodes)
		t.nodes = append(t.nodes, Node{parent: invalidNode, children: [2]int{invalidNode, invalidNode}})
		return id
	}

	id := t.freeList
	t.freeList = t.nodes[id].children[0]
	t.nodes[id] = Node{parent: invalidNode, children: [2]int{invalidNode, invalidNode}}

	return id
}

func (t *Tree) freeNode(id int) {
	t.nodes[id] = Node{parent: invalidNode, children: [2]int{t.freeList, invalidNode}}
	t.freeList = id
}
