package aabbtree

// Insert adds rect (fattened by the tree's extra margin) as a new leaf
// carrying userData, returning its node id. Complexity: O(log n) expected.
func (t *Tree) Insert(rect Rect, userData any) int {
	leaf := t.allocateNode()
	t.nodes[leaf] = Node{
		aabb:     rect.ExpandVec(t.extraMargin),
		parent:   invalidNode,
		children: [2]int{invalidNode, invalidNode},
		userData: userData,
	}
	t.insertLeaf(leaf)

	return leaf
}

// insertLeaf splices leaf into the tree, choosing a sibling via the
// surface-area heuristic (spec.md §4.4 "Insertion"), then walks from the
// new parent to the root rebalancing and refitting heights/AABBs.
func (t *Tree) insertLeaf(leaf int) {
	if t.root == invalidNode {
		t.root = leaf
		return
	}

	leafAABB := t.nodes[leaf].aabb
	idx := t.root
	for !t.isLeaf(idx) {
		node := t.nodes[idx]
		child0, child1 := node.children[0], node.children[1]

		area := node.aabb.Perimeter()
		combinedArea := Combine(node.aabb, leafAABB).Perimeter()

		siblingCost := 2 * combinedArea
		inheritCost := 2 * (combinedArea - area)

		cost0 := t.childCost(child0, leafAABB) + inheritCost
		cost1 := t.childCost(child1, leafAABB) + inheritCost

		if siblingCost < cost0 && siblingCost < cost1 {
			break
		}
		if cost0 <= cost1 {
			idx = child0
		} else {
			idx = child1
		}
	}

	sibling := idx
	oldParent := t.nodes[sibling].parent
	newParent := t.allocateNode()
	t.nodes[newParent] = Node{
		parent:   oldParent,
		aabb:     Combine(t.nodes[sibling].aabb, leafAABB),
		height:   t.nodes[sibling].height + 1,
		children: [2]int{sibling, leaf},
	}
	t.nodes[sibling].parent = newParent
	t.nodes[leaf].parent = newParent

	if oldParent == invalidNode {
		t.root = newParent
	} else {
		p := &t.nodes[oldParent]
		if p.children[0] == sibling {
			p.children[0] = newParent
		} else {
			p.children[1] = newParent
		}
	}

	for idx = newParent; idx != invalidNode; idx = t.nodes[idx].parent {
		idx = t.balance(idx)
		left, right := t.nodes[idx].children[0], t.nodes[idx].children[1]
		t.nodes[idx].height = 1 + maxInt(t.nodes[left].height, t.nodes[right].height)
		t.nodes[idx].aabb = Combine(t.nodes[left].aabb, t.nodes[right].aabb)
	}
}

// childCost is spec.md §4.4's per-child insertion cost: the perimeter of
// request-union-child, minus the child's own perimeter if it is internal
// (an internal child's existing perimeter is "inherited" regardless of
// where under it the leaf ultimately lands).
func (t *Tree) childCost(child int, leafAABB Rect) float64 {
	node := t.nodes[child]
	unionPerimeter := Combine(node.aabb, leafAABB).Perimeter()
	if t.isLeaf(child) {
		return unionPerimeter
	}
	return unionPerimeter - node.aabb.Perimeter()
}
