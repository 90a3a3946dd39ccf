package aabbtree

import "fmt"

// Validate walks the whole tree checking spec.md §4.4's structural
// invariants: a node is a leaf iff both children are invalid; every
// internal node's height is one plus the max of its children's heights;
// every internal node's AABB is the combine of its children's AABBs; every
// non-root node's parent pointer points back to a node that actually lists
// it as a child; and the root (if any) has no parent. Intended for tests and
// debugging, not the hot path.
func (t *Tree) Validate() error {
	if t.root == invalidNode {
		return nil
	}
	if t.nodes[t.root].parent != invalidNode {
		return fmt.Errorf("aabbtree: root %d has non-invalid parent %d", t.root, t.nodes[t.root].parent)
	}
	return t.validateNode(t.root, invalidNode)
}

func (t *Tree) validateNode(id, expectedParent int) error {
	node := t.nodes[id]
	if node.parent != expectedParent {
		return fmt.Errorf("aabbtree: node %d has parent %d, want %d", id, node.parent, expectedParent)
	}

	c0, c1 := node.children[0], node.children[1]
	if c0 == invalidNode && c1 == invalidNode {
		if node.height != 0 {
			return fmt.Errorf("aabbtree: leaf %d has height %d, want 0", id, node.height)
		}
		return nil
	}
	if c0 == invalidNode || c1 == invalidNode {
		return fmt.Errorf("aabbtree: node %d has exactly one invalid child", id)
	}

	if err := t.validateNode(c0, id); err != nil {
		return err
	}
	if err := t.validateNode(c1, id); err != nil {
		return err
	}

	wantHeight := 1 + maxInt(t.nodes[c0].height, t.nodes[c1].height)
	if node.height != wantHeight {
		return fmt.Errorf("aabbtree: node %d has height %d, want %d", id, node.height, wantHeight)
	}

	wantAABB := Combine(t.nodes[c0].aabb, t.nodes[c1].aabb)
	if node.aabb != wantAABB {
		return fmt.Errorf("aabbtree: node %d aabb %v does not combine its children, want %v", id, node.aabb, wantAABB)
	}

	return nil
}
