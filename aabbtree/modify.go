package aabbtree

// predictedRect extends raw forward along velocity, toward where the leaf is
// heading: a positive velocity component extends that axis's Max side, a
// negative one its Min side. Scaled by the tree's configured
// velocityMarginFactor.
func (t *Tree) predictedRect(raw Rect, velocity Vec2) Rect {
	factor := t.velocityMarginFactor
	return raw.ExpandInDir(Vec2{X: velocity.X * factor, Y: velocity.Y * factor})
}

// Modify updates leaf id's rectangle to raw, fattened predictively along
// velocity, leaving id unchanged. If the leaf's stored AABB still contains
// raw, and the velocity-extended raw inflated by extra plus shrink margin
// still contains the stored AABB (so the stored AABB has not grown too
// loose), the stored AABB is left untouched (spec.md §4.4 "cheap move").
// Otherwise the leaf is detached and reinserted at the same id with a
// freshly fattened AABB: the velocity-extended raw plus the extra margin.
func (t *Tree) Modify(id int, raw Rect, velocity Vec2) {
	current := t.nodes[id].aabb
	if current.Contains(raw) {
		loose := t.predictedRect(raw, velocity).ExpandVec(Vec2{
			X: t.extraMargin.X + t.shrinkMargin.X,
			Y: t.extraMargin.Y + t.shrinkMargin.Y,
		})
		if loose.Contains(current) {
			return
		}
	}

	fat := t.predictedRect(raw, velocity).ExpandVec(t.extraMargin)

	t.detach(id)
	t.nodes[id].aabb = fat
	t.nodes[id].parent = invalidNode
	t.nodes[id].children = [2]int{invalidNode, invalidNode}
	t.nodes[id].height = 0
	t.insertLeaf(id)
}
