package chunkconn

// SwapLastAndRemove removes component c from cc. If alreadyEmpty is false,
// c's border-edge footprint is first cleared from the reverse index; pass
// true when the caller has already moved c's contents out via MoveFrom (its
// footprint was already re-pointed at the destination and must not be
// cleared here). If c is not the last component, the last component is
// moved into slot c and its own border-edge footprint is re-pointed at c.
//
// Invalidates NeighborComponents for this chunk — callers must re-run
// ComputeConnectivityBetweenChunks afterward (spec.md §4.2).
func (cc *ChunkComponents) SwapLastAndRemove(c ComponentIndex, alreadyEmpty bool) {
	if !alreadyEmpty {
		cc.clearBorderFootprint(c)
	}

	last := ComponentIndex(len(cc.Components) - 1)
	if c != last {
		cc.Components[c] = cc.Components[last]
		cc.setBorderFootprint(c)
	}
	cc.Components = cc.Components[:last]

	// Component indices have shifted; neighbor_components is keyed by
	// index, so it can no longer be trusted until recomputed.
	for d := range cc.neighbors {
		cc.neighbors[d] = nil
	}
}

// MoveFrom moves component c out of cc (the source chunk) into dst (the
// destination chunk), appending it as a new component there and returning
// its new index. The moved component's BorderEdges are re-indexed into
// dst's reverse border-edge index. The slot in cc is left populated with
// stale data — callers must follow up with
// cc.SwapLastAndRemove(c, alreadyEmpty=true) to actually vacate it, per
// spec.md §4.2 ("leaving the slot in A empty, to be removed later").
func (cc *ChunkComponents) MoveFrom(c ComponentIndex, dst *ChunkComponents) ComponentIndex {
	cc.clearBorderFootprint(c)
	moved := cc.Components[c]

	newIdx := ComponentIndex(len(dst.Components))
	dst.Components = append(dst.Components, moved)
	dst.setBorderFootprint(newIdx)

	return newIdx
}
