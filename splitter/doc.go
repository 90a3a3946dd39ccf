// Package splitter implements GridSplitter: given a set of per-chunk
// components that may have lost their link to the rest of a grid, it walks
// the cross-chunk neighbor graph with a priority-ordered frontier and a
// union-find structure to decide which seeds belong to the same maximal
// component, and reports the strictly-smaller fragments a caller should
// detach.
//
// The frontier's min-heap uses the usual container/heap idiom of
// shortest-path code: a slice of pointer items with a Less/Swap/Push/Pop
// method set, ordered by a priority key rather than a raw distance. The
// union-find uses one-step path halving in a loop, the iterative
// find-with-compression pattern of minimum-spanning-tree code adapted from
// full compression to halving because a splitter run interleaves many finds with many unions and
// the difference is immaterial at the run sizes this package targets.
package splitter
