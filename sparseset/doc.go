// Package sparseset implements SparseIndexSet (spec.md §4.1): a dense/sparse
// index allocator over integers in [0, capacity) supporting O(1)
// contains/insert/unordered-erase, O(n) ordered-erase, and stable identity
// for members until they are themselves erased.
//
// The structure keeps two mutually-inverse arrays, values and indices, such
// that values[indices[x]] == x and indices[values[i]] == i for every valid x
// and i; the first n entries of values are exactly the members of the set.
// Insertion and unordered erase are implemented as array swaps, so both are
// O(1); only erase_ordered and reserve touch more than a constant number of
// entries.
//
// Complexity: Contains/Insert/EraseUnordered are O(1); EraseOrdered and
// Reserve are O(n) and O(new capacity) respectively.
package sparseset
