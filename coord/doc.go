// Package coord defines the coordinate and index types shared by every
// tilegrid component: world-space tile coordinates, chunk coordinates,
// in-chunk cell coordinates, the four cardinal directions, and the compact
// border-edge index used to address a chunk's 4N outer edges.
//
// These are plain value types — no interfaces, no pointers — matching the
// rest of the module's discipline of addressing structure by integer index
// rather than by reference.
package coord
