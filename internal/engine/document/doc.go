// Package document provides the mutable drawing document the editing engine
// operates on: an ordered shape list whose slice order is the z-order, a
// multi-select selection set, and the hit-test and rectangle-intersection
// queries consumed by commands.
//
// Hit-testing iterates from the topmost shape down so the shape the user
// sees on top is the one selected; this ordering mirrors rendering exactly.
//
// Shape identifiers are unique within a document. The selection set may hold
// identifiers of shapes that were deleted afterwards; every operation that
// consumes the selection tolerates dangling identifiers rather than the
// delete path pruning the set.
package document
