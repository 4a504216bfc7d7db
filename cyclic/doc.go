// Package cyclic provides a fixed-length sequence with modular indexing.
//
// What:
//
//   - Seq[T]: a mutable sequence whose logical indices wrap around its
//     length. Index -1 addresses the last element, index Len() the first.
//   - In-place rotation in both directions.
//
// Why:
//
//   - Periodic data (siteswaps, landing interfaces, ring buffers) is read
//     across the period boundary all the time; pushing the modulo into the
//     container keeps the algorithms free of index arithmetic.
//
// Complexity:
//
//   - At, Set, Index: O(1)
//   - RotateLeft, RotateRight: O(n) time, O(1) extra space (three reversals)
//   - Clone, Values: O(n)
//
// Zero-length sequences are legal. At returns the zero value and Set is a
// no-op on them, so every operation is total.
package cyclic
