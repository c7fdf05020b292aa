// Package store provides text storage with grapheme-aware addressing.
//
// Positions are (column, line) pairs where the column counts grapheme
// clusters, not bytes or runes. The package converts between byte offsets
// and positions in both directions, and every mutation reports the affected
// range in both coordinate systems so callers can maintain cursors and
// marks without rescanning.
//
// Two implementations are provided: RopeStore holds multi-line text in a
// rope, StringStore holds a single line in a plain string. Both satisfy
// TextStore; single-line widgets use StringStore and skip the rope
// overhead.
package store
