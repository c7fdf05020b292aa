// Package masked implements a single-line editing core whose buffer is
// shaped by a compiled input mask.
//
// The buffer always has exactly one grapheme per mask slot. Editing
// never inserts or deletes slots: digits shift within their sub-section,
// empty slots show their default character, and grouping separators are
// recomputed after every structural change. Cursor and selection are
// grapheme indices, as in the plain input core underneath.
package masked
