// Package rope provides an immutable rope data structure for text storage.
//
// A rope is a tree where leaf nodes hold bounded text chunks and internal
// nodes store aggregated metrics (byte count, line-break count). This
// implementation uses a B+ tree variant for cache locality and predictable
// worst-case behavior.
//
// All three line terminators are recognized: "\n", "\r" and "\r\n". A CR
// directly followed by an LF counts as a single terminator, even when the
// two bytes land in different chunks.
//
// Operations return new Rope values; the original is never modified. Edits
// cost O(edit size + log n) and never rescan the whole text.
package rope
