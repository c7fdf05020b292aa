// Package mask implements the input-mask algebra for masked editing.
//
// A mask pattern is compiled into a slice of tokens, one per editable
// slot plus a trailing sentinel for the cursor position past the last
// slot. Each token knows its slot kind, the section and sub-section it
// belongs to, and the default character it displays when empty. The
// masked editing core consumes the token slice; this package holds no
// editing state of its own.
package mask
