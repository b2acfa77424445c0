// File: cursor.go
// Summary: Cursor, Margins and Savepoint value types.
// Usage: Embedded in Screen; Savepoint stack backs save_cursor/restore_cursor.

package vtcore

// Cursor is the screen's current writing position and pen state.
// X ranges 0..columns inclusive ("pending wrap" is X == columns).
type Cursor struct {
	X, Y   int
	Attrs  Char
	Hidden bool
}

// Margins are the 0-based inclusive scrolling-region bounds.
type Margins struct {
	Top, Bottom int
}

// Savepoint is a snapshot pushed by save_cursor and popped by restore_cursor.
type Savepoint struct {
	Cursor       Cursor
	G0, G1       string
	Charset      int
	OriginMode   bool
	AutowrapMode bool
}
