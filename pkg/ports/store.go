package ports

import (
	"context"
	"errors"
)

// ErrTableNotFound is returned by a TableStore when no table exists under a name.
var ErrTableNotFound = errors.New("table not found")

// TableStore defines the interface for persisting table file text.
// Names are store-relative file names such as "curves.tbl" or "intro-crv.tbm".
type TableStore interface {
	// Load retrieves the raw text stored under name.
	// Returns ErrTableNotFound if the table does not exist.
	Load(ctx context.Context, name string) ([]byte, error)

	// Save replaces the text stored under name.
	Save(ctx context.Context, name string, data []byte) error

	// Delete removes the table. Deleting a missing table is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored tables in lexical order.
	List(ctx context.Context) ([]string, error)
}
