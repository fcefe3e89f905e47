/*
Package ports defines the driven ports (interfaces) of the curve editor.

These interfaces decouple the editor from where table files live, so the same
editing code works against the filesystem or an in-memory store.

# Key Interfaces

  - TableStore: loads, saves, deletes and lists raw table file text by name.

RunTableStoreContract is a reusable test suite for TableStore adapters.
*/
package ports
