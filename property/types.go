// Package property implements the property arena (C1): named, typed,
// parallel columns indexed by a shared row space. The mesh's
// connectivity is built on top of PropertyRegistry; the octree keeps its
// nodes in plain slices.
//
// A registry has no notion of "deletion" of rows — callers model that
// with a tombstone column (e.g. "v:deleted") and compact later with
// Swap + TruncateTo. Removing a column (Remove) is distinct from removing a
// row: it drops a named column from the registry's column list.
package property

import "errors"

// Sentinel errors for property arena operations.
var (
	// ErrDuplicateName indicates Add was called with a name already present.
	ErrDuplicateName = errors.New("property: duplicate column name")

	// ErrNotFound indicates Get/Remove referenced a column that does not exist.
	ErrNotFound = errors.New("property: column not found")

	// ErrTypeMismatch indicates a column exists under the requested name
	// but was created with a different element type.
	ErrTypeMismatch = errors.New("property: type mismatch for column")

	// ErrCapacity indicates growth would exceed the maximum row count
	// addressable by a 32-bit handle.
	ErrCapacity = errors.New("property: registry capacity exceeded")
)

// MaxSize is the largest row count a registry can hold: handles are
// 32-bit, and the all-ones value is reserved as the invalid sentinel.
const MaxSize = ^uint32(0) - 1

// InvalidIndex is the reserved sentinel for "no such row".
const InvalidIndex = ^uint32(0)

// columnID is an opaque handle to one column within a registry.
type columnID int
