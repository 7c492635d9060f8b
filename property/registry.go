package property

import "fmt"

// PropertyRegistry is an ordered collection of typed columns that all
// share one logical row count. Resize/Swap/PushBack act uniformly across
// every column currently registered.
type PropertyRegistry struct {
	size    int
	byName  map[string]columnID
	columns []column // nil entries mark removed columns (id is never reused)
}

// NewRegistry returns an empty registry with zero rows.
func NewRegistry() *PropertyRegistry {
	return &PropertyRegistry{byName: make(map[string]columnID)}
}

// Size reports the current shared row count.
func (r *PropertyRegistry) Size() int { return r.size }

// Add creates a new column named name with default default_, erroring with
// ErrDuplicateName if the name is already registered (regardless of type).
func Add[T any](r *PropertyRegistry, name string, default_ T) (Property[T], error) {
	if _, exists := r.byName[name]; exists {
		return Property[T]{}, fmt.Errorf("Add %q: %w", name, ErrDuplicateName)
	}
	col := newTypedColumn[T](name, default_, r.size)
	id := columnID(len(r.columns))
	r.columns = append(r.columns, col)
	r.byName[name] = id
	return Property[T]{registry: r, id: id, col: col}, nil
}

// Get looks up an existing column by name. It yields ok=false if the name
// is absent or was registered with a different element type.
func Get[T any](r *PropertyRegistry, name string) (view Property[T], ok bool) {
	id, exists := r.byName[name]
	if !exists {
		return Property[T]{}, false
	}
	col := r.columns[id]
	if col == nil {
		return Property[T]{}, false
	}
	typed, isT := col.(*typedColumn[T])
	if !isT {
		return Property[T]{}, false
	}
	return Property[T]{registry: r, id: id, col: typed}, true
}

// GetOrAdd returns the existing column for name if present and type-matched,
// otherwise adds it. A name that exists with a different type is a
// programming error per spec.md §9: callers always pair a name with a
// fixed type, so this panics rather than silently returning a broken view.
func GetOrAdd[T any](r *PropertyRegistry, name string, default_ T) Property[T] {
	if id, exists := r.byName[name]; exists {
		col := r.columns[id]
		if col == nil {
			// name was removed; re-add under the same name.
			return mustAdd(r, name, default_)
		}
		typed, isT := col.(*typedColumn[T])
		if !isT {
			panic(fmt.Errorf("property: GetOrAdd(%q): existing column has type %s, requested %s: %w",
				name, col.elemType(), typeName(default_), ErrTypeMismatch))
		}
		return Property[T]{registry: r, id: id, col: typed}
	}
	return mustAdd(r, name, default_)
}

func mustAdd[T any](r *PropertyRegistry, name string, default_ T) Property[T] {
	v, err := Add(r, name, default_)
	if err != nil {
		// Add only fails on ErrDuplicateName, which the caller above ruled out.
		panic(err)
	}
	return v
}

// Remove drops the named column from the registry's column list. Rows are
// untouched; a subsequent Get on this name yields ok=false.
func (r *PropertyRegistry) Remove(name string) error {
	id, exists := r.byName[name]
	if !exists || r.columns[id] == nil {
		return fmt.Errorf("Remove %q: %w", name, ErrNotFound)
	}
	r.columns[id] = nil
	delete(r.byName, name)
	return nil
}

// Resize grows every column to n rows, filling new rows with each column's
// default value. It never shrinks; shrinking happens via GarbageCollection
// in package mesh, which calls TruncateTo after compaction.
func (r *PropertyRegistry) Resize(n int) error {
	if n < r.size {
		n = r.size
	}
	if uint32(n) > MaxSize {
		return ErrCapacity
	}
	for _, c := range r.columns {
		if c != nil {
			c.resize(n)
		}
	}
	r.size = n
	return nil
}

// TruncateTo shrinks every column to exactly n rows, discarding the tail.
// Unlike Resize, this may reduce Size(); it exists for garbage-collection
// compaction (package mesh), which always truncates to a count it just
// computed by counting live rows.
func (r *PropertyRegistry) TruncateTo(n int) {
	if n > r.size {
		return
	}
	for _, c := range r.columns {
		if c != nil {
			c.resize(n)
		}
	}
	r.size = n
}

// PushBack appends one default-initialized row across every column and
// returns its index.
func (r *PropertyRegistry) PushBack() (int, error) {
	if uint32(r.size+1) > MaxSize {
		return 0, ErrCapacity
	}
	for _, c := range r.columns {
		if c != nil {
			c.pushBack()
		}
	}
	r.size++
	return r.size - 1, nil
}

// Swap exchanges row i and row j across every column.
func (r *PropertyRegistry) Swap(i, j int) {
	if i == j {
		return
	}
	for _, c := range r.columns {
		if c != nil {
			c.swap(i, j)
		}
	}
}

// ShrinkToFit trims capacity of every column to its current length.
func (r *PropertyRegistry) ShrinkToFit() {
	for _, c := range r.columns {
		if c != nil {
			c.shrinkToFit()
		}
	}
}

// Property is a typed view into one column of a PropertyRegistry. It
// borrows the underlying column; callers must re-fetch (Get/GetOrAdd)
// after any structural mutation that could reallocate the column, per
// spec.md §5's borrow discipline — this package follows strategy (a):
// call sites re-fetch views after mutation rather than invalidating them
// automatically.
type Property[T any] struct {
	registry *PropertyRegistry
	id       columnID
	col      *typedColumn[T]
}

// Valid reports whether this view still refers to a live column.
func (p Property[T]) Valid() bool {
	return p.col != nil && p.registry != nil && p.registry.columns[p.id] != nil
}

// Get reads row i.
func (p Property[T]) Get(i int) T { return p.col.data[i] }

// Set writes row i.
func (p Property[T]) Set(i int, v T) { p.col.data[i] = v }

// Len reports the column's current length (equal to the registry's Size).
func (p Property[T]) Len() int { return len(p.col.data) }

// Data returns a mutable view of the backing slice. Callers must treat it
// as borrowed: it is invalidated by any Resize/PushBack on the owning
// registry.
func (p Property[T]) Data() []T { return p.col.data }
