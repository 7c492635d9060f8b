package property

// PropertySet bundles the distinct per-entity-kind registries used by the
// halfedge mesh (C4): each entity kind owns its own row space, so a vertex
// handle and a face handle with the same integer value refer to unrelated
// rows. The Nodes registry is allocated empty; package octree does not use
// it.
type PropertySet struct {
	Vertices  *PropertyRegistry
	Halfedges *PropertyRegistry
	Edges     *PropertyRegistry
	Faces     *PropertyRegistry
	Nodes     *PropertyRegistry
}

// NewSet returns a PropertySet with all five registries freshly allocated
// and empty.
func NewSet() *PropertySet {
	return &PropertySet{
		Vertices:  NewRegistry(),
		Halfedges: NewRegistry(),
		Edges:     NewRegistry(),
		Faces:     NewRegistry(),
		Nodes:     NewRegistry(),
	}
}
