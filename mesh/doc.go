// Package mesh implements the property-backed halfedge mesh (C4), built
// directly on package property: four parallel registries carry the
// built-in v:point / v:connectivity / h:connectivity / f:connectivity
// properties described in spec.md §4.2, alongside whatever extra named
// properties a caller layers on with property.GetOrAdd.
//
// Handles (VertexHandle, HalfedgeHandle, EdgeHandle, FaceHandle) are
// opaque row indices, never pointers: GarbageCollection compacts and
// renumbers rows in place, so nothing outside this package may assume a
// handle's numeric value is stable across a call to it.
package mesh
