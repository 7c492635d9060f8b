// Package octree implements spec.md's loose octree (C3): elements are
// stored either at the deepest node that fully contains their AABB, or
// classified into a single child octant. Elements that straddle a split
// plane stay at the internal node that produced it, except under
// SplitPolicy.TightChildren (the default), where they are classified into
// the octant that holds their AABB center. Build runs
// iteratively over an explicit work stack (not recursion); queries use a
// best-first traversal over a container/heap priority queue for
// QueryNearest/QueryKNN and a plain DFS stack for QueryAABB/QueryRay/
// QuerySphere.
package octree
