// Package geomkernel is a small 3D geometry kernel: a typed property
// system, an AABB/primitive shape library, a loose octree for spatial
// queries, a halfedge surface mesh with Euler operators, discrete
// exterior calculus operators with a conjugate-gradient solver, and a
// Quickhull convex-hull builder.
//
// Subpackages:
//
//	property/ — columnar typed property registries shared by every other
//	            package's per-element attributes (C1)
//	shapes/   — Vec3, AABB, Sphere, Ray, Triangle, Plane and their overlap
//	            tests (C2)
//	octree/   — loose octree build and best-first nearest/KNN queries (C3)
//	mesh/     — property-backed halfedge mesh with Euler operators (C4)
//	dec/      — DEC operators (D0, D1, Hodge stars, Laplacian) and a
//	            Jacobi-preconditioned CG solver (C5)
//	hull/     — Quickhull convex-hull builder (C6)
package geomkernel
