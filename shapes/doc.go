// Package shapes implements spec.md §4.5's "external collaborator"
// interface boundary for the octree: Overlaps/Contains/Volume/
// SquaredDistance/Union over AABB, Sphere, Ray, Triangle, Plane, Capsule,
// Cylinder, OBB, and Frustum.
package shapes
