package hull

import "github.com/katalvlaran/geomkernel/shapes"

// visibleFacesBFS returns the set of face indices visible from eye,
// starting at seedFace and expanding through the edge-to-faces adjacency
// map, per spec.md §4.4 step 5b.
func visibleFacesBFS(points []shapes.Vec3, faces []face, edges *edgeAdjacency, seedFace, eye int, eps float64) map[int]bool {
	visible := map[int]bool{seedFace: true}
	queue := []int{seedFace}
	for len(queue) > 0 {
		fi := queue[0]
		queue = queue[1:]
		v := faces[fi].verts
		edgesOf := [3][2]int{{v[0], v[1]}, {v[1], v[2]}, {v[2], v[0]}}
		for _, e := range edgesOf {
			nb := edges.neighborAcross(e[0], e[1], fi)
			if nb < 0 || visible[nb] || faces[nb].deleted {
				continue
			}
			if faces[nb].plane.SignedDistance(points[eye]) > eps {
				visible[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return visible
}

// extractHorizon collects, for each visible face's edges, those whose
// neighbor is not visible (or absent): the horizon boundary, per
// spec.md §4.4 step 5c. The edge direction is reversed relative to the
// visible face so new eye-connected triangles wind outward.
func extractHorizon(faces []face, edges *edgeAdjacency, visible map[int]bool) []horizonEdge {
	var horizon []horizonEdge
	for fi := range visible {
		v := faces[fi].verts
		edgesOf := [3][2]int{{v[0], v[1]}, {v[1], v[2]}, {v[2], v[0]}}
		for _, e := range edgesOf {
			nb := edges.neighborAcross(e[0], e[1], fi)
			if nb < 0 || !visible[nb] {
				horizon = append(horizon, horizonEdge{a: e[1], b: e[0], neighbor: nb})
			}
		}
	}
	return horizon
}

// orderHorizon chains horizon edges by matching next.start == current.end
// until the loop closes, per spec.md §4.4 step 5d.
func orderHorizon(horizon []horizonEdge) ([]horizonEdge, bool) {
	if len(horizon) == 0 {
		return nil, false
	}
	byStart := make(map[int]int, len(horizon)) // start vertex -> horizon index
	for i, e := range horizon {
		byStart[e.a] = i
	}

	ordered := make([]horizonEdge, 0, len(horizon))
	current := horizon[0]
	ordered = append(ordered, current)
	for len(ordered) < len(horizon) {
		idx, ok := byStart[current.b]
		if !ok {
			return ordered, false
		}
		current = horizon[idx]
		ordered = append(ordered, current)
	}
	if len(ordered) != len(horizon) {
		return ordered, false
	}
	return ordered, true
}
