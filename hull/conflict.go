package hull

import "github.com/katalvlaran/geomkernel/shapes"

// assignConflict assigns point i to the active face that sees it with
// the largest positive signed distance exceeding eps; interior points
// are dropped, per spec.md §4.4 step 3.
func assignConflict(points []shapes.Vec3, faces []face, i int, eps float64) {
	best := -1
	bestDist := eps
	for fi := range faces {
		if faces[fi].deleted {
			continue
		}
		d := faces[fi].plane.SignedDistance(points[i])
		if d > bestDist {
			bestDist = d
			best = fi
		}
	}
	if best >= 0 {
		faces[best].conflict = append(faces[best].conflict, i)
		if faces[best].distTo == nil {
			faces[best].distTo = make(map[int]float64)
		}
		faces[best].distTo[i] = bestDist
	}
}

// redistribute assigns every orphaned point to whichever of newFaces
// sees it with the largest positive signed distance above eps.
func redistribute(points []shapes.Vec3, faces []face, newFaces []int, orphans []int, eps float64) {
	for _, p := range orphans {
		best := -1
		bestDist := eps
		for _, fi := range newFaces {
			d := faces[fi].plane.SignedDistance(points[p])
			if d > bestDist {
				bestDist = d
				best = fi
			}
		}
		if best >= 0 {
			faces[best].conflict = append(faces[best].conflict, p)
			if faces[best].distTo == nil {
				faces[best].distTo = make(map[int]float64)
			}
			faces[best].distTo[p] = bestDist
		}
	}
}

// pickEyePoint scans active faces' conflict lists for the globally
// farthest point, returning its owning (seed) face and its index, or
// (-1,-1) if every conflict list is empty, per spec.md §4.4 step 5a.
func pickEyePoint(faces []face) (seedFace, eye int) {
	seedFace, eye = -1, -1
	bestDist := 0.0
	for fi := range faces {
		if faces[fi].deleted {
			continue
		}
		for _, p := range faces[fi].conflict {
			d := faces[fi].distTo[p]
			if d > bestDist {
				bestDist = d
				seedFace = fi
				eye = p
			}
		}
	}
	return seedFace, eye
}
