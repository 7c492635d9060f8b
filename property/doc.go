// Package property is the storage substrate for the halfedge mesh's
// connectivity (see package mesh): named, typed, parallel columns indexed
// by handle integers, with resize/swap/truncate operations that the mesh
// builds on.
package property
