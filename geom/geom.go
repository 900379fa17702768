/*package geom contains the primitive shapes that ibvertex rasterizes into
point clouds, along with the point-set operations applied to the result.
*/
package geom

// Point is a single 2D sample position.
type Point struct {
	X, Y float64
}

// PointSet is an ordered sequence of points generated from one primitive.
type PointSet []Point

// Primitive is a shape that can be rasterized onto a lattice with pitch
// (dx, dy). The lattice is anchored at the shape's nominal center, so
// rasterization is deterministic and restartable: the same primitive and
// spacing always produce the same ordered sequence.
type Primitive interface {
	Center() Point
	Points(dx, dy float64) (PointSet, error)
}

// Centroid returns the arithmetic mean of the points, i.e. the discrete
// center of mass of a uniformly weighted point cloud.
func (ps PointSet) Centroid() Point {
	var sx, sy float64
	for _, p := range ps {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(ps))
	return Point{sx / n, sy / n}
}

// Translate shifts every point by (dx, dy) in place.
func (ps PointSet) Translate(dx, dy float64) {
	for i := range ps {
		ps[i].X += dx
		ps[i].Y += dy
	}
}

// Recenter translates the set so its centroid lands exactly on (cx, cy).
// Lattice sampling of a continuous shape does not generally put the
// discrete centroid at the shape's analytic center, and the simulator's
// accuracy depends on the two matching. Point count and pairwise offsets
// are preserved.
func (ps PointSet) Recenter(cx, cy float64) {
	if len(ps) == 0 {
		return
	}
	c := ps.Centroid()
	ps.Translate(cx-c.X, cy-c.Y)
}
