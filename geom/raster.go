package geom

import (
	"fmt"
	"math"
)

// rasterEps absorbs floating-point error in the boundary tests so that
// points landing exactly on a shape's edge are included.
const rasterEps = 1e-9

// Disk is a filled circle ("cylinder" in the simulator's 2D inputs).
type Disk struct {
	X, Y, R float64
}

// Rect is a filled axis-aligned rectangle given by center and full size.
type Rect struct {
	X, Y, W, H float64
}

func (d Disk) Center() Point { return Point{d.X, d.Y} }

func (r Rect) Center() Point { return Point{r.X, r.Y} }

// Points enumerates every lattice point (d.X + i*dx, d.Y + j*dy) with
// Euclidean distance at most R from the center, boundary inclusive.
// Order: ascending i outer, ascending j inner.
func (d Disk) Points(dx, dy float64) (PointSet, error) {
	if d.R <= 0 {
		return nil, fmt.Errorf(
			"disk at (%g, %g) has non-positive radius %g", d.X, d.Y, d.R,
		)
	}
	if err := checkSpacing(dx, dy); err != nil {
		return nil, err
	}

	iMax := latticeSteps(d.R, dx)
	jMax := latticeSteps(d.R, dy)
	rr := d.R * d.R * (1 + rasterEps)

	pts := PointSet{}
	for i := -iMax; i <= iMax; i++ {
		x := float64(i) * dx
		for j := -jMax; j <= jMax; j++ {
			y := float64(j) * dy
			if x*x+y*y <= rr {
				pts = append(pts, Point{d.X + x, d.Y + y})
			}
		}
	}
	return pts, nil
}

// Points enumerates every lattice point (r.X + i*dx, r.Y + j*dy) within
// the rectangle's half-width and half-height, each bound tested
// independently and inclusively. Order matches Disk.Points.
func (r Rect) Points(dx, dy float64) (PointSet, error) {
	if r.W <= 0 || r.H <= 0 {
		return nil, fmt.Errorf(
			"rectangle at (%g, %g) has non-positive size %g x %g",
			r.X, r.Y, r.W, r.H,
		)
	}
	if err := checkSpacing(dx, dy); err != nil {
		return nil, err
	}

	iMax := latticeSteps(r.W/2, dx)
	jMax := latticeSteps(r.H/2, dy)

	pts := make(PointSet, 0, (2*iMax+1)*(2*jMax+1))
	for i := -iMax; i <= iMax; i++ {
		for j := -jMax; j <= jMax; j++ {
			pts = append(pts, Point{
				r.X + float64(i)*dx, r.Y + float64(j)*dy,
			})
		}
	}
	return pts, nil
}

// latticeSteps returns the largest i such that i*pitch <= halfWidth, up to
// floating-point epsilon.
func latticeSteps(halfWidth, pitch float64) int {
	return int(math.Floor(halfWidth/pitch + rasterEps))
}

func checkSpacing(dx, dy float64) error {
	if dx <= 0 || dy <= 0 {
		return fmt.Errorf("spacing must be positive, got dx=%g, dy=%g", dx, dy)
	}
	return nil
}
