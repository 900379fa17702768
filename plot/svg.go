package plot

import (
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"ibvertex/geom"
)

// svgRender scatters the points into a standalone SVG. No external
// runtime is needed, which matters on cluster head nodes without
// matplotlib.
func svgRender(pts geom.PointSet, title, out string, opt Options) error {
	if opt.Width <= 0 || opt.Height <= 0 {
		return fmt.Errorf(
			"image size must be positive, got %d x %d", opt.Width, opt.Height,
		)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	x0, x1, y0, y1 := dataBounds(pts)
	w, h := opt.Width, opt.Height
	sx := func(x float64) int {
		return int((x - x0) / (x1 - x0) * float64(w))
	}
	// SVG y grows downward.
	sy := func(y float64) int {
		return h - int((y-y0)/(y1-y0)*float64(h))
	}

	r := opt.PointRadius
	if r < 1 {
		r = 1
	}

	canvas := svg.New(f)
	canvas.Start(w, h)
	canvas.Title(title)
	canvas.Rect(0, 0, w, h, "fill:white")
	canvas.Gstyle(fmt.Sprintf("fill:black;fill-opacity:%.3f", opt.Alpha))
	for _, p := range pts {
		canvas.Circle(sx(p.X), sy(p.Y), r)
	}
	canvas.Gend()
	canvas.End()

	return nil
}
