/*package plot renders .vertex point clouds to image files, either through
matplotlib (the pyplot backend) or as a self-contained SVG.
*/
package plot

import (
	"fmt"
	"math"
	"math/rand"
	"path/filepath"
	"strings"

	"ibvertex/geom"
	"ibvertex/io"
)

// Options controls how a vertex file is rendered.
type Options struct {
	// Backend is "pyplot" or "svg".
	Backend string
	// Out is the image path. Empty means the vertex path with the
	// backend's extension.
	Out   string
	Title string

	// Stride keeps every Nth point; 1 keeps all.
	Stride int
	// MaxPoints randomly samples down to this many points; 0 disables.
	MaxPoints int
	Seed      int64

	// SVG knobs.
	Width, Height int
	PointRadius   int
	Alpha         float64
}

// DefaultOptions are sized for a quick look at a generated obstacle file.
func DefaultOptions() Options {
	return Options{
		Backend:   "pyplot",
		Stride:    1,
		MaxPoints: 200000,
		Width:     1200, Height: 700,
		PointRadius: 1,
		Alpha:       0.6,
	}
}

// Render loads the vertex file at path and renders it with the configured
// backend, returning the image path written.
func (opt Options) Render(path string) (string, error) {
	if opt.Stride < 1 {
		return "", fmt.Errorf("'Stride' must be >= 1, got %d", opt.Stride)
	}
	if opt.MaxPoints < 0 {
		return "", fmt.Errorf(
			"'MaxPoints' must be >= 0, got %d", opt.MaxPoints,
		)
	}

	pts, err := io.ReadVertex(path)
	if err != nil {
		return "", err
	}
	pts = thin(pts, opt.Stride)
	if opt.MaxPoints > 0 && len(pts) > opt.MaxPoints {
		pts = sample(pts, opt.MaxPoints, rand.New(rand.NewSource(opt.Seed)))
	}
	if len(pts) == 0 {
		return "", fmt.Errorf("no points to plot in %s", path)
	}

	title := opt.Title
	if title == "" {
		title = filepath.Base(path)
	}

	switch opt.Backend {
	case "pyplot":
		out := opt.outPath(path, ".png")
		return out, pyplotRender(pts, title, out)
	case "svg":
		out := opt.outPath(path, ".svg")
		return out, svgRender(pts, title, out, opt)
	}
	return "", fmt.Errorf(
		"unknown backend '%s': must be 'pyplot' or 'svg'", opt.Backend,
	)
}

func (opt Options) outPath(vertexPath, ext string) string {
	if opt.Out != "" {
		return opt.Out
	}
	base := strings.TrimSuffix(vertexPath, filepath.Ext(vertexPath))
	return base + ext
}

// thin keeps every stride-th point.
func thin(pts geom.PointSet, stride int) geom.PointSet {
	if stride == 1 {
		return pts
	}
	out := make(geom.PointSet, 0, len(pts)/stride+1)
	for i := 0; i < len(pts); i += stride {
		out = append(out, pts[i])
	}
	return out
}

// sample reservoir-samples k points, preserving nothing about order but
// giving every point equal probability.
func sample(pts geom.PointSet, k int, rng *rand.Rand) geom.PointSet {
	out := make(geom.PointSet, k)
	copy(out, pts[:k])
	for i := k; i < len(pts); i++ {
		j := rng.Intn(i + 1)
		if j < k {
			out[j] = pts[i]
		}
	}
	return out
}

// dataBounds returns the point bounds padded by 2% of the larger span.
func dataBounds(pts geom.PointSet) (x0, x1, y0, y1 float64) {
	x0, y0 = math.Inf(1), math.Inf(1)
	x1, y1 = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		x0, x1 = math.Min(x0, p.X), math.Max(x1, p.X)
		y0, y1 = math.Min(y0, p.Y), math.Max(y1, p.Y)
	}
	pad := 0.02 * math.Max(math.Max(x1-x0, y1-y0), 1.0)
	return x0 - pad, x1 + pad, y0 - pad, y1 + pad
}
