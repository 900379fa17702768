package plot

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ibvertex/geom"
	"ibvertex/io"
)

func TestThin(t *testing.T) {
	pts := make(geom.PointSet, 10)
	for i := range pts {
		pts[i] = geom.Point{X: float64(i)}
	}

	assert.Len(t, thin(pts, 1), 10)
	assert.Equal(t, geom.PointSet{{X: 0}, {X: 3}, {X: 6}, {X: 9}}, thin(pts, 3))
	assert.Len(t, thin(pts, 100), 1)
}

func TestSample(t *testing.T) {
	pts := make(geom.PointSet, 1000)
	for i := range pts {
		pts[i] = geom.Point{X: float64(i)}
	}

	rng := rand.New(rand.NewSource(42))
	out := sample(pts, 10, rng)
	assert.Len(t, out, 10)

	// Sampled points come from the input.
	for _, p := range out {
		assert.True(t, p.X >= 0 && p.X < 1000)
	}
}

func TestDataBounds(t *testing.T) {
	pts := geom.PointSet{{X: 0, Y: 0}, {X: 10, Y: 5}}
	x0, x1, y0, y1 := dataBounds(pts)
	assert.InDelta(t, -0.2, x0, 1e-12)
	assert.InDelta(t, 10.2, x1, 1e-12)
	assert.InDelta(t, -0.2, y0, 1e-12)
	assert.InDelta(t, 5.2, y1, 1e-12)
}

func TestRenderSVG(t *testing.T) {
	dir := t.TempDir()
	vertex := filepath.Join(dir, "disk.vertex")
	assert.NoError(t, io.WriteVertex(vertex, geom.PointSet{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
	}))

	opt := DefaultOptions()
	opt.Backend = "svg"
	out, err := opt.Render(vertex)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "disk.svg"), out)

	raw, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "<svg")
	assert.Equal(t, 3, strings.Count(string(raw), "<circle"))
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	vertex := filepath.Join(dir, "d.vertex")
	assert.NoError(t, io.WriteVertex(vertex, geom.PointSet{{X: 0, Y: 0}}))

	opt := DefaultOptions()
	opt.Backend = "gnuplot"
	_, err := opt.Render(vertex)
	assert.Error(t, err)

	opt = DefaultOptions()
	opt.Stride = 0
	_, err = opt.Render(vertex)
	assert.Error(t, err)

	opt = DefaultOptions()
	opt.Backend = "svg"
	_, err = opt.Render(filepath.Join(dir, "missing.vertex"))
	assert.Error(t, err)

	// Empty selection.
	empty := filepath.Join(dir, "empty.vertex")
	assert.NoError(t, io.WriteVertex(empty, geom.PointSet{}))
	opt = DefaultOptions()
	opt.Backend = "svg"
	_, err = opt.Render(empty)
	assert.Error(t, err)
}
