package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sbinet/npyio"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"ibvertex/geom"
)

func writeNpy(t *testing.T, dir, name string, v interface{}) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	assert.NoError(t, err)
	defer f.Close()
	assert.NoError(t, npyio.Write(f, v))
	return path
}

func TestReadRectNpy(t *testing.T) {
	dir := t.TempDir()
	centers := writeNpy(t, dir, "centers.npy", mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	}))
	sizes := writeNpy(t, dir, "sizes.npy", mat.NewDense(2, 2, []float64{
		0.5, 0.25,
		1, 2,
	}))

	rects, err := ReadRectNpy(centers, sizes)
	assert.NoError(t, err)
	assert.Equal(t, []geom.Rect{
		{X: 1, Y: 2, W: 0.5, H: 0.25},
		{X: 3, Y: 4, W: 1, H: 2},
	}, rects)
}

func TestReadRectNpyScalarSizes(t *testing.T) {
	dir := t.TempDir()
	centers := writeNpy(t, dir, "centers.npy", mat.NewDense(2, 2, []float64{
		0, 0,
		5, 5,
	}))
	// 1-D sizes: w x w squares.
	sizes := writeNpy(t, dir, "sizes.npy", []float64{0.5, 1.5})

	rects, err := ReadRectNpy(centers, sizes)
	assert.NoError(t, err)
	assert.Equal(t, []geom.Rect{
		{X: 0, Y: 0, W: 0.5, H: 0.5},
		{X: 5, Y: 5, W: 1.5, H: 1.5},
	}, rects)
}

func TestReadRectNpyFloat32(t *testing.T) {
	dir := t.TempDir()
	centers := writeNpy(t, dir, "centers.npy", mat.NewDense(1, 2, []float64{
		1, 2,
	}))
	sizes := writeNpy(t, dir, "sizes.npy", []float32{0.5})

	rects, err := ReadRectNpy(centers, sizes)
	assert.NoError(t, err)
	assert.Len(t, rects, 1)
	assert.InDelta(t, 0.5, rects[0].W, 1e-7)
}

func TestReadRectNpyErrors(t *testing.T) {
	dir := t.TempDir()
	centers := writeNpy(t, dir, "centers.npy", mat.NewDense(2, 2, []float64{
		0, 0,
		5, 5,
	}))

	// Length mismatch between the paired files.
	short := writeNpy(t, dir, "short.npy", []float64{0.5})
	_, err := ReadRectNpy(centers, short)
	assert.Error(t, err)

	// Centers must be (N, 2).
	thin := writeNpy(t, dir, "thin.npy", mat.NewDense(2, 1, []float64{1, 2}))
	sizes := writeNpy(t, dir, "sizes.npy", []float64{0.5, 0.5})
	_, err = ReadRectNpy(thin, sizes)
	assert.Error(t, err)

	// 1-D centers are not a coordinate list.
	flat := writeNpy(t, dir, "flat.npy", []float64{1, 2, 3, 4})
	_, err = ReadRectNpy(flat, sizes)
	assert.Error(t, err)

	// Not a .npy file at all.
	junk := filepath.Join(dir, "junk.npy")
	assert.NoError(t, os.WriteFile(junk, []byte("junk"), 0666))
	_, err = ReadRectNpy(junk, sizes)
	assert.Error(t, err)
}
