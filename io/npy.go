package io

import (
	"fmt"
	"os"
	"strings"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"ibvertex/geom"
)

// ReadRectNpy builds rectangles from a pair of .npy arrays: centers with
// shape (N, 2) (extra columns are ignored) and sizes with shape (N,),
// (N, 1), or (N, 2). A one-column size w means a w x w square.
func ReadRectNpy(centersPath, sizesPath string) ([]geom.Rect, error) {
	centers, err := readNpyMatrix(centersPath)
	if err != nil {
		return nil, err
	}
	rows, cols := centers.Dims()
	if cols < 2 {
		return nil, fmt.Errorf(
			"%s: centers must have shape (N, 2), got %d columns",
			centersPath, cols,
		)
	}

	sizes, shape, err := readNpy(sizesPath)
	if err != nil {
		return nil, err
	}
	widths, heights, err := sizesColumns(sizes, shape, sizesPath)
	if err != nil {
		return nil, err
	}
	if len(widths) != rows {
		return nil, fmt.Errorf(
			"length mismatch between %s and %s: %d centers, %d sizes",
			centersPath, sizesPath, rows, len(widths),
		)
	}

	rects := make([]geom.Rect, rows)
	for i := range rects {
		rects[i] = geom.Rect{
			X: centers.At(i, 0), Y: centers.At(i, 1),
			W: widths[i], H: heights[i],
		}
	}
	return rects, nil
}

// readNpyMatrix reads a 2-D .npy array into a gonum matrix.
func readNpyMatrix(path string) (*mat.Dense, error) {
	data, shape, err := readNpy(path)
	if err != nil {
		return nil, err
	}
	if len(shape) != 2 {
		return nil, fmt.Errorf(
			"%s must be a 2-D array, got shape %v", path, shape,
		)
	}
	return mat.NewDense(shape[0], shape[1], data), nil
}

// readNpy reads a numeric .npy file of any supported element type into a
// float64 slice in C order, along with its shape.
func readNpy(path string) ([]float64, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, nil, fmt.Errorf("not a .npy file: %s: %s", path, err.Error())
	}
	if r.Header.Descr.Fortran {
		return nil, nil, fmt.Errorf(
			"%s is Fortran-ordered, which is not supported", path,
		)
	}

	shape := r.Header.Descr.Shape
	if len(shape) == 0 {
		shape = []int{1}
	}

	dtype := r.Header.Descr.Type
	var data []float64
	switch {
	case strings.HasSuffix(dtype, "f8"):
		if err := r.Read(&data); err != nil {
			return nil, nil, err
		}
	case strings.HasSuffix(dtype, "f4"):
		var f32s []float32
		if err := r.Read(&f32s); err != nil {
			return nil, nil, err
		}
		data = make([]float64, len(f32s))
		for i, v := range f32s {
			data[i] = float64(v)
		}
	case strings.HasSuffix(dtype, "i8"):
		var i64s []int64
		if err := r.Read(&i64s); err != nil {
			return nil, nil, err
		}
		data = make([]float64, len(i64s))
		for i, v := range i64s {
			data[i] = float64(v)
		}
	case strings.HasSuffix(dtype, "i4"):
		var i32s []int32
		if err := r.Read(&i32s); err != nil {
			return nil, nil, err
		}
		data = make([]float64, len(i32s))
		for i, v := range i32s {
			data[i] = float64(v)
		}
	default:
		return nil, nil, fmt.Errorf(
			"%s has unsupported dtype %q", path, dtype,
		)
	}

	count := 1
	for _, s := range shape {
		count *= s
	}
	if len(data) != count {
		return nil, nil, fmt.Errorf(
			"%s: shape %v implies %d values but %d are present",
			path, shape, count, len(data),
		)
	}
	return data, shape, nil
}

// sizesColumns expands the accepted size shapes into per-rectangle widths
// and heights.
func sizesColumns(
	data []float64, shape []int, path string,
) (widths, heights []float64, err error) {
	switch {
	case len(shape) == 1:
		return data, data, nil
	case len(shape) == 2 && shape[1] == 1:
		return data, data, nil
	case len(shape) == 2 && shape[1] >= 2:
		widths = make([]float64, shape[0])
		heights = make([]float64, shape[0])
		for i := range widths {
			widths[i] = data[i*shape[1]]
			heights[i] = data[i*shape[1]+1]
		}
		return widths, heights, nil
	}
	return nil, nil, fmt.Errorf(
		"%s: sizes must have shape (N,), (N, 1), or (N, 2), got %v",
		path, shape,
	)
}
