/*package io reads and writes the file formats surrounding vertex
generation: the simulator's .vertex point-cloud format, the batch formats
primitives can be listed in (JSON, CSV, whitespace tables, .npy pairs),
and the gcfg run-configuration files.
*/
package io

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ibvertex/geom"
)

// WriteVertex writes a point set to path in the simulator's .vertex
// format: a count header line followed by one tab-separated coordinate
// pair per line at nine decimal places.
func WriteVertex(path string, pts geom.PointSet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", len(pts))
	for _, p := range pts {
		fmt.Fprintf(w, "%.9f\t%.9f\n", p.X, p.Y)
	}
	return w.Flush()
}

// ReadVertex reads a .vertex file back into a point set. Lines with a
// third (z) column are accepted and projected onto x, y.
func ReadVertex(path string) (geom.PointSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, fmt.Errorf("%s is empty", path)
	}
	head := strings.Fields(sc.Text())
	if len(head) == 0 {
		return nil, fmt.Errorf("first line of %s must be a point count", path)
	}
	n, err := strconv.Atoi(head[0])
	if err != nil || n < 0 {
		return nil, fmt.Errorf(
			"first line of %s must be a point count, got %q", path, head[0],
		)
	}

	pts := make(geom.PointSet, 0, n)
	for len(pts) < n && sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("bad point line in %s: %q", path, sc.Text())
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("bad point line in %s: %q", path, sc.Text())
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad point line in %s: %q", path, sc.Text())
		}
		pts = append(pts, geom.Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(pts) != n {
		return nil, fmt.Errorf(
			"%s header promises %d points but only %d are present",
			path, n, len(pts),
		)
	}
	return pts, nil
}

// SplitName derives the per-primitive output name for index i:
// "plate.vertex" becomes "plate_2.vertex" for i = 2.
func SplitName(out string, i int) string {
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(out, ext), i, ext)
}

// WriteAll writes the combined vertex file at out and, when split is set,
// one derived per-primitive file per set. It returns every path written
// (combined file first) and the total point count. The total always equals
// the sum of the per-set counts.
func WriteAll(
	out string, sets []geom.PointSet, split bool,
) (files []string, total int, err error) {
	all := geom.PointSet{}
	files = []string{out}

	for i, pts := range sets {
		if split {
			name := SplitName(out, i)
			if err := WriteVertex(name, pts); err != nil {
				return nil, 0, err
			}
			files = append(files, name)
		}
		all = append(all, pts...)
	}

	if err := WriteVertex(out, all); err != nil {
		return nil, 0, err
	}
	return files, len(all), nil
}
