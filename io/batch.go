package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/phil-mansfield/table"

	"ibvertex/geom"
)

// ReadDiskFile reads a disk batch file, dispatching on the extension:
// .json, .csv, or .txt (whitespace table).
func ReadDiskFile(path string) ([]geom.Disk, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadDiskJSON(path)
	case ".csv":
		return ReadDiskCSV(path)
	case ".txt":
		return ReadDiskTable(path)
	}
	return nil, fmt.Errorf(
		"unsupported disk file type '%s': use .json, .csv, or .txt",
		filepath.Ext(path),
	)
}

// ReadDiskJSON reads a JSON array of objects with numeric x, y, and r
// fields.
func ReadDiskJSON(path string) ([]geom.Disk, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	specs := []struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
		R *float64 `json:"r"`
	}{}
	if err := json.Unmarshal(raw, &specs); err != nil {
		return nil, fmt.Errorf(
			"%s must be a JSON list of {\"x\": .., \"y\": .., \"r\": ..} "+
				"objects: %s", path, err.Error(),
		)
	}

	disks := make([]geom.Disk, len(specs))
	for i, s := range specs {
		if s.X == nil || s.Y == nil || s.R == nil {
			return nil, fmt.Errorf(
				"JSON item %d in %s is missing one of the x, y, r fields",
				i, path,
			)
		}
		disks[i] = geom.Disk{X: *s.X, Y: *s.Y, R: *s.R}
	}
	return disks, nil
}

// ReadDiskCSV reads a CSV file whose header row names x, y, and r columns
// in any order. Extra columns are ignored.
func ReadDiskCSV(path string) ([]geom.Disk, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed CSV in %s: %s", path, err.Error())
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s has no header row", path)
	}

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var idx [3]int
	for i, name := range []string{"x", "y", "r"} {
		j, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("%s is missing an '%s' column", path, name)
		}
		idx[i] = j
	}

	disks := make([]geom.Disk, 0, len(rows)-1)
	for n, row := range rows[1:] {
		var vals [3]float64
		for i, j := range idx {
			if j >= len(row) {
				return nil, fmt.Errorf("bad CSV row %d in %s", n, path)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[j]), 64)
			if err != nil {
				return nil, fmt.Errorf(
					"bad CSV row %d in %s: %q is not a number",
					n, path, row[j],
				)
			}
			vals[i] = v
		}
		disks = append(disks, geom.Disk{X: vals[0], Y: vals[1], R: vals[2]})
	}
	return disks, nil
}

// ReadDiskTable reads a whitespace-delimited table with x, y, r columns
// and '#' comment lines, the same layout halo catalogs use.
func ReadDiskTable(path string) ([]geom.Disk, error) {
	cols, err := table.ReadTable(path, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, err
	}

	xs, ys, rs := cols[0], cols[1], cols[2]
	disks := make([]geom.Disk, len(xs))
	for i := range xs {
		disks[i] = geom.Disk{X: xs[i], Y: ys[i], R: rs[i]}
	}
	return disks, nil
}
