package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"ibvertex/geom"
)

func writeTemp(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(text), 0666))
	return path
}

func TestReadDiskJSON(t *testing.T) {
	path := writeTemp(t, "disks.json",
		`[{"x": 0.5, "y": -1, "r": 0.25}, {"x": 2, "y": 3, "r": 1}]`,
	)

	disks, err := ReadDiskFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []geom.Disk{{0.5, -1, 0.25}, {2, 3, 1}}, disks)
}

func TestReadDiskJSONErrors(t *testing.T) {
	for name, text := range map[string]string{
		"not_list":      `{"x": 1, "y": 2, "r": 3}`,
		"missing_field": `[{"x": 1, "y": 2}]`,
		"garbage":       `what`,
	} {
		_, err := ReadDiskJSON(writeTemp(t, name+".json", text))
		assert.Error(t, err, name)
	}
}

func TestReadDiskCSV(t *testing.T) {
	path := writeTemp(t, "disks.csv", "r,x,y,label\n0.25,0.5,-1,a\n1,2,3,b\n")

	disks, err := ReadDiskFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []geom.Disk{{0.5, -1, 0.25}, {2, 3, 1}}, disks)
}

func TestReadDiskCSVErrors(t *testing.T) {
	_, err := ReadDiskCSV(writeTemp(t, "no_r.csv", "x,y\n1,2\n"))
	assert.Error(t, err)

	_, err = ReadDiskCSV(writeTemp(t, "bad_row.csv", "x,y,r\n1,2,big\n"))
	assert.Error(t, err)
}

func TestReadDiskTable(t *testing.T) {
	path := writeTemp(t, "disks.txt",
		"# x y r\n0.5 -1.0 0.25\n2.0 3.0 1.0\n",
	)

	disks, err := ReadDiskFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []geom.Disk{{0.5, -1, 0.25}, {2, 3, 1}}, disks)
}

func TestReadDiskFileUnknownType(t *testing.T) {
	_, err := ReadDiskFile(writeTemp(t, "disks.yaml", "x: 1"))
	assert.Error(t, err)
}
