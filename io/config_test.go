package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"ibvertex/geom"
	"ibvertex/spacing"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "generate.ini")
	assert.NoError(t, os.WriteFile(path, []byte(text), 0666))
	return path
}

func TestReadGenerateConfig(t *testing.T) {
	path := writeConfig(t, `
[Generate]
Output = run.vertex
Lx = 1.0
Ly = 1.0
Nx = 4
Ny = 4
Split = true

[Disk "b"]
X = 1.0
Y = 0.0
R = 0.5

[Disk "a"]
X = -1.0
Y = 0.0
R = 0.5

[Rect "plate"]
X = 0.0
Y = 2.0
Width = 0.4
Height = 0.2
`)

	wrap, err := ReadGenerateConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "run.vertex", wrap.Generate.Output)
	assert.True(t, wrap.Generate.Split)

	sp, err := spacing.Resolve(wrap.Generate.SpacingInputs())
	assert.NoError(t, err)
	assert.InDelta(t, 0.25, sp.Dx, 1e-15)

	prims, err := wrap.Primitives()
	assert.NoError(t, err)
	// Disks sorted by section name, then rects.
	assert.Equal(t, []geom.Primitive{
		geom.Disk{X: -1, Y: 0, R: 0.5},
		geom.Disk{X: 1, Y: 0, R: 0.5},
		geom.Rect{X: 0, Y: 2, W: 0.4, H: 0.2},
	}, prims)
}

func TestReadGenerateConfigExample(t *testing.T) {
	// The shipped example must stay parseable.
	wrap, err := ReadGenerateConfig(writeConfig(t, ExampleGenerateFile))
	assert.NoError(t, err)

	prims, err := wrap.Primitives()
	assert.NoError(t, err)
	assert.Equal(t, []geom.Primitive{geom.Disk{X: 0, Y: 0, R: 0.5}}, prims)
}

func TestReadGenerateConfigErrors(t *testing.T) {
	// Bad disk section.
	_, err := ReadGenerateConfig(writeConfig(t, `
[Generate]
Output = run.vertex

[Disk "zero"]
X = 0.0
Y = 0.0
R = 0.0
`))
	assert.Error(t, err)

	// Half an npy pair.
	_, err = ReadGenerateConfig(writeConfig(t, `
[Generate]
Output = run.vertex
CentersFile = centers.npy
`))
	assert.Error(t, err)

	// No primitives at all.
	wrap, err := ReadGenerateConfig(writeConfig(t, `
[Generate]
Output = run.vertex
`))
	assert.NoError(t, err)
	_, err = wrap.Primitives()
	assert.Error(t, err)
}

func TestReadGenerateConfigDefaults(t *testing.T) {
	wrap, err := ReadGenerateConfig(writeConfig(t, `
[Disk "d"]
X = 0.0
Y = 0.0
R = 1.0
`))
	assert.NoError(t, err)
	assert.Equal(t, "cylinder2d.vertex", wrap.Generate.Output)

	sp, err := spacing.Resolve(wrap.Generate.SpacingInputs())
	assert.NoError(t, err)
	assert.Equal(t, spacing.Default, sp.Mode)
}
