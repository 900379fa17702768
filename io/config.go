package io

import (
	"fmt"
	"sort"

	"gopkg.in/gcfg.v1"

	"ibvertex/geom"
	"ibvertex/spacing"
)

const (
	ExampleGenerateFile = `[Generate]

#######################
# Required Parameters #
#######################

# The combined .vertex file that the simulator will read.
Output = cylinder2d.vertex

###########
# Spacing #
###########

# Spacing comes from exactly one of the following three groups. Supplying
# values from more than one group is an error. If none is given, the
# default spacing of 1/512 is used for both axes.

# Group 1: explicit lattice spacing. Dy defaults to Dx.
# Dx = 0.001953125
# Dy = 0.001953125

# Group 2: domain lengths and grid counts, dx = Lx/Nx. The counts may be
# simple arithmetic expressions.
# Lx = 16.0
# Ly = 8.0
# Nx = 64*4*4*4*4
# Ny = 32*4*4*4*4

# Group 3: read the finest-level spacing from a simulator input2d file.
# Input2D = path/to/input2d

#######################
# Optional Parameters #
#######################

# Primitives can be listed inline (see the Disk/Rect sections below) or
# loaded from batch files, in any combination.
# DiskFile = disks.json            # .json, .csv, or .txt
# CentersFile = centers.npy        # rectangle centers, shape (N, 2)
# SizesFile = sizes.npy            # rectangle sizes, (N,), (N, 1) or (N, 2)

# By default each primitive's point cloud is shifted so its discrete
# centroid lands exactly on the requested center. Set NoRecenter to keep
# the raw lattice samples instead.
# NoRecenter = true

# Also write one file per primitive next to Output, named out_0.vertex,
# out_1.vertex, and so on.
# Split = true

# Bundle every written file into an archive for transfer to the cluster.
# Archive = run.tar.gz

[Disk "cyl_0"]
X = 0.0
Y = 0.0
R = 0.5

# [Rect "plate_0"]
# X = 4.0
# Y = 0.0
# Width  = 0.2
# Height = 2.0`
)

type GenerateConfig struct {
	// Required
	Output string

	// Spacing: at most one group may be set.
	Dx, Dy  float64
	Lx, Ly  float64
	Nx, Ny  string
	Input2D string

	// Optional
	DiskFile    string
	CentersFile string
	SizesFile   string
	NoRecenter  bool
	Split       bool
	Archive     string
}

func (con *GenerateConfig) ValidOutput() bool {
	return con.Output != ""
}

func (con *GenerateConfig) ValidNpyPair() bool {
	return (con.CentersFile == "") == (con.SizesFile == "")
}

// SpacingInputs maps the config's spacing fields onto the resolver's
// input struct; Resolve does the mode and conflict checking.
func (con *GenerateConfig) SpacingInputs() spacing.Inputs {
	return spacing.Inputs{
		Dx: con.Dx, Dy: con.Dy,
		Lx: con.Lx, Ly: con.Ly,
		Nx: con.Nx, Ny: con.Ny,
		Input2D: con.Input2D,
	}
}

type DiskConfig struct {
	X, Y, R float64
	Name    string
}

func (d *DiskConfig) CheckInit(name string) error {
	if d.R <= 0 {
		return fmt.Errorf(
			"Need to specify a positive R for Disk '%s'.", name,
		)
	}
	d.Name = name
	return nil
}

type RectConfig struct {
	X, Y          float64
	Width, Height float64
	Name          string
}

func (r *RectConfig) CheckInit(name string) error {
	if r.Width <= 0 {
		return fmt.Errorf(
			"Need to specify a positive Width for Rect '%s'.", name,
		)
	}
	if r.Height <= 0 {
		return fmt.Errorf(
			"Need to specify a positive Height for Rect '%s'.", name,
		)
	}
	r.Name = name
	return nil
}

type GenerateWrapper struct {
	Generate GenerateConfig
	Disk     map[string]*DiskConfig
	Rect     map[string]*RectConfig
}

func DefaultGenerateWrapper() *GenerateWrapper {
	con := GenerateConfig{}
	con.Output = "cylinder2d.vertex"
	return &GenerateWrapper{Generate: con}
}

// ReadGenerateConfig parses and validates a [Generate] config file.
func ReadGenerateConfig(fname string) (*GenerateWrapper, error) {
	wrap := DefaultGenerateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}

	if !wrap.Generate.ValidOutput() {
		return nil, fmt.Errorf("Invalid/non-existent 'Output' value.")
	}
	if !wrap.Generate.ValidNpyPair() {
		return nil, fmt.Errorf(
			"'CentersFile' and 'SizesFile' must be given together.",
		)
	}

	for name, disk := range wrap.Disk {
		if err := disk.CheckInit(name); err != nil {
			return nil, err
		}
	}
	for name, rect := range wrap.Rect {
		if err := rect.CheckInit(name); err != nil {
			return nil, err
		}
	}
	return wrap, nil
}

// Primitives flattens the config into rasterizable primitives. gcfg
// returns sections as maps, so inline disks come first sorted by name,
// then inline rects, then batch-file primitives in file order.
func (wrap *GenerateWrapper) Primitives() ([]geom.Primitive, error) {
	prims := []geom.Primitive{}

	names := make([]string, 0, len(wrap.Disk))
	for name := range wrap.Disk {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d := wrap.Disk[name]
		prims = append(prims, geom.Disk{X: d.X, Y: d.Y, R: d.R})
	}

	names = names[:0]
	for name := range wrap.Rect {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r := wrap.Rect[name]
		prims = append(prims, geom.Rect{
			X: r.X, Y: r.Y, W: r.Width, H: r.Height,
		})
	}

	if wrap.Generate.DiskFile != "" {
		disks, err := ReadDiskFile(wrap.Generate.DiskFile)
		if err != nil {
			return nil, err
		}
		for _, d := range disks {
			prims = append(prims, d)
		}
	}
	if wrap.Generate.CentersFile != "" {
		rects, err := ReadRectNpy(
			wrap.Generate.CentersFile, wrap.Generate.SizesFile,
		)
		if err != nil {
			return nil, err
		}
		for _, r := range rects {
			prims = append(prims, r)
		}
	}

	if len(prims) == 0 {
		return nil, fmt.Errorf(
			"No primitives specified. Add [Disk \"name\"] or [Rect \"name\"] " +
				"sections or a batch file.",
		)
	}
	return prims, nil
}
