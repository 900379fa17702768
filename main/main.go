package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"ibvertex/geom"
	"ibvertex/io"
	"ibvertex/spacing"
)

// diskFlags collects repeated -Disk "x,y,r" arguments in order.
type diskFlags []geom.Disk

func (d *diskFlags) String() string { return fmt.Sprint(*d) }

func (d *diskFlags) Set(s string) error {
	vals, err := splitFloats(s, 3)
	if err != nil {
		return fmt.Errorf("-Disk expects 'x,y,r', got %q", s)
	}
	*d = append(*d, geom.Disk{X: vals[0], Y: vals[1], R: vals[2]})
	return nil
}

// rectFlags collects repeated -Rect "x,y,w,h" arguments in order.
type rectFlags []geom.Rect

func (r *rectFlags) String() string { return fmt.Sprint(*r) }

func (r *rectFlags) Set(s string) error {
	vals, err := splitFloats(s, 4)
	if err != nil {
		return fmt.Errorf("-Rect expects 'x,y,w,h', got %q", s)
	}
	*r = append(*r, geom.Rect{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]})
	return nil
}

func splitFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d fields", n)
	}
	vals := make([]float64, n)
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = x
	}
	return vals, nil
}

func main() {
	// The main function manages input sanitization and hands a validated
	// job to generate. Primitives come either from a config file or from
	// the flags directly, never both.

	var (
		disks       diskFlags
		rects       rectFlags
		diskFile    string
		centers     string
		sizes       string
		config      string
		exampleConf string

		out        string
		noRecenter bool
		split      bool
		archive    string

		in spacing.Inputs
	)

	flag.Var(&disks, "Disk",
		"Disk spec as 'x,y,r'. Repeat for multiple disks.")
	flag.Var(&rects, "Rect",
		"Rectangle spec as 'x,y,w,h'. Repeat for multiple rectangles.")
	flag.StringVar(&diskFile, "DiskFile", "",
		"Disk list in .json, .csv, or .txt (whitespace table) format.")
	flag.StringVar(&centers, "Centers", "",
		"Rectangle centers in a .npy array with shape (N, 2).")
	flag.StringVar(&sizes, "Sizes", "",
		"Rectangle sizes in a .npy array with shape (N,), (N, 1), or (N, 2).")
	flag.StringVar(&config, "Config", "",
		"Configuration file for [Generate] mode. Replaces the primitive "+
			"and spacing flags.")
	flag.StringVar(&exampleConf, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Generate'.")

	flag.StringVar(&out, "Out", "cylinder2d.vertex",
		"Output .vertex filename.")
	flag.BoolVar(&noRecenter, "NoRecenter", false,
		"Do not recenter each primitive's point cloud to remove the "+
			"discretization offset of its centroid.")
	flag.BoolVar(&split, "Split", false,
		"Also write per-primitive files next to -Out as out_0.vertex, "+
			"out_1.vertex, ...")
	flag.StringVar(&archive, "Archive", "",
		"Bundle every written file into this archive (.tar.gz, .zip, ...).")

	flag.Float64Var(&in.Dx, "Dx", 0,
		"Point lattice spacing in x.")
	flag.Float64Var(&in.Dy, "Dy", 0,
		"Point lattice spacing in y. Defaults to -Dx.")
	flag.Float64Var(&in.Lx, "Lx", 0,
		"Domain length in x. Used with -Nx as dx = Lx/Nx.")
	flag.Float64Var(&in.Ly, "Ly", 0,
		"Domain length in y. Used with -Ny as dy = Ly/Ny.")
	flag.StringVar(&in.Nx, "Nx", "",
		"Grid count in x. Supports simple expressions like '64*4*4*4*4'.")
	flag.StringVar(&in.Ny, "Ny", "",
		"Grid count in y. Supports simple expressions like '32*4*4*4*4'.")
	flag.StringVar(&in.Input2D, "Input2D", "",
		"Read dx/dy from a simulator input2d file (finest level spacing).")

	flag.Parse()

	directFlags := len(disks) > 0 || len(rects) > 0 ||
		diskFile != "" || centers != "" || sizes != ""

	switch {
	case exampleConf != "":
		if config != "" || directFlags {
			log.Fatal("-ExampleConfig cannot be combined with other flags.")
		}
		if exampleConf != "Generate" {
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only " +
					"recognized argument is 'Generate'.",
			)
		}
		fmt.Println(io.ExampleGenerateFile)

	case config != "":
		if directFlags {
			log.Fatal(
				"-Config replaces the primitive flags: remove -Disk, " +
					"-Rect, -DiskFile, -Centers, and -Sizes.",
			)
		}
		configMain(config)

	default:
		if !directFlags {
			log.Fatal(
				"No primitives specified. Use -Disk x,y,r or -Rect " +
					"x,y,w,h (repeatable), a batch file, or -Config.",
			)
		}
		if (centers == "") != (sizes == "") {
			log.Fatal("-Centers and -Sizes must be given together.")
		}

		prims := collect(disks, rects, diskFile, centers, sizes)

		sp, err := spacing.Resolve(in)
		if err != nil {
			log.Fatal(err.Error())
		}
		generate(prims, sp, out, !noRecenter, split, archive)
	}
}

// collect gathers primitives in input order: -Disk flags, then -DiskFile,
// then -Rect flags, then the -Centers/-Sizes pair.
func collect(
	disks diskFlags, rects rectFlags, diskFile, centers, sizes string,
) []geom.Primitive {
	prims := []geom.Primitive{}
	for _, d := range disks {
		prims = append(prims, d)
	}

	if diskFile != "" {
		fileDisks, err := io.ReadDiskFile(diskFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		for _, d := range fileDisks {
			prims = append(prims, d)
		}
	}

	for _, r := range rects {
		prims = append(prims, r)
	}

	if centers != "" {
		fileRects, err := io.ReadRectNpy(centers, sizes)
		if err != nil {
			log.Fatal(err.Error())
		}
		for _, r := range fileRects {
			prims = append(prims, r)
		}
	}

	return prims
}

// configMain runs a generation job described by a gcfg config file.
func configMain(config string) {
	wrap, err := io.ReadGenerateConfig(config)
	if err != nil {
		log.Fatal(err.Error())
	}

	prims, err := wrap.Primitives()
	if err != nil {
		log.Fatal(err.Error())
	}

	sp, err := spacing.Resolve(wrap.Generate.SpacingInputs())
	if err != nil {
		log.Fatal(err.Error())
	}

	con := &wrap.Generate
	generate(prims, sp, con.Output, !con.NoRecenter, con.Split, con.Archive)
}

// generate rasterizes every primitive at the resolved spacing and writes
// the output files.
func generate(
	prims []geom.Primitive, sp spacing.Spacing,
	out string, recenter, split bool, archive string,
) {
	log.Printf("Spacing: dx=%g, dy=%g (%s mode).", sp.Dx, sp.Dy, sp.Mode)

	sets := make([]geom.PointSet, len(prims))
	for i, prim := range prims {
		pts, err := prim.Points(sp.Dx, sp.Dy)
		if err != nil {
			log.Fatal(err.Error())
		}
		if recenter {
			c := prim.Center()
			pts.Recenter(c.X, c.Y)
		}
		sets[i] = pts
	}

	files, total, err := io.WriteAll(out, sets, split)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %s (%d points from %d primitives).",
		out, total, len(prims))

	if archive != "" {
		if err := io.ArchiveOutputs(archive, files); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Archived %d files into %s.", len(files), archive)
	}
}
