package main

import (
	"flag"
	"log"

	"ibvertex/plot"
)

func main() {
	opt := plot.DefaultOptions()

	flag.StringVar(&opt.Backend, "Backend", opt.Backend,
		"Plot backend: 'pyplot' (needs Python with matplotlib) or 'svg' "+
			"(no dependencies).")
	flag.StringVar(&opt.Out, "Out", "",
		"Output image path. Default is the vertex file with a .png or "+
			".svg extension.")
	flag.StringVar(&opt.Title, "Title", "",
		"Plot title. Default is the vertex file's name.")
	flag.IntVar(&opt.Stride, "Stride", opt.Stride,
		"Keep every Nth point (1 keeps all).")
	flag.IntVar(&opt.MaxPoints, "MaxPoints", opt.MaxPoints,
		"Randomly sample down to this many points; 0 disables sampling.")
	flag.Int64Var(&opt.Seed, "Seed", 0,
		"Random seed for sampling.")
	flag.IntVar(&opt.Width, "Width", opt.Width,
		"SVG width in pixels.")
	flag.IntVar(&opt.Height, "Height", opt.Height,
		"SVG height in pixels.")
	flag.IntVar(&opt.PointRadius, "PointRadius", opt.PointRadius,
		"SVG point radius in pixels.")
	flag.Float64Var(&opt.Alpha, "Alpha", opt.Alpha,
		"SVG marker opacity.")

	flag.Parse()

	if len(flag.Args()) != 1 {
		log.Fatal("Must supply exactly one .vertex file.")
	}

	out, err := opt.Render(flag.Args()[0])
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %s.", out)
}
