package plot

import (
	plt "github.com/phil-mansfield/pyplot"

	"ibvertex/geom"
)

// pyplotRender scatters the points through matplotlib. pyplot buffers the
// calls and runs them as a Python script on Execute, so this requires a
// Python with matplotlib on the machine.
func pyplotRender(pts geom.PointSet, title, out string) error {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	x0, x1, y0, y1 := dataBounds(pts)

	plt.Reset()
	plt.Figure(plt.FigSize(8, 8))
	plt.Plot(xs, ys, "ok")
	plt.XLabel("x")
	plt.YLabel("y")
	plt.Title(title)
	plt.XLim(x0, x1)
	plt.YLim(y0, y1)
	plt.SaveFig(out)
	plt.Execute()

	return nil
}
