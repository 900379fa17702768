package spacing

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"

	"ibvertex/expr"
)

// Precompiled lookups for the handful of input2d fields we care about. The
// files are free-form key = value text with // comments, so a full parser
// buys nothing here.
var (
	scalarRes = map[string]*regexp.Regexp{
		"N":          scalarRe("N"),
		"MAX_LEVELS": scalarRe("MAX_LEVELS"),
		"REF_RATIO":  scalarRe("REF_RATIO"),
	}
	vec2Res = map[string]*regexp.Regexp{
		"x_lo": vec2Re("x_lo"),
		"x_up": vec2Re("x_up"),
	}
	domainBoxesRe = regexp.MustCompile(
		`domain_boxes\s*=\s*\[\s*\(\s*0\s*,\s*0\s*\)\s*,` +
			`\s*\(\s*([^,]+)\s*,\s*([^)]+)\)\s*\]`,
	)
)

func scalarRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^[ \t]*` + name + `[ \t]*=[ \t]*([^\n]+)`)
}

func vec2Re(name string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?m)^[ \t]*` + name + `[ \t]*=[ \t]*([^,\n]+),([^,\n]+)`,
	)
}

// ReadInput2D extracts the finest-level lattice spacing from an IBAMR-style
// input2d file. The domain size comes from x_lo/x_up, the coarse cell
// counts from the domain_boxes upper corner (falling back to N in both
// directions), and the finest level from REF_RATIO^(MAX_LEVELS - 1).
func ReadInput2D(path string) (dx, dy float64, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}
	text := string(raw)

	n, err := findScalar(text, path, "N", nil)
	if err != nil {
		return 0, 0, err
	}
	maxLevels, err := findScalar(text, path, "MAX_LEVELS", nil)
	if err != nil {
		return 0, 0, err
	}
	refRatio, err := findScalar(text, path, "REF_RATIO", nil)
	if err != nil {
		return 0, 0, err
	}

	names := map[string]float64{"N": n}
	xLo, yLo, err := findVec2(text, path, "x_lo", names)
	if err != nil {
		return 0, 0, err
	}
	xUp, yUp, err := findVec2(text, path, "x_up", names)
	if err != nil {
		return 0, 0, err
	}
	lx, ly := xUp-xLo, yUp-yLo
	if lx <= 0 || ly <= 0 {
		return 0, 0, fmt.Errorf(
			"domain in %s is empty: x_lo = (%g, %g), x_up = (%g, %g)",
			path, xLo, yLo, xUp, yUp,
		)
	}

	// Coarse cell counts. domain_boxes gives the upper index corner of the
	// level-0 box; without it the grid is assumed square with N cells.
	nx0, ny0 := n, n
	if m := domainBoxesRe.FindStringSubmatch(text); m != nil {
		nx0, err = evalField(m[1], names, path, "domain_boxes")
		if err != nil {
			return 0, 0, err
		}
		ny0, err = evalField(m[2], names, path, "domain_boxes")
		if err != nil {
			return 0, 0, err
		}
	}
	if nx0 <= 0 || ny0 <= 0 {
		return 0, 0, fmt.Errorf(
			"non-positive cell counts (%g, %g) in %s", nx0, ny0, path,
		)
	}

	levels := maxLevels - 1
	if levels < 0 {
		levels = 0
	}
	finest := math.Pow(refRatio, levels)

	return lx / (nx0 * finest), ly / (ny0 * finest), nil
}

func findScalar(
	text, path, name string, names map[string]float64,
) (float64, error) {
	m := scalarRes[name].FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("could not find '%s = ...' in %s", name, path)
	}
	return evalField(m[1], names, path, name)
}

func findVec2(
	text, path, name string, names map[string]float64,
) (a, b float64, err error) {
	m := vec2Res[name].FindStringSubmatch(text)
	if m == nil {
		return 0, 0, fmt.Errorf("could not find '%s = a, b' in %s", name, path)
	}
	if a, err = evalField(m[1], names, path, name); err != nil {
		return 0, 0, err
	}
	if b, err = evalField(m[2], names, path, name); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// evalField strips a trailing // comment from a raw field and evaluates
// what remains as an arithmetic expression.
func evalField(
	raw string, names map[string]float64, path, name string,
) (float64, error) {
	s := raw
	if i := strings.Index(s, "//"); i >= 0 {
		s = s[:i]
	}
	x, err := expr.Eval(strings.TrimSpace(s), names)
	if err != nil {
		return 0, fmt.Errorf("bad '%s' value in %s: %s", name, path, err.Error())
	}
	return x, nil
}
