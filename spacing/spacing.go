/*package spacing resolves the lattice spacing used to rasterize primitives.

A run supplies spacing through exactly one of three input groups: explicit
dx/dy values, a domain-length and grid-count derivation (dx = Lx/Nx), or an
IBAMR-style input2d file describing a nested mesh refinement hierarchy. If
no group is supplied at all, a fixed default is used. Supplying values from
more than one group is a configuration error: the groups would silently
shadow each other otherwise, which hides user mistakes.
*/
package spacing

import (
	"fmt"
	"strings"

	"ibvertex/expr"
)

// Mode identifies how the spacing was resolved.
type Mode int

const (
	Default Mode = iota
	Explicit
	Derived
	FromConfig
)

func (m Mode) String() string {
	switch m {
	case Default:
		return "Default"
	case Explicit:
		return "Explicit"
	case Derived:
		return "Derived"
	case FromConfig:
		return "FromConfig"
	}
	panic("Impossible")
}

// DefaultSpacing is the fallback lattice pitch when no spacing inputs are
// given. It is the finest-level spacing of the reference 512-cell setup,
// 1/512.
const DefaultSpacing = 0.001953125

// Spacing is the resolved lattice pitch, applied uniformly to every
// primitive in a run.
type Spacing struct {
	Dx, Dy float64
	Mode   Mode
}

// Inputs collects every spacing-related value the user supplied. Zero
// values mean "not given". Nx and Ny are expression strings so that grid
// counts like "64*4*4" can be written the way simulator inputs write them.
type Inputs struct {
	Dx, Dy  float64
	Lx, Ly  float64
	Nx, Ny  string
	Input2D string
}

// Resolve selects the single resolution mode implied by in and computes
// the spacing. Inputs spanning more than one mode, incomplete derivation
// inputs, malformed expressions, and non-positive results are all
// configuration errors.
func Resolve(in Inputs) (Spacing, error) {
	groups := []string{}
	if in.Dx != 0 || in.Dy != 0 {
		groups = append(groups, "Dx/Dy")
	}
	if in.Lx != 0 || in.Ly != 0 || in.Nx != "" || in.Ny != "" {
		groups = append(groups, "Lx/Ly/Nx/Ny")
	}
	if in.Input2D != "" {
		groups = append(groups, "Input2D")
	}
	if len(groups) > 1 {
		return Spacing{}, fmt.Errorf(
			"conflicting spacing inputs: %s were all given, but spacing "+
				"must come from exactly one of them",
			strings.Join(groups, " and "),
		)
	}

	switch {
	case len(groups) == 0:
		return Spacing{DefaultSpacing, DefaultSpacing, Default}, nil
	case groups[0] == "Dx/Dy":
		return resolveExplicit(in)
	case groups[0] == "Lx/Ly/Nx/Ny":
		return resolveDerived(in)
	}
	return resolveInput2D(in.Input2D)
}

func resolveExplicit(in Inputs) (Spacing, error) {
	if in.Dx <= 0 {
		return Spacing{}, fmt.Errorf(
			"'Dx' must be positive when given, got %g", in.Dx,
		)
	}
	dy := in.Dy
	if dy == 0 {
		dy = in.Dx
	} else if dy < 0 {
		return Spacing{}, fmt.Errorf("'Dy' must be positive, got %g", dy)
	}
	return Spacing{in.Dx, dy, Explicit}, nil
}

func resolveDerived(in Inputs) (Spacing, error) {
	if in.Lx <= 0 || in.Ly <= 0 || in.Nx == "" || in.Ny == "" {
		return Spacing{}, fmt.Errorf(
			"derived spacing needs all four of 'Lx', 'Ly', 'Nx', and 'Ny'",
		)
	}

	nx, err := expr.Eval(in.Nx, nil)
	if err != nil {
		return Spacing{}, fmt.Errorf("invalid 'Nx': %s", err.Error())
	}
	ny, err := expr.Eval(in.Ny, nil)
	if err != nil {
		return Spacing{}, fmt.Errorf("invalid 'Ny': %s", err.Error())
	}
	if nx <= 0 || ny <= 0 {
		return Spacing{}, fmt.Errorf(
			"grid counts must be positive, got Nx=%g, Ny=%g", nx, ny,
		)
	}

	return Spacing{in.Lx / nx, in.Ly / ny, Derived}, nil
}

func resolveInput2D(path string) (Spacing, error) {
	dx, dy, err := ReadInput2D(path)
	if err != nil {
		return Spacing{}, err
	}
	return Spacing{dx, dy, FromConfig}, nil
}
