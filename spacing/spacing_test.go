package spacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDefault(t *testing.T) {
	sp, err := Resolve(Inputs{})
	assert.NoError(t, err)
	assert.Equal(t, Spacing{DefaultSpacing, DefaultSpacing, Default}, sp)
}

func TestResolveExplicit(t *testing.T) {
	sp, err := Resolve(Inputs{Dx: 0.01})
	assert.NoError(t, err)
	assert.Equal(t, Spacing{0.01, 0.01, Explicit}, sp)

	sp, err = Resolve(Inputs{Dx: 0.01, Dy: 0.02})
	assert.NoError(t, err)
	assert.Equal(t, Spacing{0.01, 0.02, Explicit}, sp)

	// Dy without Dx is incomplete.
	_, err = Resolve(Inputs{Dy: 0.02})
	assert.Error(t, err)

	_, err = Resolve(Inputs{Dx: -1})
	assert.Error(t, err)
}

func TestResolveDerived(t *testing.T) {
	sp, err := Resolve(Inputs{Lx: 1.0, Ly: 1.0, Nx: "4", Ny: "4"})
	assert.NoError(t, err)
	assert.Equal(t, Derived, sp.Mode)
	assert.InDelta(t, 0.25, sp.Dx, 1e-15)

	sp, err = Resolve(Inputs{Lx: 16, Ly: 8, Nx: "64*4", Ny: "32*4"})
	assert.NoError(t, err)
	assert.InDelta(t, 0.0625, sp.Dx, 1e-15)
	assert.InDelta(t, 0.0625, sp.Dy, 1e-15)

	// All four inputs are required.
	_, err = Resolve(Inputs{Lx: 1.0, Nx: "4"})
	assert.Error(t, err)

	// Malformed count expression.
	_, err = Resolve(Inputs{Lx: 1, Ly: 1, Nx: "4*", Ny: "4"})
	assert.Error(t, err)

	// Non-positive count.
	_, err = Resolve(Inputs{Lx: 1, Ly: 1, Nx: "0", Ny: "4"})
	assert.Error(t, err)
}

func TestResolveConflicts(t *testing.T) {
	_, err := Resolve(Inputs{Dx: 0.01, Lx: 1, Ly: 1, Nx: "4", Ny: "4"})
	assert.Error(t, err)

	_, err = Resolve(Inputs{Dx: 0.01, Input2D: "input2d"})
	assert.Error(t, err)

	_, err = Resolve(Inputs{Lx: 1, Ly: 1, Nx: "4", Ny: "4", Input2D: "input2d"})
	assert.Error(t, err)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "Default", Default.String())
	assert.Equal(t, "Explicit", Explicit.String())
	assert.Equal(t, "Derived", Derived.String())
	assert.Equal(t, "FromConfig", FromConfig.String())
}
