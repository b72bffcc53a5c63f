package fluid

import (
	"fmt"
	"math"
)

// Fluid holds the constant properties used by the friction correlations.
//
//   - Name:      free-form label, only used in diagnostics.
//   - Density:   kg/m³, must be finite and positive.
//   - Viscosity: dynamic viscosity in Pa·s, must be finite and positive.
type Fluid struct {
	Name      string
	Density   float64
	Viscosity float64
}

// Validate reports ErrNonPhysical for non-positive or non-finite properties.
func (f Fluid) Validate() error {
	if !positive(f.Density) {
		return fmt.Errorf("%w: fluid %q density %g", ErrNonPhysical, f.Name, f.Density)
	}
	if !positive(f.Viscosity) {
		return fmt.Errorf("%w: fluid %q viscosity %g", ErrNonPhysical, f.Name, f.Viscosity)
	}
	return nil
}

// positive reports whether v is finite and strictly greater than zero.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// nonNegative reports whether v is finite and not below zero.
func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
