package halfspace

import "math"

// Mu0 is the permeability of free space, H/m.
const Mu0 = 4e-7 * math.Pi

// Default casing and background properties, SI units.
const (
	DefaultFrequency              = 0.125  // Hz
	DefaultBackgroundConductivity = 0.18   // S/m
	DefaultCasingConductivity     = 1.0e7  // S/m
	DefaultOuterRadius            = 0.1095 // m
	DefaultWallThickness          = 0.0134 // m
	DefaultInnerRadius            = DefaultOuterRadius - DefaultWallThickness
	DefaultCasingLength           = 1365.0 // m
	DefaultNumSegments            = 280
	DefaultWireCurrent            = 1.0 // A
)

// kSquared returns the halfspace wavenumber squared, -i*omega*mu0*sigma.
func kSquared(frequency, conductivity float64) complex128 {
	return complex(0, -2*math.Pi*frequency*Mu0*conductivity)
}
