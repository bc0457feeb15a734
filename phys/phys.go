/*phys collects the physical constants shared by the field, radiation and
tracking packages. Values follow CODATA 2018. Everything is SI unless the
name says otherwise (energies are handled in eV by the callers).
*/
package phys

const (
	// CLight is the speed of light in m/s.
	CLight = 299792458.0

	// QElem is the elementary charge in C.
	QElem = 1.602176634e-19

	// Epsilon0 is the vacuum permittivity in F/m.
	Epsilon0 = 8.854187817620e-12

	// RadiusE is the classical electron radius in m.
	RadiusE = 2.8179403262e-15

	// AlphaFine is the fine structure constant.
	AlphaFine = 7.2973525693e-3

	// HBar is the reduced Planck constant in J*s.
	HBar = 1.054571817e-34

	// MassEEV is the electron rest energy in eV.
	MassEEV = 0.51099895e6
)
