package gobeambeam

import (
	"github.com/phil-mansfield/gobeambeam/sigma"
	"github.com/phil-mansfield/gobeambeam/synrad"
)

// BeamstrahlungMode selects how radiative losses are applied during the
// slice kicks.
type BeamstrahlungMode int

const (
	// BeamstrahlungOff applies no radiative loss.
	BeamstrahlungOff BeamstrahlungMode = iota
	// BeamstrahlungQuantum samples individual photons per macroparticle.
	BeamstrahlungQuantum
	// BeamstrahlungAverage applies the deterministic expected loss.
	BeamstrahlungAverage
)

// Slice is the statistics snapshot of one longitudinal slice of the strong
// beam, expressed in the collision (boosted) frame at the slice's own
// reference point. Slices are immutable during tracking.
type Slice struct {
	// Moments is the correlated second-moment matrix of (x, px, y, py).
	Moments sigma.Moments

	// Centroid of the slice.
	XCenter, YCenter, ZetaCenter float64

	// NumParticles is the slice intensity in real particles;
	// NumMacroparticles the simulated population behind the statistics.
	// Slices with NumMacroparticles <= 2 are skipped as statistically
	// empty.
	NumParticles      float64
	NumMacroparticles int64

	// ZetaBinWidth is the longitudinal bin width, used only to set the
	// bending length for beamstrahlung sampling.
	ZetaBinWidth float64
}

// Element is one weak-strong beam-beam interaction point: the configuration
// shared by every tracked macroparticle plus the slice table of the opposing
// beam. An Element is read-only during tracking and may be shared freely
// across goroutines; only the optional photon table is written to, and it
// accepts concurrent appends.
type Element struct {
	// OtherBeamQ0 is the charge of the strong beam in units of e.
	OtherBeamQ0 float64

	// MinSigmaDiff selects the round-beam field formula when the two
	// principal widths are closer than this. ThresholdSingular guards the
	// degenerate branch of the moment diagonalization.
	MinSigmaDiff      float64
	ThresholdSingular float64

	Beamstrahlung BeamstrahlungMode

	// RefShift and OtherBeamShift are removed from the coordinates before
	// the boost and restored after it; PostSubtract is removed at the very
	// end to take out the closed-orbit dipolar artifact of the boosted
	// geometry.
	RefShift, OtherBeamShift, PostSubtract Shift

	Boost Boost

	// Slices are visited in order, head to tail of the strong beam.
	Slices []Slice

	// Photons receives emitted-photon records when Beamstrahlung is
	// BeamstrahlungQuantum. May be nil; absence only suppresses the
	// records, never the physics.
	Photons *synrad.PhotonTable
}

// NewElement builds an element for a strong beam crossing at half angle phi
// with crossing-plane rotation alpha, both in rad. The remaining fields of
// the returned element may be filled in directly.
func NewElement(
	phi, alpha, otherBeamQ0 float64, slices []Slice,
) *Element {
	return &Element{
		OtherBeamQ0:       otherBeamQ0,
		MinSigmaDiff:      1e-10,
		ThresholdSingular: 1e-28,
		Beamstrahlung:     BeamstrahlungOff,
		Boost:             NewBoost(phi, alpha),
		Slices:            slices,
	}
}
