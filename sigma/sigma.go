/*sigma propagates the correlated transverse second-moment matrix of a strong
beam slice to a longitudinal offset S and diagonalizes the transverse block.
The moment matrix is the symmetric 4x4 covariance of (x, px, y, py), stored
as its ten independent entries. Propagation is a pure drift, so only terms
linear and quadratic in S appear.

The diagonalization returns the two principal variances, the rotation that
uncouples the block and the S derivatives of all four, which the kick code
needs for the longitudinal synchro-beam correction. When the transverse block
is degenerate (the discriminant T falls below thresholdSingular) the rotation
angle is indeterminate and is resolved from the S derivatives of the block
instead; see Propagate.
*/
package sigma

import (
	"math"
)

// Moments holds the ten independent entries of the symmetric second-moment
// matrix of (x, px, y, py) at the slice reference point. Indices follow the
// 1-based phase-space convention: 1 = x, 2 = px, 3 = y, 4 = py.
type Moments struct {
	Sig11, Sig12, Sig13, Sig14 float64
	Sig22, Sig23, Sig24        float64
	Sig33, Sig34               float64
	Sig44                      float64
}

// Propagated is the diagonalized transverse block at the requested offset.
// Sig11Hat and Sig33Hat are the principal variances, CosTheta and SinTheta
// the rotation into the principal frame, and the DS* fields the derivatives
// of each with respect to the offset.
type Propagated struct {
	Sig11Hat, Sig33Hat   float64
	CosTheta, SinTheta   float64
	DSSig11Hat, DSSig33Hat float64
	DSCosTheta, DSSinTheta float64
}

func sign(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}

// Propagate drifts m by s and diagonalizes the transverse block.
//
// The discriminant T = R^2 + 4 Sig13^2 (R = Sig11 - Sig33, both evaluated at
// s) measures how far the block is from degenerate. For T below
// thresholdSingular and handleSingularities set, the principal variances
// collapse to the mean width and the angle is taken from the first
// S derivative of the block; if that derivative also vanishes, from the
// second. cos(2 theta) is kept non-negative throughout, so CosTheta never
// drops below sqrt(1/2) and no formula here divides by it unguarded.
func Propagate(
	m Moments, s, thresholdSingular float64, handleSingularities bool,
) Propagated {
	sig11 := m.Sig11 + 2*m.Sig12*s + m.Sig22*s*s
	sig33 := m.Sig33 + 2*m.Sig34*s + m.Sig44*s*s
	sig13 := m.Sig13 + (m.Sig14+m.Sig23)*s + m.Sig24*s*s

	sig12 := m.Sig12 + m.Sig22*s
	sig14 := m.Sig14 + m.Sig24*s
	sig22 := m.Sig22
	sig23 := m.Sig23 + m.Sig24*s
	sig24 := m.Sig24
	sig34 := m.Sig34 + m.Sig44*s
	sig44 := m.Sig44

	r := sig11 - sig33
	w := sig11 + sig33
	t := r*r + 4*sig13*sig13

	dsR := 2*(m.Sig12-m.Sig34) + 2*s*(m.Sig22-m.Sig44)
	dsW := 2*(m.Sig12+m.Sig34) + 2*s*(m.Sig22+m.Sig44)
	dsSig13 := m.Sig14 + m.Sig23 + 2*m.Sig24*s
	dsT := 2*r*dsR + 8*sig13*dsSig13

	out := Propagated{}

	if t < thresholdSingular && handleSingularities {
		// Degenerate transverse block: R and Sig13 both ~0.
		a := sig12 - sig34
		b := sig22 - sig44
		c := sig14 + sig23
		d := sig24

		sqrtA2C2 := math.Sqrt(a*a + c*c)

		out.Sig11Hat = 0.5 * w
		out.Sig33Hat = 0.5 * w
		out.DSCosTheta = 0
		out.DSSinTheta = 0

		if sqrtA2C2*sqrtA2C2*sqrtA2C2 < thresholdSingular {
			// The block stays degenerate to first order in S as well.
			// Split direction comes from the second derivative (b, d);
			// if that vanishes too the planes are decoupled.
			var cos2theta float64
			if math.Abs(d) > thresholdSingular {
				cos2theta = math.Abs(b) / math.Sqrt(b*b+4*d*d)
			} else {
				cos2theta = 1.0
			}
			out.CosTheta = math.Sqrt(0.5 * (1.0 + cos2theta))
			out.SinTheta = sign(b) * sign(d) *
				math.Sqrt(0.5*(1.0-cos2theta))
			out.DSSig11Hat = 0.5 * dsW
			out.DSSig33Hat = 0.5 * dsW
		} else {
			// The degeneracy lifts linearly in S: signR sqrt(T) grows at
			// 2 sign(a) sqrt(a^2 + c^2), which fixes both the angle and
			// which eigenvalue is growing.
			cos2theta := math.Abs(a) / sqrtA2C2
			sin2theta := sign(a) * c / sqrtA2C2
			out.CosTheta = math.Sqrt(0.5 * (1.0 + cos2theta))
			out.SinTheta = sin2theta / (2.0 * out.CosTheta)
			out.DSSig11Hat = 0.5*dsW + sign(a)*sqrtA2C2
			out.DSSig33Hat = 0.5*dsW - sign(a)*sqrtA2C2
		}

		return out
	}

	signR := sign(r)
	sqrtT := math.Sqrt(t)

	cos2theta := signR * r / sqrtT
	out.CosTheta = math.Sqrt(0.5 * (1.0 + cos2theta))
	out.SinTheta = signR * sig13 / (sqrtT * out.CosTheta)

	out.Sig11Hat = 0.5 * (w + signR*sqrtT)
	out.Sig33Hat = 0.5 * (w - signR*sqrtT)

	dsSqrtT := dsT / (2.0 * sqrtT)
	dsCos2theta := signR * (dsR*sqrtT - r*dsSqrtT) / t

	out.DSCosTheta = dsCos2theta / (4.0 * out.CosTheta)
	out.DSSinTheta = signR *
		(dsSig13*sqrtT*out.CosTheta -
			sig13*(dsSqrtT*out.CosTheta+sqrtT*out.DSCosTheta)) /
		(t * out.CosTheta * out.CosTheta)

	out.DSSig11Hat = 0.5 * (dsW + signR*dsSqrtT)
	out.DSSig33Hat = 0.5 * (dsW - signR*dsSqrtT)

	return out
}
