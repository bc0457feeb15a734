/*fields evaluates the transverse electric field of a normalized 2D Gaussian
charge distribution and the gradient-like G terms which feed the longitudinal
synchro-beam kick. Elliptical distributions use the Bassetti-Erskine formula
built on the Faddeeva function; distributions whose widths differ by less
than minSigmaDiff switch to the round-beam closed form, which is finite where
Bassetti-Erskine has a removable singularity. The branch selection is part of
the contract: callers rely on the two formulas agreeing at the boundary.

Fields are per unit charge per unit length. Multiply by the line density and
the usual Lorentz factors to get forces.
*/
package fields

import (
	"math"

	"github.com/phil-mansfield/gobeambeam/cerrf"
	"github.com/phil-mansfield/gobeambeam/phys"
)

const sqrtPi = 1.7724538509055160

// ExEyGauss returns the transverse field components at (x, y) of a 2D
// Gaussian distribution with RMS widths sigmaX and sigmaY centered on the
// origin. Widths closer than minSigmaDiff are treated as equal.
func ExEyGauss(x, y, sigmaX, sigmaY, minSigmaDiff float64) (ex, ey float64) {
	if math.Abs(sigmaX-sigmaY) < minSigmaDiff {
		sigma := 0.5 * (sigmaX + sigmaY)
		return roundField(sigma, x, y)
	}
	return ellipField(sigmaX, sigmaY, x, y)
}

// roundField is the closed-form field of a round Gaussian distribution,
// linearized below r^2 = 1e-20 to avoid 0/0 on axis.
func roundField(sigma, x, y float64) (ex, ey float64) {
	r2 := x*x + y*y

	var temp float64
	if r2 < 1e-20 {
		temp = math.Sqrt(r2) / (2.0 * math.Pi * phys.Epsilon0 * sigma)
	} else {
		temp = (1.0 - math.Exp(-0.5*r2/(sigma*sigma))) /
			(2.0 * math.Pi * phys.Epsilon0 * r2)
	}

	return temp * x, temp * y
}

// ellipField is the Bassetti-Erskine formula. It is evaluated in the first
// quadrant with sigmaX > sigmaY and extended by symmetry.
func ellipField(sigmaX, sigmaY, x, y float64) (ex, ey float64) {
	abx, aby := math.Abs(x), math.Abs(y)

	var eMajor, eMinor float64
	if sigmaX > sigmaY {
		eMajor, eMinor = quadrantField(sigmaX, sigmaY, abx, aby)
		ex, ey = eMajor, eMinor
	} else {
		eMajor, eMinor = quadrantField(sigmaY, sigmaX, aby, abx)
		ey, ex = eMajor, eMinor
	}

	if x < 0 {
		ex = -ex
	}
	if y < 0 {
		ey = -ey
	}
	return ex, ey
}

// quadrantField evaluates Bassetti-Erskine for u >= 0, v >= 0 and
// sigmaU > sigmaV, returning the (u, v) field components.
func quadrantField(sigmaU, sigmaV, u, v float64) (eu, ev float64) {
	s := math.Sqrt(2.0 * (sigmaU*sigmaU - sigmaV*sigmaV))
	fact := 1.0 / (2.0 * phys.Epsilon0 * sqrtPi * s)

	etaRe := sigmaV / sigmaU * u
	etaIm := sigmaU / sigmaV * v

	wZetaRe, wZetaIm := cerrf.W(u/s, v/s)
	wEtaRe, wEtaIm := cerrf.W(etaRe/s, etaIm/s)

	expTerm := math.Exp(-u*u/(2.0*sigmaU*sigmaU) - v*v/(2.0*sigmaV*sigmaV))

	eu = fact * (wZetaIm - wEtaIm*expTerm)
	ev = fact * (wZetaRe - wEtaRe*expTerm)
	return eu, ev
}

// GxGy returns the G terms at (x, y) for the same distribution and the same
// branch rule as ExEyGauss. ex and ey must be the output of ExEyGauss at the
// same point.
func GxGy(x, y, sigmaX, sigmaY, minSigmaDiff, ex, ey float64) (gx, gy float64) {
	if math.Abs(sigmaX-sigmaY) < minSigmaDiff {
		sigma := 0.5 * (sigmaX + sigmaY)
		r2 := x*x + y*y
		if r2 < 1e-20 {
			// Both terms vanish quadratically at the origin.
			return 0, 0
		}

		expTerm := math.Exp(-r2 / (2.0 * sigma * sigma))
		norm := 1.0 / (2.0 * math.Pi * phys.Epsilon0 * sigma * sigma)
		gx = 1.0 / (2.0 * r2) * (y*ey - x*ex + norm*x*x*expTerm)
		gy = 1.0 / (2.0 * r2) * (x*ex - y*ey + norm*y*y*expTerm)
		return gx, gy
	}

	sig11 := sigmaX * sigmaX
	sig33 := sigmaY * sigmaY
	expTerm := math.Exp(-x*x/(2.0*sig11) - y*y/(2.0*sig33))
	norm := 1.0 / (2.0 * math.Pi * phys.Epsilon0)

	gx = -1.0 / (2.0 * (sig11 - sig33)) *
		(x*ex + y*ey + norm*(sigmaY/sigmaX*expTerm-1.0))
	gy = 1.0 / (2.0 * (sig11 - sig33)) *
		(x*ex + y*ey + norm*(sigmaX/sigmaY*expTerm-1.0))
	return gx, gy
}
