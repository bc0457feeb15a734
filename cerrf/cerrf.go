/*cerrf evaluates the Faddeeva function, w(z) = exp(-z^2) erfc(-iz), for
arbitrary complex arguments. The evaluation follows the CERN library WWERF
routine: a truncated Taylor/Lentz expansion inside the rectangle
|Re z| < 5.33, |Im z| < 4.29 and a short continued fraction outside of it,
with the reflection formulas extending the first quadrant to the full plane.
The absolute error in the upper half plane is below 0.5e-9.
*/
package cerrf

import (
	"math"
)

const (
	// 2/sqrt(pi)
	twoOverSqrtPi = 1.1283791670955126

	xLim = 5.33
	yLim = 4.29

	maxN = 33
)

// W returns the real and imaginary parts of w(x + iy).
func W(x, y float64) (wRe, wIm float64) {
	ax, ay := math.Abs(x), math.Abs(y)

	var wx, wy float64
	if ax < xLim && ay < yLim {
		wx, wy = inner(ax, ay)
	} else {
		wx, wy = outer(ax, ay)
	}

	if ay == 0 {
		// The Taylor sum only approximates this and the exact value is
		// cheap, so force it.
		wx = math.Exp(-ax * ax)
	}

	if y < 0 {
		// w(-z) = 2 exp(-z^2) - w(z), applied to the lower half plane.
		ex := 2 * math.Exp(ay*ay-ax*ax)
		wx = ex*math.Cos(2*ax*ay) - wx
		wy = -ex*math.Sin(2*ax*ay) - wy
		if x > 0 {
			wy = -wy
		}
	} else if x < 0 {
		// w(-conj(z)) = conj(w(z))
		wy = -wy
	}

	return wx, wy
}

// inner evaluates w in the first-quadrant rectangle where neither the
// asymptotic expansion nor the continued fraction converge quickly.
func inner(x, y float64) (wx, wy float64) {
	q := (1.0 - y/yLim) * math.Sqrt(1.0-(x/xLim)*(x/xLim))
	h := 1.0 / (3.2 * q)
	nc := 7 + int(23.0*q)
	nu := 10 + int(21.0*q)

	xl := math.Pow(h, float64(1-nc))
	xh := y + 0.5/h
	yh := x

	var rx, ry [maxN]float64
	for n := nu; n > 0; n-- {
		tx := xh + float64(n)*rx[n]
		ty := yh - float64(n)*ry[n]
		tn := tx*tx + ty*ty
		rx[n-1] = 0.5 * tx / tn
		ry[n-1] = 0.5 * ty / tn
	}

	sx, sy := 0.0, 0.0
	for n := nc; n > 0; n-- {
		saux := sx + xl
		sx = rx[n-1]*saux - ry[n-1]*sy
		sy = rx[n-1]*sy + ry[n-1]*saux
		xl = h * xl
	}

	return twoOverSqrtPi * sx, twoOverSqrtPi * sy
}

// outer evaluates w through a nine-term continued fraction, which is
// accurate once |Re z| or |Im z| is large.
func outer(x, y float64) (wx, wy float64) {
	xh, yh := y, x
	rx, ry := 0.0, 0.0
	for n := 9; n > 0; n-- {
		tx := xh + float64(n)*rx
		ty := yh - float64(n)*ry
		tn := tx*tx + ty*ty
		rx = 0.5 * tx / tn
		ry = 0.5 * ty / tn
	}
	return twoOverSqrtPi * rx, twoOverSqrtPi * ry
}
