package gobeambeam

import (
	"math"
)

// Boost is the Lorentz boost into the frame where the two beams collide
// head on, parameterized by the half crossing angle phi and the rotation
// alpha of the crossing plane. The trigonometric factors are precomputed
// once per element.
type Boost struct {
	SinPhi, CosPhi, TanPhi float64
	SinAlpha, CosAlpha     float64
}

// NewBoost precomputes the boost for the given angles, in rad.
func NewBoost(phi, alpha float64) Boost {
	return Boost{
		SinPhi:   math.Sin(phi),
		CosPhi:   math.Cos(phi),
		TanPhi:   math.Tan(phi),
		SinAlpha: math.Sin(alpha),
		CosAlpha: math.Cos(alpha),
	}
}

// Forward maps lab-frame coordinates into the collision frame.
func (b *Boost) Forward(x, px, y, py, zeta, pzeta float64) (
	xSt, pxSt, ySt, pySt, zetaSt, pzetaSt float64) {

	sphi, cphi, tphi := b.SinPhi, b.CosPhi, b.TanPhi
	salpha, calpha := b.SinAlpha, b.CosAlpha

	h := pzeta + 1.0 - math.Sqrt((1.0+pzeta)*(1.0+pzeta)-px*px-py*py)

	pxSt = px/cphi - h*calpha*tphi/cphi
	pySt = py/cphi - h*salpha*tphi/cphi
	pzetaSt = pzeta - px*calpha*tphi - py*salpha*tphi + h*tphi*tphi

	pzSt := math.Sqrt((1.0+pzetaSt)*(1.0+pzetaSt) - pxSt*pxSt - pySt*pySt)
	hxSt := pxSt / pzSt
	hySt := pySt / pzSt
	hzetaSt := 1.0 - (pzetaSt+1)/pzSt

	l11 := 1.0 + hxSt*calpha*sphi
	l12 := hxSt * salpha * sphi
	l13 := calpha * tphi

	l21 := hySt * calpha * sphi
	l22 := 1.0 + hySt*salpha*sphi
	l23 := salpha * tphi

	l31 := hzetaSt * calpha * sphi
	l32 := hzetaSt * salpha * sphi
	l33 := 1.0 / cphi

	xSt = l11*x + l12*y + l13*zeta
	ySt = l21*x + l22*y + l23*zeta
	zetaSt = l31*x + l32*y + l33*zeta

	return xSt, pxSt, ySt, pySt, zetaSt, pzetaSt
}

// Inverse maps collision-frame coordinates back to the lab frame. It is the
// exact inverse of Forward up to floating-point roundoff.
func (b *Boost) Inverse(xSt, pxSt, ySt, pySt, zetaSt, pzetaSt float64) (
	x, px, y, py, zeta, pzeta float64) {

	sphi, cphi, tphi := b.SinPhi, b.CosPhi, b.TanPhi
	salpha, calpha := b.SinAlpha, b.CosAlpha

	pzSt := math.Sqrt((1.0+pzetaSt)*(1.0+pzetaSt) - pxSt*pxSt - pySt*pySt)
	hxSt := pxSt / pzSt
	hySt := pySt / pzSt
	hzetaSt := 1.0 - (pzetaSt+1)/pzSt

	det := 1.0/cphi + (hxSt*calpha+hySt*salpha-hzetaSt*sphi)*tphi

	li11 := (1.0/cphi + salpha*tphi*(hySt-hzetaSt*salpha*sphi)) / det
	li12 := (salpha * tphi * (hzetaSt*calpha*sphi - hxSt)) / det
	li13 := -tphi * (calpha - hxSt*salpha*salpha*sphi +
		hySt*calpha*salpha*sphi) / det

	li21 := (calpha * tphi * (-hySt + hzetaSt*salpha*sphi)) / det
	li22 := (1.0/cphi + calpha*tphi*(hxSt-hzetaSt*calpha*sphi)) / det
	li23 := -tphi * (salpha - hySt*calpha*calpha*sphi +
		hxSt*calpha*salpha*sphi) / det

	li31 := -hzetaSt * calpha * sphi / det
	li32 := -hzetaSt * salpha * sphi / det
	li33 := (1.0 + hxSt*calpha*sphi + hySt*salpha*sphi) / det

	x = li11*xSt + li12*ySt + li13*zetaSt
	y = li21*xSt + li22*ySt + li23*zetaSt
	zeta = li31*xSt + li32*ySt + li33*zetaSt

	h := (pzetaSt + 1.0 - pzSt) * cphi * cphi

	px = pxSt*cphi + h*calpha*tphi
	py = pySt*cphi + h*salpha*tphi
	pzeta = pzetaSt + px*calpha*tphi + py*salpha*tphi - h*tphi*tphi

	return x, px, y, py, zeta, pzeta
}
