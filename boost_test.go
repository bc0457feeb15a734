package gobeambeam

import (
	"math"
	"testing"
)

func coordsEpsEq(got, want [6]float64, eps float64) bool {
	for i := range got {
		if math.Abs(got[i]-want[i]) > eps {
			return false
		}
	}
	return true
}

func TestBoostZeroAngleIsIdentity(t *testing.T) {
	b := NewBoost(0, 0)
	x, px, y, py, zeta, pzeta := 1e-3, 1e-4, -2e-3, 5e-5, 1e-2, 1e-3

	ox, opx, oy, opy, ozeta, opzeta := b.Forward(x, px, y, py, zeta, pzeta)

	got := [6]float64{ox, opx, oy, opy, ozeta, opzeta}
	want := [6]float64{x, px, y, py, zeta, pzeta}
	if !coordsEpsEq(got, want, 0) {
		t.Errorf("Forward at phi=0 -> %v instead of %v", got, want)
	}
}

func TestBoostRoundTrip(t *testing.T) {
	table := []struct {
		phi, alpha float64
		coords     [6]float64
	}{
		{15e-3, 0, [6]float64{1e-3, 1e-4, -2e-3, 5e-5, 1e-2, 1e-3}},
		{15e-3, math.Pi / 2, [6]float64{1e-3, 1e-4, -2e-3, 5e-5, 1e-2, 1e-3}},
		{-10e-3, 0.3, [6]float64{-5e-4, -3e-4, 1e-3, 2e-4, -5e-3, -2e-3}},
		{100e-3, 1.1, [6]float64{2e-3, 1e-3, 3e-4, -8e-4, 2e-2, 5e-3}},
		{1e-6, 0, [6]float64{1e-3, 0, 0, 0, 0, 0}},
	}

	for i, test := range table {
		b := NewBoost(test.phi, test.alpha)
		c := test.coords

		x, px, y, py, zeta, pzeta := b.Forward(
			c[0], c[1], c[2], c[3], c[4], c[5],
		)
		x, px, y, py, zeta, pzeta = b.Inverse(x, px, y, py, zeta, pzeta)

		got := [6]float64{x, px, y, py, zeta, pzeta}
		if !coordsEpsEq(got, c, 1e-14) {
			t.Errorf("%d) boost round trip %v -> %v", i+1, c, got)
		}
	}
}

func TestBoostInverseForward(t *testing.T) {
	// The other composition order has to close too.
	b := NewBoost(20e-3, 0.7)
	c := [6]float64{1e-3, 2e-4, -1e-3, 1e-4, 5e-3, 2e-3}

	x, px, y, py, zeta, pzeta := b.Inverse(c[0], c[1], c[2], c[3], c[4], c[5])
	x, px, y, py, zeta, pzeta = b.Forward(x, px, y, py, zeta, pzeta)

	got := [6]float64{x, px, y, py, zeta, pzeta}
	if !coordsEpsEq(got, c, 1e-14) {
		t.Errorf("inverse-forward round trip %v -> %v", c, got)
	}
}

func TestBoostPreservesHeadOnMomentum(t *testing.T) {
	// A particle moving exactly along the reference axis keeps px = py = 0
	// only in the alpha = 0 crossing plane after the boost picks up the
	// crossing angle; the boosted momenta must be finite and small.
	b := NewBoost(15e-3, 0)
	_, px, _, py, _, pzeta := b.Forward(0, 0, 0, 0, 0, 0)

	if math.Abs(px) > 1e-6 || py != 0 {
		t.Errorf("boosted on-axis momenta -> (%g, %g)", px, py)
	}
	if math.Abs(pzeta) > 1e-6 {
		t.Errorf("boosted on-axis pzeta -> %g", pzeta)
	}
}
