package gobeambeam

import (
	"math"
	"testing"
)

func testParticle() Particle {
	return Particle{
		Q0: -1, P0c: 182.5e9, Mass0: 0.511e6,
	}
}

func TestParticleReferenceRelations(t *testing.T) {
	p := testParticle()

	e0 := math.Sqrt(p.P0c*p.P0c + p.Mass0*p.Mass0)
	if p.Energy0() != e0 {
		t.Errorf("Energy0 -> %g instead of %g", p.Energy0(), e0)
	}
	if b := p.Beta0(); b <= 0 || b >= 1 {
		t.Errorf("Beta0 -> %g, outside (0, 1)", b)
	}

	// On the reference momentum everything collapses.
	if p.PTau() != 0 || p.Delta() != 0 || p.Rpp() != 1 {
		t.Errorf("on-momentum particle: ptau=%g delta=%g rpp=%g",
			p.PTau(), p.Delta(), p.Rpp())
	}
	if p.Energy() != p.Energy0() {
		t.Errorf("Energy -> %g instead of %g", p.Energy(), p.Energy0())
	}
}

func TestParticleDeltaFromPZeta(t *testing.T) {
	p := testParticle()
	p.PZeta = 1e-3

	// delta = sqrt(ptau^2 + 2 ptau / beta0 + 1) - 1
	ptau := p.PZeta * p.Beta0()
	want := math.Sqrt(ptau*ptau+2*ptau/p.Beta0()+1) - 1

	if p.Delta() != want {
		t.Errorf("Delta -> %g instead of %g", p.Delta(), want)
	}
	if got := p.Rpp(); math.Abs(got-1/(1+want)) > 1e-16 {
		t.Errorf("Rpp -> %g instead of %g", got, 1/(1+want))
	}
}

func TestAddToEnergy(t *testing.T) {
	p := testParticle()
	p.PZeta = 5e-4

	de := -1e6
	e := p.Energy()
	pzeta := p.PZeta

	p.AddToEnergy(de)

	if math.Abs(p.Energy()-(e+de)) > 1e-3*math.Abs(de) {
		t.Errorf("energy after AddToEnergy -> %g instead of %g",
			p.Energy(), e+de)
	}
	if p.PZeta >= pzeta {
		t.Errorf("PZeta did not drop with the energy: %g -> %g",
			pzeta, p.PZeta)
	}

	// Undoing the loss restores the state.
	p.AddToEnergy(-de)
	if math.Abs(p.PZeta-pzeta) > 1e-12 {
		t.Errorf("PZeta after undo -> %g instead of %g", p.PZeta, pzeta)
	}
}

func TestShiftPlus(t *testing.T) {
	a := Shift{1, 2, 3, 4, 5, 6}
	b := Shift{10, 20, 30, 40, 50, 60}
	want := Shift{11, 22, 33, 44, 55, 66}
	if got := a.Plus(b); got != want {
		t.Errorf("Plus -> %v instead of %v", got, want)
	}
}
