package gobeambeam

import (
	"math"
)

// Particle is the phase-space state of one weak-beam macroparticle together
// with its reference charge and momentum. Positions are in m, transverse
// momenta are normalized to the reference momentum, and PZeta is the
// canonical longitudinal momentum, ptau / beta0.
//
// PZeta is the only stored longitudinal momentum variable: delta, ptau and
// the momentum ratios are computed from it on demand, so they can never fall
// out of sync with it.
type Particle struct {
	X, Px, Y, Py, Zeta, PZeta float64

	// Q0 is the reference charge in units of e, P0c the reference momentum
	// in eV and Mass0 the rest energy in eV.
	Q0, P0c, Mass0 float64
}

// Energy0 returns the reference energy in eV.
func (p *Particle) Energy0() float64 {
	return math.Sqrt(p.P0c*p.P0c + p.Mass0*p.Mass0)
}

// Beta0 returns the reference velocity in units of c.
func (p *Particle) Beta0() float64 {
	return p.P0c / p.Energy0()
}

// PTau returns (E - E0) / p0c.
func (p *Particle) PTau() float64 {
	return p.PZeta * p.Beta0()
}

// Delta returns the relative momentum deviation, (p - p0) / p0.
func (p *Particle) Delta() float64 {
	ptau := p.PTau()
	return math.Sqrt(ptau*ptau+2*ptau/p.Beta0()+1) - 1
}

// Rpp returns p0 / p = 1 / (1 + delta).
func (p *Particle) Rpp() float64 {
	return 1 / (1 + p.Delta())
}

// Energy returns the total energy in eV.
func (p *Particle) Energy() float64 {
	return p.Energy0() + p.PTau()*p.P0c
}

// Gamma returns the relativistic factor at the particle's energy.
func (p *Particle) Gamma() float64 {
	return p.Energy() / p.Mass0
}

// AddToEnergy shifts the total energy by de (eV), rewriting PZeta.
func (p *Particle) AddToEnergy(de float64) {
	ptau := p.PTau() + de/p.P0c
	p.PZeta = ptau / p.Beta0()
}

// Shift is a set of per-coordinate offsets applied around the boosted
// interaction.
type Shift struct {
	X, Px, Y, Py, Zeta, PZeta float64
}

// Plus returns the componentwise sum of two shifts.
func (sh Shift) Plus(other Shift) Shift {
	return Shift{
		sh.X + other.X, sh.Px + other.Px,
		sh.Y + other.Y, sh.Py + other.Py,
		sh.Zeta + other.Zeta, sh.PZeta + other.PZeta,
	}
}
