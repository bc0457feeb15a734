package gobeambeam

import (
	"github.com/phil-mansfield/gobeambeam/rand"
)

// Track takes one macroparticle through the interaction point: boost into
// the collision frame, the sequential synchro-beam kicks of every non-empty
// slice, then the inverse boost and the dipolar subtraction. The particle is
// mutated in place.
//
// Slices must be visited in order and each kick must see the momentum left
// by the previous one, so Track never parallelizes over slices. Distinct
// particles are independent: Track may be called concurrently on the same
// element with different particles (use one generator per goroutine).
//
// gen is only used when the element samples beamstrahlung photons; it may be
// nil otherwise.
func (el *Element) Track(p *Particle, gen *rand.Generator) {
	x, px := p.X, p.Px
	y, py := p.Y, p.Py
	zeta, pzeta := p.Zeta, p.PZeta

	shift := el.RefShift.Plus(el.OtherBeamShift)

	x -= shift.X
	px -= shift.Px
	y -= shift.Y
	py -= shift.Py
	zeta -= shift.Zeta
	pzeta -= shift.PZeta

	x, px, y, py, zeta, pzeta = el.Boost.Forward(x, px, y, py, zeta, pzeta)

	// The slice kicks and the radiation sampler read momentum state off
	// the particle, so it has to carry the boosted pzeta for the duration
	// of the loop. Delta and the momentum ratios follow automatically.
	p.PZeta = pzeta

	for i := range el.Slices {
		sl := &el.Slices[i]

		// Each slice sees the cumulative momentum of all previous ones.
		pzeta = p.PZeta

		if sl.NumMacroparticles > 2 {
			el.synchrobeamKick(p, sl, gen, &x, &px, &y, &py, &zeta, &pzeta)
			p.PZeta = pzeta
		}
	}

	x, px, y, py, zeta, pzeta = el.Boost.Inverse(x, px, y, py, zeta, pzeta)

	x += shift.X
	px += shift.Px
	y += shift.Y
	py += shift.Py
	zeta += shift.Zeta
	pzeta += shift.PZeta

	x -= el.PostSubtract.X
	px -= el.PostSubtract.Px
	y -= el.PostSubtract.Y
	py -= el.PostSubtract.Py
	zeta -= el.PostSubtract.Zeta
	pzeta -= el.PostSubtract.PZeta

	p.X, p.Px = x, px
	p.Y, p.Py = y, py
	p.Zeta, p.PZeta = zeta, pzeta
}
