/*synrad samples the radiative energy loss (beamstrahlung) of a particle
deflected by the field of the opposing beam. Two models are provided: Sample
draws individual photons from the quantum synchrotron spectrum and applies
their recoil one by one, and Average applies the deterministic expected loss
of a full slice collision. Both mutate the particle energy through
AddToEnergy, which rewrites its longitudinal momentum; callers that cache
pzeta must re-read it afterwards.

The spectrum approximations follow the Yokoya-Chen forms used by GUINEA-PIG
(see the Handbook of Accelerator Physics and Engineering, sec. 2.5.1).
The classical-radius and Compton-wavelength scales assume electrons or
positrons.
*/
package synrad

import (
	"math"

	"github.com/phil-mansfield/gobeambeam/phys"
	"github.com/phil-mansfield/gobeambeam/rand"
)

// Radiator is the view of a tracked particle that the samplers need. Energy
// is the total energy in eV, Gamma the relativistic factor, and AddToEnergy
// shifts the energy by de (eV), updating the longitudinal momentum.
type Radiator interface {
	Energy() float64
	Gamma() float64
	AddToEnergy(de float64)
}

// Sample emits beamstrahlung photons for a particle deflected by the total
// angle fr over the path length dz (so the inverse bending radius is fr/dz).
// Every photon is appended to tab (if tab is non-nil) and its energy
// subtracted from the particle. The summed energy loss in eV is returned.
func Sample(p Radiator, tab *PhotonTable, gen *rand.Generator, fr, dz float64) float64 {
	if fr <= 0 || dz <= 0 {
		return 0
	}

	e := p.Energy()
	gamma := p.Gamma()
	mc2 := e / gamma
	rhoInv := fr / dz

	// Quantum parameter: upsilon = lambdaBar_C gamma^2 / rho.
	lambdaBar := phys.HBar * phys.CLight / (mc2 * phys.QElem)
	upsilon := lambdaBar * gamma * gamma * rhoInv

	// Expected photon count over dz: the classical rate 5 alpha gamma /
	// (2 sqrt(3) rho) with the quantum suppression factor.
	nBar := 5.0 / (2.0 * math.Sqrt(3.0)) * phys.AlphaFine * gamma * fr /
		math.Sqrt(1.0+math.Pow(upsilon, 2.0/3.0))

	n := poisson(gen, nBar)

	loss := 0.0
	for i := 0; i < n; i++ {
		xi := sampleFraction(gen, upsilon)
		eGamma := xi * e
		if eGamma <= 0 || eGamma >= e {
			continue
		}

		if tab != nil {
			tab.Append(Photon{
				PrimaryEnergy:  e,
				PhotonEnergy:   eGamma,
				CriticalEnergy: 1.5 * upsilon * e,
				RhoInv:         rhoInv,
			})
		}

		p.AddToEnergy(-eGamma)
		loss += eGamma

		// Recoil: later photons see the reduced energy.
		e = p.Energy()
		gamma = p.Gamma()
		upsilon = lambdaBar * gamma * gamma * rhoInv
	}

	return loss
}

// sampleFraction draws the photon energy fraction xi = E_gamma / E from the
// quantum synchrotron spectrum. The v^3 substitution absorbs the xi^(-2/3)
// soft-photon divergence so a flat deviate can be used for v, and the
// rejection weight exp(-v^3) supplies the hard-photon cutoff; by
// construction v^3 = xi / (upsilon (1 - xi)).
func sampleFraction(gen *rand.Generator, upsilon float64) float64 {
	for {
		v := gen.Uniform(0, 1)
		v3 := v * v * v
		if gen.Uniform(0, 1) < math.Exp(-v3) {
			return upsilon * v3 / (1.0 + upsilon*v3)
		}
	}
}

// poisson draws from a Poisson distribution with the given mean. Knuth's
// product method is used for small means and a rounded Gaussian above 30,
// where the product method starts to underflow.
func poisson(gen *rand.Generator, mean float64) int {
	if mean <= 0 {
		return 0
	}

	if mean > 30 {
		u1 := gen.Uniform(0, 1)
		u2 := gen.Uniform(0, 1)
		norm := math.Sqrt(-2.0*math.Log(1.0-u1)) * math.Cos(2.0*math.Pi*u2)
		n := int(math.Floor(mean + math.Sqrt(mean)*norm + 0.5))
		if n < 0 {
			n = 0
		}
		return n
	}

	limit := math.Exp(-mean)
	k, prod := 0, 1.0
	for {
		prod *= gen.Uniform(0, 1)
		if prod <= limit {
			return k
		}
		k++
	}
}

// Average applies the expected beamstrahlung loss of a full slice collision:
// nSlice is the slice intensity in real particles, sigmaX and sigmaY the
// principal RMS widths at the collision point and sigmaZ the assumed
// longitudinal spread. The loss in eV is returned after being subtracted
// from the particle.
func Average(p Radiator, nSlice, sigmaX, sigmaY, sigmaZ float64) float64 {
	if nSlice <= 0 || sigmaX+sigmaY <= 0 || sigmaZ <= 0 {
		return 0
	}

	gamma := p.Gamma()
	e := p.Energy()

	upsilonAvg := 5.0 / 6.0 * nSlice * phys.RadiusE * phys.RadiusE * gamma /
		(phys.AlphaFine * sigmaZ * (sigmaX + sigmaY))

	// Mean relative loss, Yokoya-Chen.
	rel := 1.24 * phys.AlphaFine * phys.AlphaFine * sigmaZ /
		(phys.RadiusE * gamma) * upsilonAvg * upsilonAvg /
		((1.0 + math.Pow(1.5*upsilonAvg, 2.0/3.0)) *
			(1.0 + math.Pow(1.5*upsilonAvg, 2.0/3.0)))

	loss := rel * e
	p.AddToEnergy(-loss)
	return loss
}
