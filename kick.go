package gobeambeam

import (
	"math"

	"github.com/phil-mansfield/gobeambeam/fields"
	"github.com/phil-mansfield/gobeambeam/phys"
	"github.com/phil-mansfield/gobeambeam/rand"
	"github.com/phil-mansfield/gobeambeam/sigma"
	"github.com/phil-mansfield/gobeambeam/synrad"
)

// The assumed longitudinal spread of the strong beam used by the averaged
// beamstrahlung model, in m.
const averageBeamstrahlungSigmaZ = 0.0121

// synchrobeamKick applies the synchro-beam kick of one strong slice to the
// boosted coordinates pointed to by x through pzeta. p supplies the
// reference charge and momentum and receives the radiative energy loss when
// beamstrahlung is on; at the time of the call p.PZeta must equal *pzeta.
//
// The update is Hirata's second-order recursion: the longitudinal kick uses
// the pre-kick transverse momenta plus half the transverse kick, and the
// positions are pulled back by the drift to the collision point. The
// operation order below is part of the method and must not be rearranged.
func (el *Element) synchrobeamKick(
	p *Particle, sl *Slice, gen *rand.Generator,
	x, px, y, py, zeta, pzeta *float64,
) {
	// Force scaling factor: both charges in C, reference rigidity P0 c.
	p0 := p.P0c / phys.CLight * phys.QElem
	ksl := sl.NumParticles * phys.QElem * el.OtherBeamQ0 *
		phys.QElem * p.Q0 / (p0 * phys.CLight)

	// Collision point: the longitudinal position where a free drift puts
	// particle and slice centroid at the same place.
	s := 0.5 * (*zeta - sl.ZetaCenter)

	// Strong-slice shape at the collision point.
	prop := sigma.Propagate(sl.Moments, s, el.ThresholdSingular, true)

	// Transverse offset from the slice centroid after drifting to s.
	xBar := *x + *px*s - sl.XCenter
	yBar := *y + *py*s - sl.YCenter

	// Same offset in the uncoupled frame, and its s derivative.
	xBarHat := xBar*prop.CosTheta + yBar*prop.SinTheta
	yBarHat := -xBar*prop.SinTheta + yBar*prop.CosTheta

	dsXBarHat := xBar*prop.DSCosTheta + yBar*prop.DSSinTheta
	dsYBarHat := -xBar*prop.DSSinTheta + yBar*prop.DSCosTheta

	sigX := math.Sqrt(prop.Sig11Hat)
	sigY := math.Sqrt(prop.Sig33Hat)

	ex, ey := fields.ExEyGauss(xBarHat, yBarHat, sigX, sigY, el.MinSigmaDiff)
	gx, gy := fields.GxGy(xBarHat, yBarHat, sigX, sigY, el.MinSigmaDiff, ex, ey)

	fxHat := ksl * ex
	fyHat := ksl * ey
	gxHat := ksl * gx
	gyHat := ksl * gy

	// Back to the coupled frame.
	fx := fxHat*prop.CosTheta - fyHat*prop.SinTheta
	fy := fxHat*prop.SinTheta + fyHat*prop.CosTheta

	// Longitudinal kick from the s dependence of offset and widths.
	fz := 0.5 * (fxHat*dsXBarHat + fyHat*dsYBarHat +
		gxHat*prop.DSSig11Hat + gyHat*prop.DSSig33Hat)

	switch el.Beamstrahlung {
	case BeamstrahlungQuantum:
		// Total deflection angle, bent over half the slice bin.
		fr := math.Hypot(fx, fy) * p.Rpp()
		dz := 0.5 * sl.ZetaBinWidth
		synrad.Sample(p, el.Photons, gen, fr, dz)
		// The sampler rescaled the particle's momentum.
		*pzeta = p.PZeta
	case BeamstrahlungAverage:
		synrad.Average(p, sl.NumParticles, sigX, sigY,
			averageBeamstrahlungSigmaZ)
		*pzeta = p.PZeta
	}

	*pzeta = *pzeta + fz + 0.5*(fx*(*px+0.5*fx)+fy*(*py+0.5*fy))
	*x = *x - s*fx
	*px = *px + fx
	*y = *y - s*fy
	*py = *py + fy
}
