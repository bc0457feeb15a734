/*slicer turns a set of strong-beam macroparticles into the per-slice
statistics table that the beam-beam element consumes: longitudinal binning,
centroids, intensities and the ten correlated second moments of
(x, px, y, py) per bin. Bins are emitted head to tail, i.e. from the largest
zeta edge downward, matching the order the element visits them in.
*/
package slicer

import (
	"math"
	"sort"

	"github.com/phil-mansfield/gobeambeam"
)

// Slicer bins particles into fixed longitudinal slices.
type Slicer struct {
	// edges in increasing order; bin i spans [edges[i], edges[i+1]).
	edges []float64
}

// New creates a slicer from a strictly increasing sequence of bin edges.
func New(binEdges []float64) *Slicer {
	if len(binEdges) < 2 {
		panic("Need at least two bin edges.")
	}
	for i := 1; i < len(binEdges); i++ {
		if binEdges[i] <= binEdges[i-1] {
			panic("Bin edges must be strictly increasing.")
		}
	}

	edges := make([]float64, len(binEdges))
	copy(edges, binEdges)
	return &Slicer{edges: edges}
}

// Uniform creates a slicer with n equal bins spanning [zMin, zMax).
func Uniform(zMin, zMax float64, n int) *Slicer {
	if n <= 0 {
		panic("Need a positive number of bins.")
	}
	edges := make([]float64, n+1)
	dz := (zMax - zMin) / float64(n)
	for i := range edges {
		edges[i] = zMin + dz*float64(i)
	}
	edges[n] = zMax
	return &Slicer{edges: edges}
}

// NumSlices returns the number of bins.
func (sl *Slicer) NumSlices() int { return len(sl.edges) - 1 }

// bin returns the bin index of zeta, or -1 when it falls outside the edges.
func (sl *Slicer) bin(zeta float64) int {
	if zeta < sl.edges[0] || zeta >= sl.edges[len(sl.edges)-1] {
		return -1
	}
	// Smallest i with edges[i] >= zeta; step back unless zeta sits
	// exactly on that edge.
	i := sort.SearchFloat64s(sl.edges, zeta)
	if i < len(sl.edges) && sl.edges[i] == zeta {
		return i
	}
	return i - 1
}

// ComputeMoments bins parts and returns one element slice per bin, ordered
// head to tail. intensityPerMacro scales macroparticle counts to real
// particles (bunch intensity / macroparticle count). weights may be nil for
// equally weighted macroparticles; otherwise it must be as long as parts.
//
// Bins with fewer than one particle get zeroed statistics; the element skips
// them through the population gate rather than through NaNs.
func (sl *Slicer) ComputeMoments(
	parts []gobeambeam.Particle, weights []float64, intensityPerMacro float64,
) []gobeambeam.Slice {
	if weights != nil && len(weights) != len(parts) {
		panic("Weight and particle counts are unequal.")
	}

	n := sl.NumSlices()
	slices := make([]gobeambeam.Slice, n)

	idxs := make([][]int, n)
	for i := range parts {
		b := sl.bin(parts[i].Zeta)
		if b >= 0 {
			idxs[b] = append(idxs[b], i)
		}
	}

	for b := 0; b < n; b++ {
		out := &slices[b]
		out.ZetaBinWidth = sl.edges[b+1] - sl.edges[b]
		out.NumMacroparticles = int64(len(idxs[b]))

		if len(idxs[b]) == 0 {
			continue
		}

		xs := make([]float64, len(idxs[b]))
		pxs := make([]float64, len(idxs[b]))
		ys := make([]float64, len(idxs[b]))
		pys := make([]float64, len(idxs[b]))
		zetas := make([]float64, len(idxs[b]))
		var ws []float64
		if weights != nil {
			ws = make([]float64, len(idxs[b]))
		}

		wSum := 0.0
		for j, i := range idxs[b] {
			xs[j] = parts[i].X
			pxs[j] = parts[i].Px
			ys[j] = parts[i].Y
			pys[j] = parts[i].Py
			zetas[j] = parts[i].Zeta
			if weights != nil {
				ws[j] = weights[i]
				wSum += weights[i]
			} else {
				wSum += 1
			}
		}

		out.NumParticles = intensityPerMacro * wSum

		out.XCenter, _ = MeanAndStd(xs, ws)
		out.YCenter, _ = MeanAndStd(ys, ws)
		out.ZetaCenter, _ = MeanAndStd(zetas, ws)

		pxMean, _ := MeanAndStd(pxs, ws)
		pyMean, _ := MeanAndStd(pys, ws)

		out.Moments.Sig11 = covariance(xs, xs, out.XCenter, out.XCenter, ws)
		out.Moments.Sig12 = covariance(xs, pxs, out.XCenter, pxMean, ws)
		out.Moments.Sig13 = covariance(xs, ys, out.XCenter, out.YCenter, ws)
		out.Moments.Sig14 = covariance(xs, pys, out.XCenter, pyMean, ws)
		out.Moments.Sig22 = covariance(pxs, pxs, pxMean, pxMean, ws)
		out.Moments.Sig23 = covariance(pxs, ys, pxMean, out.YCenter, ws)
		out.Moments.Sig24 = covariance(pxs, pys, pxMean, pyMean, ws)
		out.Moments.Sig33 = covariance(ys, ys, out.YCenter, out.YCenter, ws)
		out.Moments.Sig34 = covariance(ys, pys, out.YCenter, pyMean, ws)
		out.Moments.Sig44 = covariance(pys, pys, pyMean, pyMean, ws)
	}

	// Head to tail: the head of the beam is at the largest zeta.
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		slices[i], slices[j] = slices[j], slices[i]
	}

	return slices
}

// MeanAndStd returns the weighted mean and standard deviation of xs.
// weights may be nil for equal weighting.
func MeanAndStd(xs, weights []float64) (mean, std float64) {
	if len(xs) == 0 {
		return math.NaN(), math.NaN()
	}
	if weights != nil && len(weights) != len(xs) {
		panic("Weight and value counts are unequal.")
	}

	wSum, mSum := 0.0, 0.0
	for i, x := range xs {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		wSum += w
		mSum += w * x
	}
	mean = mSum / wSum

	vSum := 0.0
	for i, x := range xs {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		vSum += w * (x - mean) * (x - mean)
	}

	return mean, math.Sqrt(vSum / wSum)
}

// covariance returns the weighted covariance of xs and ys around the given
// means.
func covariance(xs, ys []float64, xMean, yMean float64, weights []float64) float64 {
	wSum, cSum := 0.0, 0.0
	for i := range xs {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		wSum += w
		cSum += w * (xs[i] - xMean) * (ys[i] - yMean)
	}
	return cSum / wSum
}
