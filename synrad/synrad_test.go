package synrad

import (
	"math"
	"testing"

	"github.com/phil-mansfield/gobeambeam/rand"
)

// testRadiator is a minimal Radiator with a fixed rest energy, so energy
// bookkeeping is exactly additive.
type testRadiator struct {
	e, mc2 float64
}

func (r *testRadiator) Energy() float64 { return r.e }
func (r *testRadiator) Gamma() float64  { return r.e / r.mc2 }

func (r *testRadiator) AddToEnergy(de float64) { r.e += de }

func fccRadiator() *testRadiator {
	return &testRadiator{e: 182.5e9, mc2: 0.511e6}
}

func TestSampleEnergyBookkeeping(t *testing.T) {
	gen := rand.New(rand.Xorshift, 7)
	tab := NewPhotonTable(1 << 16)

	// Deflection strong enough for a few photons per call.
	fr, dz := 3e-4, 5e-4

	totalLoss := 0.0
	for i := 0; i < 200; i++ {
		r := fccRadiator()
		e0 := r.Energy()
		loss := Sample(r, tab, gen, fr, dz)

		if math.Abs((e0-r.Energy())-loss) > 1e-6*e0 {
			t.Fatalf("returned loss %g != energy drop %g",
				loss, e0-r.Energy())
		}
		if loss < 0 || r.Energy() <= 0 {
			t.Fatalf("unphysical state: loss=%g energy=%g", loss, r.Energy())
		}
		totalLoss += loss
	}

	if totalLoss <= 0 {
		t.Fatalf("no photons over 200 samples at fr=%g", fr)
	}

	sum := 0.0
	for _, ph := range tab.Photons() {
		if ph.PhotonEnergy <= 0 || ph.PhotonEnergy >= ph.PrimaryEnergy {
			t.Errorf("unphysical photon: %+v", ph)
		}
		if ph.RhoInv != fr/dz {
			t.Errorf("photon RhoInv -> %g instead of %g", ph.RhoInv, fr/dz)
		}
		sum += ph.PhotonEnergy
	}
	if math.Abs(sum-totalLoss) > 1e-6*totalLoss {
		t.Errorf("table energies sum to %g, losses to %g", sum, totalLoss)
	}
}

func TestSampleSeededReproducibility(t *testing.T) {
	run := func(seed uint64) (float64, int) {
		gen := rand.New(rand.Xorshift, seed)
		tab := NewPhotonTable(1 << 12)
		loss := 0.0
		for i := 0; i < 50; i++ {
			r := fccRadiator()
			loss += Sample(r, tab, gen, 3e-4, 5e-4)
		}
		return loss, tab.Len()
	}

	loss1, n1 := run(11)
	loss2, n2 := run(11)
	if loss1 != loss2 || n1 != n2 {
		t.Errorf("same seed diverged: (%g, %d) != (%g, %d)",
			loss1, n1, loss2, n2)
	}

	loss3, _ := run(12)
	if loss1 == loss3 && loss1 != 0 {
		t.Errorf("different seeds produced identical losses %g", loss1)
	}
}

func TestSampleDegenerateInputs(t *testing.T) {
	gen := rand.New(rand.Xorshift, 1)
	r := fccRadiator()
	e0 := r.Energy()

	if loss := Sample(r, nil, gen, 0, 5e-4); loss != 0 {
		t.Errorf("zero deflection radiated %g", loss)
	}
	if loss := Sample(r, nil, gen, 3e-4, 0); loss != 0 {
		t.Errorf("zero path length radiated %g", loss)
	}
	if r.Energy() != e0 {
		t.Errorf("degenerate sample changed the energy: %g -> %g",
			e0, r.Energy())
	}
}

func TestSampleNilTable(t *testing.T) {
	// A missing table suppresses the records, not the loss.
	gen := rand.New(rand.Xorshift, 7)
	loss := 0.0
	for i := 0; i < 200; i++ {
		r := fccRadiator()
		loss += Sample(r, nil, gen, 3e-4, 5e-4)
	}
	if loss <= 0 {
		t.Errorf("no loss without a table")
	}
}

func TestAverage(t *testing.T) {
	r := fccRadiator()
	e0 := r.Energy()

	loss := Average(r, 1e11, 1e-5, 1e-5, 0.0121)
	if loss <= 0 {
		t.Fatalf("averaged loss -> %g", loss)
	}
	if math.Abs((e0-r.Energy())-loss) > 1e-9*e0 {
		t.Errorf("returned loss %g != energy drop %g", loss, e0-r.Energy())
	}
	if loss >= e0 {
		t.Errorf("averaged loss %g exceeds the particle energy %g", loss, e0)
	}

	// The loss grows with the slice intensity.
	r2 := fccRadiator()
	loss2 := Average(r2, 2e11, 1e-5, 1e-5, 0.0121)
	if loss2 <= loss {
		t.Errorf("doubling the intensity shrank the loss: %g -> %g",
			loss, loss2)
	}
}

func TestAverageDegenerateInputs(t *testing.T) {
	r := fccRadiator()
	e0 := r.Energy()

	if loss := Average(r, 0, 1e-5, 1e-5, 0.0121); loss != 0 {
		t.Errorf("zero intensity lost %g", loss)
	}
	if loss := Average(r, 1e11, 0, 0, 0.0121); loss != 0 {
		t.Errorf("zero width lost %g", loss)
	}
	if r.Energy() != e0 {
		t.Errorf("degenerate average changed the energy")
	}
}

func TestPoissonMean(t *testing.T) {
	gen := rand.New(rand.Xorshift, 3)

	means := []float64{0.5, 3, 20, 100}
	for i, mean := range means {
		n := 20000
		sum := 0
		for j := 0; j < n; j++ {
			sum += poisson(gen, mean)
		}
		got := float64(sum) / float64(n)

		// Standard error of the sample mean is sqrt(mean / n).
		tol := 5 * math.Sqrt(mean/float64(n))
		if math.Abs(got-mean) > tol {
			t.Errorf("%d) poisson(%g) sample mean -> %g", i+1, mean, got)
		}
	}
}

func BenchmarkSample(b *testing.B) {
	gen := rand.New(rand.Xorshift, 7)
	for i := 0; i < b.N; i++ {
		r := fccRadiator()
		Sample(r, nil, gen, 3e-4, 5e-4)
	}
}
