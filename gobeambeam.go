/*gobeambeam tracks the macroparticles of a "weak" beam through the
electromagnetic field of an opposing "strong" beam at a crossing-angle
interaction point. The strong beam is modeled as a fixed sequence of
longitudinal slices with Gaussian transverse charge distributions; each
macroparticle is boosted into the collision frame, kicked once per slice
with Hirata's synchro-beam map, and boosted back. Beamstrahlung can be
sampled per photon or applied as an averaged loss.

The Element type holds the shared configuration and the slice table;
Element.Track processes one particle and Manager fans tracking out across
worker goroutines. Slices of a single particle are strictly sequential;
distinct particles never share mutable state.
*/
package gobeambeam

import (
	"log"
	"runtime"

	"github.com/phil-mansfield/gobeambeam/rand"
)

// Manager tracks many particles through one element in parallel. The
// element's configuration and slice table are only read; each worker owns
// its own random generator, so photon sampling stays race free and, for a
// fixed seed and worker count, reproducible.
type Manager struct {
	el      *Element
	workers int
	gens    []*rand.Generator

	log bool
}

// NewManager creates a manager running the given number of workers, or one
// per CPU if workers is not positive. seed fixes the photon-sampling
// sequences; pass 0 for a time-based seed.
func NewManager(el *Element, workers int, seed uint64, logFlag bool) *Manager {
	man := &Manager{el: el, log: logFlag}

	man.workers = workers
	if man.workers <= 0 {
		man.workers = runtime.NumCPU()
	}

	man.gens = make([]*rand.Generator, man.workers)
	for i := range man.gens {
		if seed == 0 {
			man.gens[i] = rand.NewTimeSeed(rand.Xorshift)
		} else {
			man.gens[i] = rand.New(rand.Xorshift, seed+uint64(i))
		}
	}

	return man
}

// TrackAll tracks every particle in parts through the element, in parallel
// across the manager's workers.
func (man *Manager) TrackAll(parts []Particle) {
	out := make(chan int, man.workers)

	for id := 0; id < man.workers-1; id++ {
		go man.chanTrack(id, parts, out)
	}
	man.chanTrack(man.workers-1, parts, out)

	for i := 0; i < man.workers; i++ {
		<-out
	}

	if man.log {
		log.Printf("Tracked %d particles over %d slices.",
			len(parts), len(man.el.Slices))
	}
}

func (man *Manager) chanTrack(id int, parts []Particle, out chan<- int) {
	for i := id; i < len(parts); i += man.workers {
		man.el.Track(&parts[i], man.gens[id])
	}
	out <- id
}
