package synrad

import (
	"sync"
	"testing"
)

func TestPhotonTableCapacity(t *testing.T) {
	tab := NewPhotonTable(4)

	for i := 0; i < 4; i++ {
		if !tab.Append(Photon{PhotonEnergy: float64(i)}) {
			t.Fatalf("append %d rejected below capacity", i)
		}
	}
	if tab.Append(Photon{PhotonEnergy: 4}) {
		t.Errorf("append accepted past capacity")
	}

	if tab.Len() != 4 || tab.Dropped() != 1 {
		t.Errorf("Len, Dropped -> %d, %d instead of 4, 1",
			tab.Len(), tab.Dropped())
	}

	for i, ph := range tab.Photons() {
		if ph.PhotonEnergy != float64(i) {
			t.Errorf("record %d -> %g", i, ph.PhotonEnergy)
		}
	}
}

func TestPhotonTableConcurrentAppend(t *testing.T) {
	tab := NewPhotonTable(1000)

	workers, per := 8, 200
	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < per; i++ {
				tab.Append(Photon{PhotonEnergy: float64(w*per + i)})
			}
		}(w)
	}
	wg.Wait()

	if tab.Len() != 1000 {
		t.Errorf("Len -> %d instead of 1000", tab.Len())
	}
	if got := tab.Dropped(); got != workers*per-1000 {
		t.Errorf("Dropped -> %d instead of %d", got, workers*per-1000)
	}

	// Every stored record must be one of the appended ones, no torn slots.
	seen := make(map[float64]bool)
	for _, ph := range tab.Photons() {
		if ph.PhotonEnergy < 0 || ph.PhotonEnergy >= float64(workers*per) {
			t.Errorf("unexpected record %g", ph.PhotonEnergy)
		}
		if seen[ph.PhotonEnergy] {
			t.Errorf("record %g stored twice", ph.PhotonEnergy)
		}
		seen[ph.PhotonEnergy] = true
	}
}

func TestPhotonTablePanicsOnBadCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("NewPhotonTable(0) did not panic")
		}
	}()
	NewPhotonTable(0)
}
