package synrad

import (
	"sync/atomic"
)

// Photon is one emitted-photon record. Energies are in eV; PrimaryEnergy is
// the energy of the emitting particle just before the emission and RhoInv
// the inverse bending radius of the deflection, in 1/m.
type Photon struct {
	PrimaryEnergy  float64
	PhotonEnergy   float64
	CriticalEnergy float64
	RhoInv         float64
}

// PhotonTable is a fixed-capacity append-only record of emitted photons.
// Appends are safe from concurrent goroutines: the slot index is advanced
// atomically and records past the capacity are dropped rather than blocking
// the tracking that produced them.
type PhotonTable struct {
	records []Photon
	next    int64
}

// NewPhotonTable creates a table with room for capacity records.
func NewPhotonTable(capacity int) *PhotonTable {
	if capacity <= 0 {
		panic("Photon table capacity must be positive.")
	}
	return &PhotonTable{records: make([]Photon, capacity)}
}

// Append stores ph in the next free slot and reports whether there was one.
func (tab *PhotonTable) Append(ph Photon) bool {
	idx := atomic.AddInt64(&tab.next, 1) - 1
	if idx >= int64(len(tab.records)) {
		return false
	}
	tab.records[idx] = ph
	return true
}

// Len returns the number of stored records.
func (tab *PhotonTable) Len() int {
	n := atomic.LoadInt64(&tab.next)
	if n > int64(len(tab.records)) {
		n = int64(len(tab.records))
	}
	return int(n)
}

// Dropped returns the number of appends that did not fit.
func (tab *PhotonTable) Dropped() int {
	n := atomic.LoadInt64(&tab.next)
	if n <= int64(len(tab.records)) {
		return 0
	}
	return int(n - int64(len(tab.records)))
}

// Photons returns the stored records. It must not be called concurrently
// with Append.
func (tab *PhotonTable) Photons() []Photon {
	return tab.records[:tab.Len()]
}
