package io

import (
	"fmt"
	"os"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/gobeambeam"
	"github.com/phil-mansfield/gobeambeam/synrad"
)

// readFloat64Cols reads the given columns of a whitespace-separated text
// table. The table package reports failures by panicking, so the panic is
// converted back into an error here.
func readFloat64Cols(file string, colIdxs []int) (cols [][]float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return table.TextFile(file).ReadFloat64s(colIdxs), nil
}

// ReadParticles reads a six-column phase-space table (x px y py zeta pzeta)
// and attaches the given reference charge, momentum and rest energy to every
// particle.
func ReadParticles(
	file string, q0, p0c, mass0 float64,
) ([]gobeambeam.Particle, error) {
	colIdxs := []int{0, 1, 2, 3, 4, 5}
	cols, err := readFloat64Cols(file, colIdxs)
	if err != nil {
		return nil, err
	}

	xs, pxs, ys, pys, zetas, pzetas :=
		cols[0], cols[1], cols[2], cols[3], cols[4], cols[5]

	parts := make([]gobeambeam.Particle, len(xs))
	for i := range parts {
		parts[i] = gobeambeam.Particle{
			X: xs[i], Px: pxs[i],
			Y: ys[i], Py: pys[i],
			Zeta: zetas[i], PZeta: pzetas[i],
			Q0: q0, P0c: p0c, Mass0: mass0,
		}
	}

	return parts, nil
}

// ReadSlices reads a sixteen-column slice-statistics table. Columns:
// numParticles numMacroparticles xCenter yCenter zetaCenter zetaBinWidth
// Sig11 Sig12 Sig13 Sig14 Sig22 Sig23 Sig24 Sig33 Sig34 Sig44. Rows are
// slices, head first.
func ReadSlices(file string) ([]gobeambeam.Slice, error) {
	colIdxs := make([]int, 16)
	for i := range colIdxs {
		colIdxs[i] = i
	}
	cols, err := readFloat64Cols(file, colIdxs)
	if err != nil {
		return nil, err
	}

	slices := make([]gobeambeam.Slice, len(cols[0]))
	for i := range slices {
		sl := &slices[i]
		sl.NumParticles = cols[0][i]
		sl.NumMacroparticles = int64(cols[1][i])
		sl.XCenter = cols[2][i]
		sl.YCenter = cols[3][i]
		sl.ZetaCenter = cols[4][i]
		sl.ZetaBinWidth = cols[5][i]

		m := &sl.Moments
		m.Sig11, m.Sig12, m.Sig13, m.Sig14 =
			cols[6][i], cols[7][i], cols[8][i], cols[9][i]
		m.Sig22, m.Sig23, m.Sig24 = cols[10][i], cols[11][i], cols[12][i]
		m.Sig33, m.Sig34 = cols[13][i], cols[14][i]
		m.Sig44 = cols[15][i]
	}

	return slices, nil
}

// WriteParticles writes the phase-space coordinates of parts as a
// six-column table, in the format ReadParticles reads.
func WriteParticles(file string, parts []gobeambeam.Particle) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# x px y py zeta pzeta\n")
	for i := range parts {
		p := &parts[i]
		_, err = fmt.Fprintf(f, "%.17g %.17g %.17g %.17g %.17g %.17g\n",
			p.X, p.Px, p.Y, p.Py, p.Zeta, p.PZeta)
		if err != nil {
			return err
		}
	}

	return nil
}

// WritePhotons writes the emitted-photon records as a four-column table:
// primaryEnergy photonEnergy criticalEnergy rhoInv.
func WritePhotons(file string, photons []synrad.Photon) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# primaryEnergy photonEnergy criticalEnergy rhoInv\n")
	for _, ph := range photons {
		_, err = fmt.Fprintf(f, "%.17g %.17g %.17g %.17g\n",
			ph.PrimaryEnergy, ph.PhotonEnergy, ph.CriticalEnergy, ph.RhoInv)
		if err != nil {
			return err
		}
	}

	return nil
}
