package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/phil-mansfield/table"
	plt "github.com/phil-mansfield/pyplot"
)

// Plots the beamstrahlung photon spectrum, dN/d(log E), from a photon table
// written by the tracker.
func main() {
	if len(os.Args) != 4 {
		log.Fatalf("Usage: $ %s photon_file bins plot_file", os.Args[0])
	}

	fname := os.Args[1]
	bins, err := strconv.Atoi(os.Args[2])
	if err != nil {
		log.Fatal(err.Error())
	}
	plotFile := os.Args[3]

	cols, err := readFloat64Cols(fname, []int{1})
	if err != nil {
		log.Fatal(err.Error())
	}
	es := cols[0]
	if len(es) == 0 {
		log.Fatal("Photon table is empty.")
	}

	lows, counts := logHistogram(es, bins)

	plt.Reset()
	plt.Figure()

	plt.Plot(lows, counts, "k", plt.LW(3))

	plt.XLabel(`$E_\gamma$ [eV]`, plt.FontSize(16))
	plt.YLabel(`$dN/d\log{E_\gamma}$`, plt.FontSize(16))
	plt.XScale("log")
	plt.YScale("log")
	plt.Grid(plt.Axis("both"), plt.Which("both"))
	plt.SaveFig(plotFile)

	plt.Execute()
}

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

func logHistogram(es []float64, bins int) (lows, counts []float64) {
	lMin, lMax := math.Log(es[0]), math.Log(es[0])
	for _, e := range es {
		l := math.Log(e)
		if l < lMin {
			lMin = l
		}
		if l > lMax {
			lMax = l
		}
	}

	dl := (lMax - lMin) / float64(bins)
	lows, counts = make([]float64, bins), make([]float64, bins)
	for i := range lows {
		lows[i] = math.Exp(lMin + dl*float64(i))
	}

	for _, e := range es {
		idx := int((math.Log(e) - lMin) / dl)
		if idx == bins {
			idx--
		}
		counts[idx] += 1 / dl
	}

	return lows, counts
}
