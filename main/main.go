package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/phil-mansfield/gobeambeam"
	"github.com/phil-mansfield/gobeambeam/io"
	"github.com/phil-mansfield/gobeambeam/slicer"
	"github.com/phil-mansfield/gobeambeam/synrad"
)

func main() {
	var (
		config        string
		exampleConfig string
	)

	flag.StringVar(
		&config, "Config", "",
		"Combined [Tracking] + [Element] configuration file.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Tracking' and 'Element'.",
	)

	flag.Parse()

	switch {
	case exampleConfig != "":
		switch exampleConfig {
		case "Tracking":
			fmt.Println(io.ExampleTrackingFile)
		case "Element":
			fmt.Println(io.ExampleElementFile)
		default:
			log.Fatalf(
				"Unrecognized -ExampleConfig argument, '%s'.", exampleConfig,
			)
		}
	case config != "":
		trackMain(config)
	default:
		log.Fatal("Must supply either -Config or -ExampleConfig.")
	}
}

func trackMain(config string) {
	wrap, err := io.ReadConfig(config)
	if err != nil {
		log.Fatal(err.Error())
	}
	con, elCon := &wrap.Tracking, &wrap.Element

	var logFile *os.File
	if con.ValidLogFile() {
		logFile, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	parts, err := io.ReadParticles(con.Particles, con.Q0, con.P0c, con.Mass0)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Read %d particles from %s.", len(parts), con.Particles)

	el := buildElement(elCon, con)

	t0 := time.Now()
	man := gobeambeam.NewManager(el, con.Workers, uint64(con.Seed), true)
	man.TrackAll(parts)
	log.Printf("Tracking took %.4g seconds.", time.Since(t0).Seconds())

	if err = io.WriteParticles(con.Output, parts); err != nil {
		log.Fatal(err.Error())
	}

	if el.Photons != nil && con.PhotonOutput != "" {
		if el.Photons.Dropped() > 0 {
			log.Printf("Photon table overflowed: dropped %d of %d records.",
				el.Photons.Dropped(), el.Photons.Dropped()+el.Photons.Len())
		}
		err = io.WritePhotons(con.PhotonOutput, el.Photons.Photons())
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func buildElement(
	elCon *io.ElementConfig, con *io.TrackingConfig,
) *gobeambeam.Element {
	var slices []gobeambeam.Slice
	var err error

	if elCon.SliceTable != "" {
		slices, err = io.ReadSlices(elCon.SliceTable)
		if err != nil {
			log.Fatal(err.Error())
		}
	} else {
		strong, err := io.ReadParticles(
			elCon.StrongParticles, elCon.OtherBeamQ0, con.P0c, con.Mass0,
		)
		if err != nil {
			log.Fatal(err.Error())
		}

		sl := slicer.Uniform(elCon.ZMin, elCon.ZMax, elCon.NumSlices)
		perMacro := elCon.StrongIntensity / float64(len(strong))
		slices = sl.ComputeMoments(strong, nil, perMacro)
	}

	el := gobeambeam.NewElement(
		elCon.Phi, elCon.Alpha, elCon.OtherBeamQ0, slices,
	)
	el.MinSigmaDiff = elCon.MinSigmaDiff
	el.ThresholdSingular = elCon.ThresholdSingular

	switch strings.ToLower(elCon.Beamstrahlung) {
	case "", "off":
		el.Beamstrahlung = gobeambeam.BeamstrahlungOff
	case "quantum":
		el.Beamstrahlung = gobeambeam.BeamstrahlungQuantum
		el.Photons = synrad.NewPhotonTable(elCon.PhotonCapacity)
	case "average":
		el.Beamstrahlung = gobeambeam.BeamstrahlungAverage
	}

	el.RefShift = gobeambeam.Shift{
		X: elCon.RefShiftX, Px: elCon.RefShiftPx,
		Y: elCon.RefShiftY, Py: elCon.RefShiftPy,
		Zeta: elCon.RefShiftZeta, PZeta: elCon.RefShiftPZeta,
	}
	el.OtherBeamShift = gobeambeam.Shift{
		X: elCon.OtherBeamShiftX, Px: elCon.OtherBeamShiftPx,
		Y: elCon.OtherBeamShiftY, Py: elCon.OtherBeamShiftPy,
		Zeta: elCon.OtherBeamShiftZeta, PZeta: elCon.OtherBeamShiftPZeta,
	}
	el.PostSubtract = gobeambeam.Shift{
		X: elCon.PostSubtractX, Px: elCon.PostSubtractPx,
		Y: elCon.PostSubtractY, Py: elCon.PostSubtractPy,
		Zeta: elCon.PostSubtractZeta, PZeta: elCon.PostSubtractPZeta,
	}

	return el
}
