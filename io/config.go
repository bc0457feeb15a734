/*io reads the tracking configuration and the particle and slice tables, and
writes the tracked coordinates and photon records back out. Config files use
the gcfg INI dialect; tables are whitespace-separated text columns.
*/
package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"
)

const (
	ExampleTrackingFile = `[Tracking]

#######################
# Required Parameters #
#######################

# Table of weak-beam macroparticles to track. Columns:
# x px y py zeta pzeta
Particles = path/to/weak.txt

# File the kicked coordinates will be written to, same columns.
Output = path/to/output.txt

# Reference momentum in eV, rest energy in eV and charge in units of e of
# the tracked beam.
P0c = 182.5e9
Mass0 = 0.511e6
Q0 = -1

#######################
# Optional Parameters #
#######################

# File the beamstrahlung photon records are written to. Ignored unless the
# element samples photons.
# PhotonOutput = path/to/photons.txt

# Number of tracking goroutines. Default is one per CPU.
# Workers = 0

# Seed for the photon sampling. Default seeds from the clock.
# Seed = 0

# Location to write log statements to. Default is stderr.
# LogFile = log.out`

	ExampleElementFile = `[Element]

#######################
# Required Parameters #
#######################

# Half crossing angle and crossing-plane rotation, in rad.
Phi = 15e-3
Alpha = 0

# Charge of the strong beam in units of e.
OtherBeamQ0 = 1

# Either a precomputed slice table (columns: numParticles numMacroparticles
# xCenter yCenter zetaCenter zetaBinWidth Sig11 Sig12 Sig13 Sig14 Sig22
# Sig23 Sig24 Sig33 Sig34 Sig44) ...
SliceTable = path/to/slices.txt

# ... or a strong-beam particle table (columns as in [Tracking]) to be
# sliced here. StrongIntensity is the bunch intensity in real particles and
# the slices span [ZMin, ZMax).
# StrongParticles = path/to/strong.txt
# StrongIntensity = 2.3e11
# NumSlices = 100
# ZMin = -0.00762
# ZMax = 0.00762

#######################
# Optional Parameters #
#######################

# Width-difference guard for the round-beam field formula and the
# degeneracy guard for the moment diagonalization.
# MinSigmaDiff = 1e-10
# ThresholdSingular = 1e-28

# One of [ Off | Quantum | Average ].
# Beamstrahlung = Off

# Capacity of the photon record table, Quantum mode only.
# PhotonCapacity = 100000

# Closed-orbit shifts removed before the boost and restored after it.
# RefShiftX = 0
# RefShiftPx = 0
# RefShiftY = 0
# RefShiftPy = 0
# RefShiftZeta = 0
# RefShiftPZeta = 0
# OtherBeamShiftX = 0
# OtherBeamShiftPx = 0
# OtherBeamShiftY = 0
# OtherBeamShiftPy = 0
# OtherBeamShiftZeta = 0
# OtherBeamShiftPZeta = 0

# Dipolar artifact subtracted after the interaction.
# PostSubtractX = 0
# PostSubtractPx = 0
# PostSubtractY = 0
# PostSubtractPy = 0
# PostSubtractZeta = 0
# PostSubtractPZeta = 0`
)

type TrackingConfig struct {
	// Required
	Particles, Output string
	P0c, Mass0, Q0    float64

	// Optional
	PhotonOutput string
	Workers      int
	Seed         int
	LogFile      string
}

func (con *TrackingConfig) ValidParticles() bool {
	return con.Particles != ""
}
func (con *TrackingConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *TrackingConfig) ValidP0c() bool {
	return con.P0c > 0
}
func (con *TrackingConfig) ValidMass0() bool {
	return con.Mass0 > 0
}
func (con *TrackingConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

type ElementConfig struct {
	// Required
	Phi, Alpha, OtherBeamQ0 float64

	// Exactly one of these two sources.
	SliceTable      string
	StrongParticles string

	// Required with StrongParticles.
	StrongIntensity float64
	NumSlices       int
	ZMin, ZMax      float64

	// Optional
	MinSigmaDiff      float64
	ThresholdSingular float64
	Beamstrahlung     string
	PhotonCapacity    int

	RefShiftX, RefShiftPx, RefShiftY    float64
	RefShiftPy, RefShiftZeta            float64
	RefShiftPZeta                       float64
	OtherBeamShiftX, OtherBeamShiftPx   float64
	OtherBeamShiftY, OtherBeamShiftPy   float64
	OtherBeamShiftZeta                  float64
	OtherBeamShiftPZeta                 float64
	PostSubtractX, PostSubtractPx       float64
	PostSubtractY, PostSubtractPy       float64
	PostSubtractZeta, PostSubtractPZeta float64
}

func (con *ElementConfig) ValidSource() bool {
	return (con.SliceTable != "") != (con.StrongParticles != "")
}

func (con *ElementConfig) ValidStrongParticles() bool {
	return con.StrongIntensity > 0 && con.NumSlices > 0 &&
		con.ZMin < con.ZMax
}

func (con *ElementConfig) ValidBeamstrahlung() bool {
	switch strings.ToLower(con.Beamstrahlung) {
	case "", "off", "quantum", "average":
		return true
	}
	return false
}

type ConfigWrapper struct {
	Tracking TrackingConfig
	Element  ElementConfig
}

// DefaultConfigWrapper returns a wrapper with every optional parameter at
// its default.
func DefaultConfigWrapper() *ConfigWrapper {
	wrap := &ConfigWrapper{}
	wrap.Tracking.Q0 = -1
	wrap.Element.MinSigmaDiff = 1e-10
	wrap.Element.ThresholdSingular = 1e-28
	wrap.Element.PhotonCapacity = 100000
	return wrap
}

// ReadConfig reads and validates a combined [Tracking] + [Element] config
// file.
func ReadConfig(fname string) (*ConfigWrapper, error) {
	wrap := DefaultConfigWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}

	con := &wrap.Tracking
	switch {
	case !con.ValidParticles():
		return nil, fmt.Errorf("Tracking.Particles must be set.")
	case !con.ValidOutput():
		return nil, fmt.Errorf("Tracking.Output must be set.")
	case !con.ValidP0c():
		return nil, fmt.Errorf("Tracking.P0c must be positive.")
	case !con.ValidMass0():
		return nil, fmt.Errorf("Tracking.Mass0 must be positive.")
	}

	el := &wrap.Element
	switch {
	case !el.ValidSource():
		return nil, fmt.Errorf(
			"Exactly one of Element.SliceTable and " +
				"Element.StrongParticles must be set.",
		)
	case el.StrongParticles != "" && !el.ValidStrongParticles():
		return nil, fmt.Errorf(
			"Element.StrongParticles needs positive StrongIntensity " +
				"and NumSlices and ZMin < ZMax.",
		)
	case !el.ValidBeamstrahlung():
		return nil, fmt.Errorf(
			"Element.Beamstrahlung must be one of [ Off | Quantum | "+
				"Average ], not '%s'.", el.Beamstrahlung,
		)
	}

	return wrap, nil
}
