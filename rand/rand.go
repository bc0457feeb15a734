/*rand supplies the uniform random number generators used by the radiation
sampler and the tracking manager. The generators are not cryptographically
secure, but they are fast, seedable and safe to use from a single goroutine.
Use one Generator per worker.
*/
package rand

import (
	"math/rand"
	"time"
)

// Algorithm selects the generation algorithm used by a Generator.
type Algorithm int

const (
	// Xorshift is a 64-bit xorshift* generator. It is the fastest of the
	// supplied algorithms and the default choice.
	Xorshift Algorithm = iota
	// Tausworthe is L'Ecuyer's combined LFSR generator, taus88.
	Tausworthe
	// Golang wraps the standard library generator.
	Golang
)

type source interface {
	init(seed uint64)
	next() float64
}

// Generator generates uniform random sequences.
type Generator struct {
	src source
}

// New creates a Generator which uses the given algorithm and seed.
func New(algo Algorithm, seed uint64) *Generator {
	gen := &Generator{}
	switch algo {
	case Xorshift:
		gen.src = &xorshift{}
	case Tausworthe:
		gen.src = &tausworthe{}
	case Golang:
		gen.src = &golang{}
	default:
		panic("Unrecognized generation algorithm.")
	}
	gen.src.init(seed)
	return gen
}

// NewTimeSeed creates a Generator seeded with the current time.
func NewTimeSeed(algo Algorithm) *Generator {
	return New(algo, uint64(time.Now().UnixNano()))
}

// Uniform returns a value drawn uniformly from [low, high).
func (gen *Generator) Uniform(low, high float64) float64 {
	return low + (high-low)*gen.src.next()
}

// UniformAt fills target with values drawn uniformly from [low, high).
func (gen *Generator) UniformAt(low, high float64, target []float64) {
	for i := range target {
		target[i] = gen.Uniform(low, high)
	}
}

type xorshift struct {
	state uint64
}

func (xor *xorshift) init(seed uint64) {
	// A zero state would stay zero forever.
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	xor.state = seed
}

func (xor *xorshift) next() float64 {
	x := xor.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	xor.state = x
	return float64(x*2685821657736338717>>11) / (1 << 53)
}

type tausworthe struct {
	s1, s2, s3 uint32
}

func (tau *tausworthe) init(seed uint64) {
	// The three components need to start above the taus88 minima.
	tau.s1 = uint32(seed) | 0x10
	tau.s2 = uint32(seed>>16) | 0x10
	tau.s3 = uint32(seed>>32) | 0x20
}

func (tau *tausworthe) step() uint32 {
	b := ((tau.s1 << 13) ^ tau.s1) >> 19
	tau.s1 = ((tau.s1 & 4294967294) << 12) ^ b
	b = ((tau.s2 << 2) ^ tau.s2) >> 25
	tau.s2 = ((tau.s2 & 4294967288) << 4) ^ b
	b = ((tau.s3 << 3) ^ tau.s3) >> 11
	tau.s3 = ((tau.s3 & 4294967280) << 17) ^ b
	return tau.s1 ^ tau.s2 ^ tau.s3
}

func (tau *tausworthe) next() float64 {
	hi := uint64(tau.step())
	lo := uint64(tau.step())
	return float64((hi<<32|lo)>>11) / (1 << 53)
}

type golang struct {
	gen *rand.Rand
}

func (gol *golang) init(seed uint64) {
	gol.gen = rand.New(rand.NewSource(int64(seed)))
}

func (gol *golang) next() float64 {
	return gol.gen.Float64()
}
