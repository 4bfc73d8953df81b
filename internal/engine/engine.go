package engine

import (
	"math/rand"
	"sync"
	"time"
)

// MaxTurns caps battle length: a battle that reaches this many rounds
// without a side being eliminated ends in a draw.
const MaxTurns = 200

// Engine owns the single shared random source used for every random
// choice in battle resolution: round action order, skill choice, target
// choice, damage fluctuation, first-actor pick and random team sampling.
// The source is injectable so tests can seed it; access is serialized
// because HTTP handlers call into the engine concurrently and rand.Rand
// is not safe for concurrent use.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns an engine seeded from the wall clock.
func New() *Engine {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns an engine drawing from the given source. Tests
// pass a fixed-seed source to make battles deterministic.
func NewWithSource(src rand.Source) *Engine {
	return &Engine{rng: rand.New(src)}
}

// Intn draws a uniform int in [0, n).
func (e *Engine) Intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

// Perm draws a uniform permutation of [0, n).
func (e *Engine) Perm(n int) []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Perm(n)
}

func (e *Engine) float64() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64()
}

func (e *Engine) shuffle(n int, swap func(i, j int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rng.Shuffle(n, swap)
}
