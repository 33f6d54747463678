// Package gen decides, deterministically, which cells of the infinite grid
// spawn a token and at what value. Every answer is a pure function of the
// world seed and the cell coordinate, so the same world regenerates
// identically across sessions and call orders.
package gen

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/vovakirdan/gridtoken/internal/core"
)

// Distinct salts keep the spawn and value draws uncorrelated.
const (
	saltSpawn = "spawn"
	saltValue = "value"
)

// DefaultSpawnProbability is the chance that an untouched cell holds a token.
const DefaultSpawnProbability = 0.15

// DefaultLevels are the base token values generation can place. Higher values
// only ever arise through crafting.
var DefaultLevels = []int{1, 2, 4, 8}

// Generator produces deterministic per-cell spawn decisions.
type Generator struct {
	seed      int64
	spawnProb float64
	levels    []int
}

// New creates a generator for the given world seed. spawnProb must be in
// [0, 1]; levels must be non-empty (callers validate via config).
func New(seed int64, spawnProb float64, levels []int) *Generator {
	return &Generator{
		seed:      seed,
		spawnProb: spawnProb,
		levels:    levels,
	}
}

// Default creates a generator with the standard spawn rate and base levels.
func Default(seed int64) *Generator {
	return New(seed, DefaultSpawnProbability, DefaultLevels)
}

// draw derives a float64 in [0, 1) from (salt, seed, coordinate) using FNV-1a
// over a fixed little-endian encoding. The salt is hashed first so the FNV
// state of the two streams diverges before the coordinates arrive, and the
// sum is passed through mix64 because FNV alone leaves hashes of adjacent
// inputs correlated in the high bits. The top 53 bits of the mixed hash
// become the mantissa, so the result is uniform over representable values.
func (g *Generator) draw(c core.Coord, salt string) float64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(salt))
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(g.seed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(c.I)))
	binary.LittleEndian.PutUint64(buf[16:], uint64(int64(c.J)))
	_, _ = h.Write(buf[:])
	return float64(mix64(h.Sum64())>>11) / float64(1<<53)
}

// mix64 is the splitmix64 finalizer. Full avalanche: every input bit flips
// every output bit with probability 1/2.
func mix64(v uint64) uint64 {
	v ^= v >> 30
	v *= 0xbf58476d1ce4e5b9
	v ^= v >> 27
	v *= 0x94d049bb133111eb
	v ^= v >> 31
	return v
}

// SpawnDecision reports whether the cell spawns a token.
func (g *Generator) SpawnDecision(c core.Coord) bool {
	return g.draw(c, saltSpawn) < g.spawnProb
}

// SpawnLevel returns the token value generated for the cell. Only meaningful
// when SpawnDecision returned true.
func (g *Generator) SpawnLevel(c core.Coord) int {
	idx := int(g.draw(c, saltValue) * float64(len(g.levels)))
	if idx >= len(g.levels) {
		// Should not happen (draw is below 1.0), but guard the index
		idx = len(g.levels) - 1
	}
	return g.levels[idx]
}
