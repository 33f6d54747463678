// Package core provides fundamental types for the gridtoken world.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coord identifies one cell of the infinite integer grid.
type Coord struct {
	I, J int // Row and column index
}

// C is a shorthand constructor for Coord.
func C(i, j int) Coord {
	return Coord{I: i, J: j}
}

// Key returns the canonical string form "i,j".
// The comma separator keeps differently-signed coordinates unambiguous.
func (c Coord) Key() string {
	return strconv.Itoa(c.I) + "," + strconv.Itoa(c.J)
}

// ParseKey parses a canonical "i,j" key back into a Coord.
func ParseKey(key string) (Coord, error) {
	sep := strings.IndexByte(key, ',')
	if sep < 0 {
		return Coord{}, fmt.Errorf("core: invalid coordinate key %q", key)
	}
	i, err := strconv.Atoi(key[:sep])
	if err != nil {
		return Coord{}, fmt.Errorf("core: invalid coordinate key %q: %w", key, err)
	}
	j, err := strconv.Atoi(key[sep+1:])
	if err != nil {
		return Coord{}, fmt.Errorf("core: invalid coordinate key %q: %w", key, err)
	}
	return Coord{I: i, J: j}, nil
}

// Chebyshev returns the Chebyshev (chessboard) distance to another coordinate:
// the maximum of the absolute row and column deltas.
func (c Coord) Chebyshev(other Coord) int {
	return Max(Abs(c.I-other.I), Abs(c.J-other.J))
}

// Point is a continuous position in the same coordinate space as cells.
// The player avatar and the free-view center move in fractional steps.
type Point struct {
	Lat, Lng float64
}

// Add returns the point translated by the given deltas.
func (p Point) Add(dLat, dLng float64) Point {
	return Point{Lat: p.Lat + dLat, Lng: p.Lng + dLng}
}

// Cell returns the grid cell containing this point, rounding each axis
// independently to the nearest integer index.
func (p Point) Cell() Coord {
	return Coord{I: int(math.Round(p.Lat)), J: int(math.Round(p.Lng))}
}

// Region is a rectangular area given by two opposite corners in continuous
// coordinates. The corners may arrive in any order (NW/SE or SE/NW).
type Region struct {
	A, B Point
}

// RegionAround returns the region spanning height×width cells centered on p.
func RegionAround(p Point, height, width int) Region {
	halfLat := float64(height) / 2
	halfLng := float64(width) / 2
	return Region{
		A: Point{Lat: p.Lat - halfLat, Lng: p.Lng - halfLng},
		B: Point{Lat: p.Lat + halfLat, Lng: p.Lng + halfLng},
	}
}

// Bounds returns the inclusive cell-index bounds of the region, normalized so
// minI <= maxI and minJ <= maxJ regardless of corner order. A zero-area region
// yields the single cell containing both corners.
func (r Region) Bounds() (minI, maxI, minJ, maxJ int) {
	a := r.A.Cell()
	b := r.B.Cell()
	return Min(a.I, b.I), Max(a.I, b.I), Min(a.J, b.J), Max(a.J, b.J)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
