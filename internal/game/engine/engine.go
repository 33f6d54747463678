// Package engine implements the interaction rules of gridtoken: picking up
// tokens, crafting equal tokens into double-value tokens, and detecting the
// win, plus the dual player/free-view movement model.
package engine

import (
	"github.com/vovakirdan/gridtoken/internal/core"
	"github.com/vovakirdan/gridtoken/internal/game/overlay"
	"github.com/vovakirdan/gridtoken/internal/game/world"
)

// Outcome classifies the result of a click on a cell.
type Outcome int

const (
	OutcomeNone      Outcome = iota // Zero value; no click was applied
	PickedUp                        // Token taken into the player's hand
	Crafted                         // Held token merged into a double-value token
	RejectedTooFar                  // Cell outside the interaction radius
	RejectedEmpty                   // Empty-handed click on an empty cell
	RejectedMismatch                // Held token does not match the cell
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case PickedUp:
		return "PickedUp"
	case Crafted:
		return "Crafted"
	case RejectedTooFar:
		return "RejectedTooFar"
	case RejectedEmpty:
		return "RejectedEmpty"
	case RejectedMismatch:
		return "RejectedMismatch"
	default:
		return "Unknown"
	}
}

// Rejected reports whether the outcome left all state untouched.
func (o Outcome) Rejected() bool {
	switch o {
	case RejectedTooFar, RejectedEmpty, RejectedMismatch:
		return true
	}
	return false
}

// Result is the full answer to a click. Value carries the picked-up or
// crafted token value. Won rides alongside a Crafted outcome; it is a
// side-signal, not a separate outcome.
type Result struct {
	Outcome Outcome
	Value   int
	Won     bool
}

// Player is the per-session avatar state. Position is continuous; Held is
// nil when empty-handed. Never persisted — each session starts fresh.
type Player struct {
	Pos  core.Point
	Held *int
}

// Holding returns the held token value and whether a token is held.
func (p *Player) Holding() (int, bool) {
	if p.Held == nil {
		return 0, false
	}
	return *p.Held, true
}

// Engine decides pickup/craft/reject/win outcomes and writes the resulting
// overrides. All writes complete (including persistence) before a Result is
// returned, so a subsequent Resolve observes them.
type Engine struct {
	resolver  *world.Resolver
	overrides *overlay.Store
	radius    int
	target    int
	won       bool
}

// New creates an engine with the given interaction radius and win target.
func New(resolver *world.Resolver, overrides *overlay.Store, radius, target int) *Engine {
	return &Engine{
		resolver:  resolver,
		overrides: overrides,
		radius:    radius,
		target:    target,
	}
}

// Target returns the win target value.
func (e *Engine) Target() int {
	return e.target
}

// Radius returns the interaction radius in cells.
func (e *Engine) Radius() int {
	return e.radius
}

// Won reports whether the win target has been reached this session.
func (e *Engine) Won() bool {
	return e.won
}

// HandleClick applies a click on the given cell for the given player.
// Distance is measured from the player's cell regardless of view mode. A
// non-nil error means the override write could not be persisted; in that case
// no state changed and the Result is zero (Outcome OutcomeNone).
func (e *Engine) HandleClick(c core.Coord, p *Player) (Result, error) {
	if c.Chebyshev(p.Pos.Cell()) > e.radius {
		return Result{Outcome: RejectedTooFar}, nil
	}

	state := e.resolver.Resolve(c)

	held, holding := p.Holding()
	if !holding {
		v, ok := state.Value()
		if !ok {
			return Result{Outcome: RejectedEmpty}, nil
		}
		if err := e.overrides.Set(c, core.Empty()); err != nil {
			return Result{}, err
		}
		p.Held = &v
		return Result{Outcome: PickedUp, Value: v}, nil
	}

	if v, ok := state.Value(); !ok || v != held {
		return Result{Outcome: RejectedMismatch}, nil
	}

	crafted := held * 2
	if err := e.overrides.Set(c, core.Occupied(crafted)); err != nil {
		return Result{}, err
	}
	p.Held = nil

	// Won fires exactly once, on the crossing craft
	won := false
	if crafted >= e.target && !e.won {
		e.won = true
		won = true
	}
	return Result{Outcome: Crafted, Value: crafted, Won: won}, nil
}
