// Package game wires the generator, override store, resolver, interaction
// engine and movement controller into one playable session. The session is
// the single entry point the platform layer talks to: it owns all game state
// and runs every operation to completion synchronously.
package game

import (
	"time"

	"github.com/vovakirdan/gridtoken/internal/config"
	"github.com/vovakirdan/gridtoken/internal/core"
	"github.com/vovakirdan/gridtoken/internal/game/engine"
	"github.com/vovakirdan/gridtoken/internal/game/gen"
	"github.com/vovakirdan/gridtoken/internal/game/overlay"
	"github.com/vovakirdan/gridtoken/internal/game/world"
	"github.com/vovakirdan/gridtoken/internal/scenario"
)

// Params resolves config, scenario preset and CLI flags into the effective
// world parameters for one session.
type Params struct {
	Scenario         scenario.Scenario
	Seed             int64
	SpawnProbability float64
	Levels           []int
	Target           int
	Radius           int
	Step             float64
	ViewportW        int
	ViewportH        int
}

// NewParams merges a scenario preset over the loaded config. flagSeed wins
// over both when non-zero; a zero result falls back to the current time.
func NewParams(cfg config.Config, sc scenario.Scenario, flagSeed int64) Params {
	p := Params{
		Scenario:         sc,
		Seed:             cfg.World.Seed,
		SpawnProbability: cfg.World.SpawnProbability,
		Levels:           cfg.World.Levels,
		Target:           cfg.Rules.Target,
		Radius:           cfg.Rules.Radius,
		Step:             cfg.Rules.Step,
		ViewportW:        cfg.Viewport.Width,
		ViewportH:        cfg.Viewport.Height,
	}
	if sc.Seed != 0 {
		p.Seed = sc.Seed
	}
	if sc.SpawnProbability != 0 {
		p.SpawnProbability = sc.SpawnProbability
	}
	if sc.Target != 0 {
		p.Target = sc.Target
	}
	if sc.Radius != 0 {
		p.Radius = sc.Radius
	}
	if flagSeed != 0 {
		p.Seed = flagSeed
	}
	if p.Seed == 0 {
		p.Seed = time.Now().UnixNano()
	}
	return p
}

// Session is one running game: a deterministic world, its persistent
// overlay, and the player interacting with it.
type Session struct {
	params     Params
	overrides  *overlay.Store
	resolver   *world.Resolver
	engine     *engine.Engine
	controller *engine.Controller

	crafts  int
	started time.Time
}

// NewSession builds a session over the given blob store. It loads the
// scenario's persisted overlay; a corrupt blob fails construction.
func NewSession(p Params, blobs overlay.BlobStore) (*Session, error) {
	store := overlay.New(blobs, p.Scenario.BlobKey())
	if err := store.Load(); err != nil {
		return nil, err
	}

	g := gen.New(p.Seed, p.SpawnProbability, p.Levels)
	resolver := world.NewResolver(store, g)

	return &Session{
		params:     p,
		overrides:  store,
		resolver:   resolver,
		engine:     engine.New(resolver, store, p.Radius, p.Target),
		controller: engine.NewController(core.Point{}),
		started:    time.Now(),
	}, nil
}

// Params returns the effective session parameters.
func (s *Session) Params() Params {
	return s.params
}

// Player returns the avatar state.
func (s *Session) Player() *engine.Player {
	return s.controller.Player()
}

// Mode returns the active view mode.
func (s *Session) Mode() engine.ViewMode {
	return s.controller.Mode()
}

// Won reports whether the win target has been reached this session.
func (s *Session) Won() bool {
	return s.engine.Won()
}

// Crafts returns the number of successful crafts this session.
func (s *Session) Crafts() int {
	return s.crafts
}

// Elapsed returns the session play time.
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.started)
}

// Move applies a movement intent to the player or the free view, depending
// on the active mode.
func (s *Session) Move(in core.Intent) {
	dLat, dLng := in.Delta(s.params.Step)
	if dLat == 0 && dLng == 0 {
		return
	}
	s.controller.Move(dLat, dLng)
}

// ToggleView flips between player-centered and free view.
func (s *Session) ToggleView() engine.ViewMode {
	return s.controller.ToggleMode()
}

// ViewCenter returns the effective center for the next visible-region query.
func (s *Session) ViewCenter() core.Point {
	return s.controller.ViewCenter()
}

// Visible resolves the cells of the default viewport span around the current
// view center.
func (s *Session) Visible() []world.ResolvedCell {
	return s.VisibleSpan(s.params.ViewportH, s.params.ViewportW)
}

// VisibleSpan resolves the cells of a caller-sized span around the current
// view center. Renderers with their own window size use this directly.
func (s *Session) VisibleSpan(height, width int) []world.ResolvedCell {
	region := core.RegionAround(s.controller.ViewCenter(), height, width)
	return s.resolver.CellsInRegion(region)
}

// CellsIn resolves every cell inside a renderer-supplied region. The
// renderer owns the region; corners may arrive in any order.
func (s *Session) CellsIn(region core.Region) []world.ResolvedCell {
	return s.resolver.CellsInRegion(region)
}

// Resolve answers the current state of a single cell.
func (s *Session) Resolve(c core.Coord) core.CellState {
	return s.resolver.Resolve(c)
}

// Click applies a click on a grid cell. The renderer owns the pixel-to-cell
// translation and hands the resolved coordinate here.
func (s *Session) Click(c core.Coord) (engine.Result, error) {
	res, err := s.engine.HandleClick(c, s.controller.Player())
	if err != nil {
		return engine.Result{}, err
	}
	if res.Outcome == engine.Crafted {
		s.crafts++
	}
	return res, nil
}
