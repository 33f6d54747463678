package engine

import (
	"errors"
	"testing"

	"github.com/vovakirdan/gridtoken/internal/core"
	"github.com/vovakirdan/gridtoken/internal/game/gen"
	"github.com/vovakirdan/gridtoken/internal/game/overlay"
	"github.com/vovakirdan/gridtoken/internal/game/world"
)

type memBlobs struct {
	data    map[string]string
	failSet bool
}

func newMemBlobs() *memBlobs {
	return &memBlobs{data: make(map[string]string)}
}

func (m *memBlobs) Load(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memBlobs) Save(key, value string) error {
	if m.failSet {
		return errors.New("disk full")
	}
	m.data[key] = value
	return nil
}

// fixture builds an engine over a zero-spawn world so every token on the
// board is placed explicitly by the test.
func fixture(t *testing.T, radius, target int) (*Engine, *overlay.Store, *world.Resolver, *memBlobs) {
	t.Helper()
	blobs := newMemBlobs()
	store := overlay.New(blobs, "overlay/test")
	resolver := world.NewResolver(store, gen.New(1, 0, gen.DefaultLevels))
	return New(resolver, store, radius, target), store, resolver, blobs
}

func place(t *testing.T, store *overlay.Store, c core.Coord, value int) {
	t.Helper()
	if err := store.Set(c, core.Occupied(value)); err != nil {
		t.Fatalf("Set(%v, %d) failed: %v", c, value, err)
	}
}

func playerAt(i, j int) *Player {
	return &Player{Pos: core.Point{Lat: float64(i), Lng: float64(j)}}
}

func TestPickupRemovesToken(t *testing.T) {
	e, store, resolver, _ := fixture(t, 2, 256)
	place(t, store, core.C(1, 1), 4)

	p := playerAt(0, 0)
	res, err := e.HandleClick(core.C(1, 1), p)
	if err != nil {
		t.Fatalf("HandleClick() failed: %v", err)
	}
	if res.Outcome != PickedUp || res.Value != 4 {
		t.Errorf("got %v(%d), want PickedUp(4)", res.Outcome, res.Value)
	}
	if held, ok := p.Holding(); !ok || held != 4 {
		t.Errorf("player holds (%d, %v), want (4, true)", held, ok)
	}
	if resolver.Resolve(core.C(1, 1)).IsOccupied() {
		t.Error("cell still occupied after pickup")
	}
}

func TestPickupEmptyCellRejected(t *testing.T) {
	e, _, _, _ := fixture(t, 2, 256)

	p := playerAt(0, 0)
	res, err := e.HandleClick(core.C(1, 0), p)
	if err != nil {
		t.Fatalf("HandleClick() failed: %v", err)
	}
	if res.Outcome != RejectedEmpty {
		t.Errorf("got %v, want RejectedEmpty", res.Outcome)
	}
	if _, ok := p.Holding(); ok {
		t.Error("rejected click changed held token")
	}
}

func TestCraftDoubles(t *testing.T) {
	e, store, resolver, _ := fixture(t, 2, 256)
	place(t, store, core.C(0, 1), 8)

	p := playerAt(0, 0)
	held := 8
	p.Held = &held

	res, err := e.HandleClick(core.C(0, 1), p)
	if err != nil {
		t.Fatalf("HandleClick() failed: %v", err)
	}
	if res.Outcome != Crafted || res.Value != 16 {
		t.Errorf("got %v(%d), want Crafted(16)", res.Outcome, res.Value)
	}
	if res.Won {
		t.Error("Won flagged below target")
	}
	if _, ok := p.Holding(); ok {
		t.Error("player still holding after craft")
	}
	if v, ok := resolver.Resolve(core.C(0, 1)).Value(); !ok || v != 16 {
		t.Errorf("cell resolves to %v, want Occupied(16)", resolver.Resolve(core.C(0, 1)))
	}
}

func TestMismatchLeavesEverythingUntouched(t *testing.T) {
	e, store, resolver, _ := fixture(t, 2, 256)
	place(t, store, core.C(0, 1), 4)

	p := playerAt(0, 0)
	held := 8
	p.Held = &held

	res, err := e.HandleClick(core.C(0, 1), p)
	if err != nil {
		t.Fatalf("HandleClick() failed: %v", err)
	}
	if res.Outcome != RejectedMismatch {
		t.Errorf("got %v, want RejectedMismatch", res.Outcome)
	}
	if h, ok := p.Holding(); !ok || h != 8 {
		t.Errorf("held token changed to (%d, %v)", h, ok)
	}
	if v, ok := resolver.Resolve(core.C(0, 1)).Value(); !ok || v != 4 {
		t.Errorf("cell changed to %v", resolver.Resolve(core.C(0, 1)))
	}
}

func TestHoldingOverEmptyCellIsMismatch(t *testing.T) {
	e, _, _, _ := fixture(t, 2, 256)

	p := playerAt(0, 0)
	held := 2
	p.Held = &held

	res, err := e.HandleClick(core.C(1, 1), p)
	if err != nil {
		t.Fatalf("HandleClick() failed: %v", err)
	}
	if res.Outcome != RejectedMismatch {
		t.Errorf("got %v, want RejectedMismatch", res.Outcome)
	}
}

func TestDistanceGate(t *testing.T) {
	e, store, _, _ := fixture(t, 2, 256)
	place(t, store, core.C(0, 3), 4)

	// Chebyshev distance 3 > radius 2, even though the pickup would be valid
	p := playerAt(0, 0)
	res, err := e.HandleClick(core.C(0, 3), p)
	if err != nil {
		t.Fatalf("HandleClick() failed: %v", err)
	}
	if res.Outcome != RejectedTooFar {
		t.Errorf("got %v, want RejectedTooFar", res.Outcome)
	}
	if _, ok := p.Holding(); ok {
		t.Error("too-far click changed held token")
	}

	// Diagonal at distance exactly radius is allowed
	res, err = e.HandleClick(core.C(2, 2), p)
	if err != nil {
		t.Fatalf("HandleClick() failed: %v", err)
	}
	if res.Outcome == RejectedTooFar {
		t.Error("click at distance == radius rejected as too far")
	}
}

func TestWinFiresOnceAtThreshold(t *testing.T) {
	e, store, _, _ := fixture(t, 2, 256)

	p := playerAt(0, 0)

	// 128 + 128 -> 256 crosses the target
	place(t, store, core.C(0, 1), 128)
	held := 128
	p.Held = &held
	res, err := e.HandleClick(core.C(0, 1), p)
	if err != nil {
		t.Fatalf("HandleClick() failed: %v", err)
	}
	if res.Outcome != Crafted || res.Value != 256 {
		t.Fatalf("got %v(%d), want Crafted(256)", res.Outcome, res.Value)
	}
	if !res.Won {
		t.Error("Won not flagged on the crossing craft")
	}
	if !e.Won() {
		t.Error("engine does not report won")
	}

	// Crafting past the target again must not re-fire the signal
	place(t, store, core.C(0, 1), 256)
	held = 256
	p.Held = &held
	res, err = e.HandleClick(core.C(0, 1), p)
	if err != nil {
		t.Fatalf("HandleClick() failed: %v", err)
	}
	if res.Outcome != Crafted || res.Value != 512 {
		t.Fatalf("got %v(%d), want Crafted(512)", res.Outcome, res.Value)
	}
	if res.Won {
		t.Error("Won flagged a second time")
	}
}

func TestPersistFailureSurfacesAndMutatesNothing(t *testing.T) {
	e, store, resolver, blobs := fixture(t, 2, 256)
	place(t, store, core.C(0, 1), 4)

	blobs.failSet = true
	p := playerAt(0, 0)
	res, err := e.HandleClick(core.C(0, 1), p)
	if err == nil {
		t.Fatal("HandleClick() succeeded despite persist failure")
	}
	// The error-path Result must be inert, not a phantom pickup.
	if res.Outcome != OutcomeNone || res.Value != 0 || res.Won {
		t.Errorf("error-path result = %+v, want zero", res)
	}
	if _, ok := p.Holding(); ok {
		t.Error("failed pickup still put a token in hand")
	}
	if v, ok := resolver.Resolve(core.C(0, 1)).Value(); !ok || v != 4 {
		t.Errorf("cell changed to %v after failed persist", resolver.Resolve(core.C(0, 1)))
	}
}

func TestDistanceMeasuredFromPlayerNotView(t *testing.T) {
	e, store, _, _ := fixture(t, 1, 256)
	place(t, store, core.C(0, 1), 2)
	place(t, store, core.C(10, 10), 2)

	ctrl := NewController(core.Point{})
	ctrl.ToggleMode() // FreeView
	for range 10 {
		ctrl.Move(1, 1) // pan far away
	}

	// Cell near the avatar stays clickable while panned away
	res, err := e.HandleClick(core.C(0, 1), ctrl.Player())
	if err != nil {
		t.Fatalf("HandleClick() failed: %v", err)
	}
	if res.Outcome != PickedUp {
		t.Errorf("near-player click while panned = %v, want PickedUp", res.Outcome)
	}

	// Cell near the panned view center is still too far from the avatar
	res, err = e.HandleClick(core.C(10, 10), ctrl.Player())
	if err != nil {
		t.Fatalf("HandleClick() failed: %v", err)
	}
	if res.Outcome != RejectedTooFar {
		t.Errorf("near-view click while panned = %v, want RejectedTooFar", res.Outcome)
	}
}
