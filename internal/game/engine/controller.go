package engine

import "github.com/vovakirdan/gridtoken/internal/core"

// ViewMode selects what the visible region follows.
type ViewMode int

const (
	PlayerCentered ViewMode = iota // View tracks the player avatar
	FreeView                       // View pans independently of the player
)

// String returns a human-readable name for the view mode.
func (m ViewMode) String() string {
	switch m {
	case PlayerCentered:
		return "PlayerCentered"
	case FreeView:
		return "FreeView"
	default:
		return "Unknown"
	}
}

// Controller owns the player position, the view mode and the independent
// view center. Movement intents land on the player or on the view center
// depending on the active mode.
type Controller struct {
	mode       ViewMode
	player     *Player
	viewCenter core.Point
}

// NewController creates a player-centered controller with the player at the
// given starting position.
func NewController(start core.Point) *Controller {
	return &Controller{
		mode:       PlayerCentered,
		player:     &Player{Pos: start},
		viewCenter: start,
	}
}

// Mode returns the active view mode.
func (c *Controller) Mode() ViewMode {
	return c.mode
}

// Player returns the owned player state.
func (c *Controller) Player() *Player {
	return c.player
}

// ToggleMode flips between PlayerCentered and FreeView. Entering
// PlayerCentered snaps the view center back to the player; entering FreeView
// leaves the center where it is, ready to pan.
func (c *Controller) ToggleMode() ViewMode {
	if c.mode == PlayerCentered {
		c.mode = FreeView
	} else {
		c.mode = PlayerCentered
		c.viewCenter = c.player.Pos
	}
	return c.mode
}

// Move applies a movement delta. In PlayerCentered mode the player moves and
// the view follows; in FreeView only the view center pans.
func (c *Controller) Move(dLat, dLng float64) {
	if c.mode == PlayerCentered {
		c.player.Pos = c.player.Pos.Add(dLat, dLng)
		c.viewCenter = c.player.Pos
		return
	}
	c.viewCenter = c.viewCenter.Add(dLat, dLng)
}

// ViewCenter returns the effective center for the next region query.
func (c *Controller) ViewCenter() core.Point {
	if c.mode == PlayerCentered {
		return c.player.Pos
	}
	return c.viewCenter
}
