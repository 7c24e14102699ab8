package presents

import (
	"math"

	"github.com/vovakirdan/presents/internal/core"
)

// Enemy is a hostile entity. The world steps every enemy once per frame
// after the player has moved, and calls Touch while the player overlaps it.
type Enemy interface {
	Bounds() core.RectF
	Touch(p *Player)
	Step(w *World)
	Sprite() Sprite
}

// PatrolState is the behavior state of a Parent.
type PatrolState int

const (
	Patrolling PatrolState = iota // On its lane, walking edge to edge
	Returning                     // Off its lane, snapping back to it
)

// String returns the state name.
func (s PatrolState) String() string {
	if s == Patrolling {
		return "patrolling"
	}
	return "returning"
}

// Parent is a melee enemy bound to a single home platform (its patrol lane).
type Parent struct {
	Rect      core.RectF
	Direction float64 // -1 or +1
	Home      *Platform

	speed  float64
	damage int
}

// NewParent creates a parent walking right along home. It panics when home
// is nil: a parent without a lane is a broken level table.
func NewParent(rect core.RectF, home *Platform, speed float64, damage int) *Parent {
	if home == nil {
		panic("presents: parent requires a home platform")
	}
	return &Parent{
		Rect:      rect,
		Direction: 1,
		Home:      home,
		speed:     speed,
		damage:    damage,
	}
}

// Bounds returns the collision rectangle.
func (e *Parent) Bounds() core.RectF { return e.Rect }

// Touch deals melee damage.
func (e *Parent) Touch(p *Player) { p.TakeDamage(e.damage) }

// State reports whether the parent is on its lane.
func (e *Parent) State() PatrolState {
	if e.Rect.Overlaps(e.Home.Rect) {
		return Patrolling
	}
	return Returning
}

// Step walks the lane, turning around at either edge. Off the lane the parent
// is only held back from the left edge. Parents ignore gravity.
func (e *Parent) Step(_ *World) {
	lane := e.Home.Rect

	if e.State() == Returning {
		e.Rect.X = math.Max(e.Rect.X, lane.Left())
		return
	}

	e.Rect.X += e.Direction * e.speed
	if e.Rect.Right() >= lane.Right() || e.Rect.Left() <= lane.Left() {
		e.Direction = -e.Direction

		// Lanes whose width is not a multiple of the speed would otherwise
		// be overshot by part of a step.
		if e.Rect.Right() > lane.Right() {
			e.Rect.SetRight(lane.Right())
		}
		if e.Rect.Left() < lane.Left() {
			e.Rect.X = lane.Left()
		}
	}
}

// Sprite returns the visual representation of the parent.
func (e *Parent) Sprite() Sprite {
	return Sprite{Kind: KindParent, Rect: e.Rect, Color: core.ColorBrightGreen, Glyph: '▓'}
}

// CEO is a stationary ranged enemy that fires on a fixed interval.
type CEO struct {
	Rect       core.RectF
	ShootTimer int

	interval int
	damage   int
}

// NewCEO creates a CEO whose timer starts at zero.
func NewCEO(rect core.RectF, interval, damage int) *CEO {
	return &CEO{
		Rect:     rect,
		interval: interval,
		damage:   damage,
	}
}

// Bounds returns the collision rectangle.
func (e *CEO) Bounds() core.RectF { return e.Rect }

// Touch deals ranged damage on contact.
func (e *CEO) Touch(p *Player) { p.TakeDamage(e.damage) }

// Step counts frames and fires once the counter passes the interval.
func (e *CEO) Step(w *World) {
	e.ShootTimer++
	if e.ShootTimer > e.interval {
		e.ShootTimer = 0
		cx, cy := e.Rect.Center()
		w.spawnProjectile(cx, cy)
	}
}

// Sprite returns the visual representation of the CEO.
func (e *CEO) Sprite() Sprite {
	return Sprite{Kind: KindCEO, Rect: e.Rect, Color: core.ColorBrightBlue, Glyph: '▓'}
}

var (
	_ Enemy = (*Parent)(nil)
	_ Enemy = (*CEO)(nil)
)
