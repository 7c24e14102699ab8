// Package presents implements Presence of Presents, a frame-stepped
// platformer: Santa crosses snowy and icy rooftops, dodging patrolling
// parents and projectile-throwing CEOs, to reach each level's chimney.
package presents

import (
	"fmt"

	"github.com/vovakirdan/presents/internal/core"
)

// Surface classifies a platform by its effect on an overlapping player.
type Surface int

const (
	SurfaceRegular Surface = iota // No side effect
	SurfaceSnow                   // Nudges the player upward
	SurfaceIce                    // Pushes the player along its motion
)

// String returns the surface name used in level data.
func (s Surface) String() string {
	switch s {
	case SurfaceRegular:
		return "regular"
	case SurfaceSnow:
		return "snow"
	case SurfaceIce:
		return "ice"
	default:
		return "unknown"
	}
}

// ParseSurface maps a level-data surface name to a Surface.
func ParseSurface(name string) (Surface, error) {
	switch name {
	case "regular", "":
		return SurfaceRegular, nil
	case "snow":
		return SurfaceSnow, nil
	case "ice":
		return SurfaceIce, nil
	default:
		return SurfaceRegular, fmt.Errorf("unknown surface %q", name)
	}
}

// Kind tags an entity for the renderer.
type Kind int

const (
	KindPlayer Kind = iota
	KindPlatform
	KindParent
	KindCEO
	KindProjectile
	KindChimney
)

// String returns the entity kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlatform:
		return "platform"
	case KindParent:
		return "parent"
	case KindCEO:
		return "ceo"
	case KindProjectile:
		return "projectile"
	case KindChimney:
		return "chimney"
	default:
		return "unknown"
	}
}

// Sprite is the renderer's view of one entity: where it is and how it looks.
type Sprite struct {
	Kind    Kind
	Rect    core.RectF
	Color   core.Color
	Glyph   rune
	Surface Surface // Only meaningful for platforms
}

// Platform is a static surface the player can land on.
type Platform struct {
	ID      string
	Rect    core.RectF
	Surface Surface
}

// Sprite returns the visual representation of the platform.
func (p *Platform) Sprite() Sprite {
	s := Sprite{Kind: KindPlatform, Rect: p.Rect, Surface: p.Surface}
	switch p.Surface {
	case SurfaceSnow:
		s.Color, s.Glyph = core.ColorGray, '▒'
	case SurfaceIce:
		s.Color, s.Glyph = core.ColorBlue, '░'
	default:
		s.Color, s.Glyph = core.ColorGreen, '█'
	}
	return s
}

// Chimney is the level goal. One exists per world and is only repositioned.
type Chimney struct {
	Rect core.RectF
}

// Sprite returns the visual representation of the chimney.
func (c *Chimney) Sprite() Sprite {
	return Sprite{Kind: KindChimney, Rect: c.Rect, Color: core.ColorBrown, Glyph: '▓'}
}

// Projectile travels horizontally until it leaves the screen or hits the player.
type Projectile struct {
	Rect core.RectF
	VX   float64
	dead bool
}

// Dead reports whether the projectile is waiting to be compacted away.
func (p *Projectile) Dead() bool {
	return p.dead
}

// step integrates the projectile and marks it dead once fully off-screen.
func (p *Projectile) step(screenW float64) {
	p.Rect.X += p.VX
	if p.Rect.Right() < 0 || p.Rect.Left() > screenW {
		p.dead = true
	}
}

// Sprite returns the visual representation of the projectile.
func (p *Projectile) Sprite() Sprite {
	return Sprite{Kind: KindProjectile, Rect: p.Rect, Color: core.ColorBrightWhite, Glyph: '•'}
}

// compactProjectiles removes dead projectiles in place, preserving order.
func compactProjectiles(ps []*Projectile) []*Projectile {
	alive := ps[:0]
	for _, p := range ps {
		if !p.dead {
			alive = append(alive, p)
		}
	}
	// Release references held by the tail
	for i := len(alive); i < len(ps); i++ {
		ps[i] = nil
	}
	return alive
}
