package presents

import (
	"github.com/vovakirdan/presents/internal/config"
	"github.com/vovakirdan/presents/internal/core"
)

// Player is Santa. A world owns exactly one; it is repositioned on respawn
// and level change but never recreated.
type Player struct {
	Rect      core.RectF
	VX, VY    float64
	OnGround  bool
	Health    int
	MaxHealth int
	Deaths    int

	startX, startY float64 // Spawn center
}

// newPlayer creates a player centered on the configured spawn point.
func newPlayer(cfg config.PlayerConfig) *Player {
	p := &Player{
		Rect:      core.NewRectF(0, 0, cfg.Width, cfg.Height),
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		startX:    cfg.StartX,
		startY:    cfg.StartY,
	}
	p.moveToStart()
	return p
}

// Update advances the player by one frame against the world's current
// contents. The order of the steps is significant.
func (p *Player) Update(in core.InputFrame, w *World) {
	phys := w.cfg.Physics

	p.applyInput(in, phys)

	// Gravity accumulates without a terminal velocity
	p.VY += phys.Gravity

	p.Rect.X += p.VX
	p.Rect.Y += p.VY

	p.resolvePlatforms(w.Platforms, w.cfg.Surfaces)
	p.resolveEnemies(w.Enemies)
	p.resolveProjectiles(w.Projectiles, w.cfg.Damage.CEO)
	w.Projectiles = compactProjectiles(w.Projectiles)

	w.checkChimney()

	p.clampFloor(w.cfg.Screen.Height)
}

// applyInput sets horizontal velocity from held keys and starts a jump.
// Right wins when both directions are held.
func (p *Player) applyInput(in core.InputFrame, phys config.PhysicsConfig) {
	p.VX = 0
	if in.Has(core.ActionLeft) {
		p.VX = -phys.MoveSpeed
	}
	if in.Has(core.ActionRight) {
		p.VX = phys.MoveSpeed
	}

	// No double jump: ignored unless grounded
	if in.Has(core.ActionJump) && p.OnGround {
		p.VY = -phys.JumpForce
		p.OnGround = false
	}
}

// resolvePlatforms applies every overlapping platform in collection order.
// Only downward motion is stopped; sideways and upward overlaps pass through.
func (p *Player) resolvePlatforms(platforms []*Platform, surf config.SurfaceConfig) {
	p.OnGround = false
	for _, pl := range platforms {
		if !p.Rect.Overlaps(pl.Rect) {
			continue
		}

		switch pl.Surface {
		case SurfaceSnow:
			p.Rect.Y -= surf.SnowNudge
		case SurfaceIce:
			p.Rect.X += surf.IceNudge * core.Sign(p.VX)
		}

		if p.VY > 0 {
			p.Rect.SetBottom(pl.Rect.Top())
			p.VY = 0
			p.OnGround = true
		}
	}
}

// resolveEnemies lets every touching enemy apply its contact effect.
func (p *Player) resolveEnemies(enemies []Enemy) {
	for _, e := range enemies {
		if p.Rect.Overlaps(e.Bounds()) {
			e.Touch(p)
		}
	}
}

// resolveProjectiles damages the player for each live projectile it touches
// and marks those projectiles dead. The caller compacts the slice afterwards.
func (p *Player) resolveProjectiles(projectiles []*Projectile, damage int) {
	for _, pr := range projectiles {
		if pr.dead || !p.Rect.Overlaps(pr.Rect) {
			continue
		}
		p.TakeDamage(damage)
		pr.dead = true
	}
}

// clampFloor catches a player that fell out of the world.
func (p *Player) clampFloor(screenH float64) {
	if p.Rect.Bottom() < screenH {
		return
	}
	p.Rect.SetBottom(screenH)
	p.VY = 0
	p.OnGround = true
	p.Respawn()
}

// TakeDamage lowers health, respawning the player when it runs out.
func (p *Player) TakeDamage(amount int) {
	p.Health -= amount
	if p.Health <= 0 {
		p.Health = 0
		p.Respawn()
	}
}

// Respawn returns the player to the spawn point with full health.
// Velocity and level progress are left untouched.
func (p *Player) Respawn() {
	p.moveToStart()
	p.Health = p.MaxHealth
	p.Deaths++
}

func (p *Player) moveToStart() {
	p.Rect.SetCenter(p.startX, p.startY)
}

// Sprite returns the visual representation of the player.
func (p *Player) Sprite() Sprite {
	return Sprite{Kind: KindPlayer, Rect: p.Rect, Color: core.ColorRed, Glyph: '█'}
}
