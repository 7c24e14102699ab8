package presents

import (
	"testing"

	"github.com/vovakirdan/presents/internal/core"
)

func TestJumpFromGround(t *testing.T) {
	w := newBareWorld(t)
	p := w.Player
	p.OnGround = true

	p.applyInput(core.NewInputFrame(core.ActionJump), w.cfg.Physics)

	if p.VY != -10 {
		t.Errorf("VY after jump input = %v, expected -10", p.VY)
	}
	if p.OnGround {
		t.Error("jumping should clear OnGround")
	}
}

func TestJumpFullFrame(t *testing.T) {
	w := newBareWorld(t)
	p := w.Player
	p.OnGround = true
	y := p.Rect.Y

	w.Step(core.NewInputFrame(core.ActionJump))

	// Gravity is applied in the same frame as the jump
	if p.VY != -9.5 {
		t.Errorf("VY after one frame = %v, expected -9.5", p.VY)
	}
	if p.OnGround {
		t.Error("player should be airborne")
	}
	if p.Rect.Y != y-9.5 {
		t.Errorf("Y = %v, expected %v", p.Rect.Y, y-9.5)
	}
}

func TestNoJumpInAir(t *testing.T) {
	w := newBareWorld(t)
	p := w.Player
	p.OnGround = false
	p.VY = 3

	p.applyInput(core.NewInputFrame(core.ActionJump), w.cfg.Physics)

	if p.VY != 3 {
		t.Errorf("airborne jump should be ignored, VY = %v", p.VY)
	}
}

func TestHorizontalInput(t *testing.T) {
	tests := []struct {
		name     string
		actions  []core.Action
		expected float64
	}{
		{"none", nil, 0},
		{"left", []core.Action{core.ActionLeft}, -5},
		{"right", []core.Action{core.ActionRight}, 5},
		{"both, right wins", []core.Action{core.ActionLeft, core.ActionRight}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newBareWorld(t)
			w.Player.VX = 42

			w.Player.applyInput(core.NewInputFrame(tc.actions...), w.cfg.Physics)

			if w.Player.VX != tc.expected {
				t.Errorf("VX = %v, expected %v", w.Player.VX, tc.expected)
			}
		})
	}
}

func TestSnowLiftsPlayer(t *testing.T) {
	w := newBareWorld(t)
	p := w.Player
	p.Rect.Y = 125
	snow := []*Platform{{Rect: core.NewRectF(100, 100, 300, 200), Surface: SurfaceSnow}}

	for i := 0; i < 10; i++ {
		p.VY = 0
		p.resolvePlatforms(snow, w.cfg.Surfaces)
	}

	if p.Rect.Y != 95 {
		t.Errorf("Y = %v after 10 snow frames, expected 95", p.Rect.Y)
	}
	if p.OnGround {
		t.Error("snow alone should not ground a player that is not falling")
	}
}

func TestSnowWhileRising(t *testing.T) {
	w := newBareWorld(t)
	p := w.Player
	p.Rect.Y = 400
	p.VY = -20
	w.Platforms = []*Platform{{Rect: core.NewRectF(0, 0, 800, 600), Surface: SurfaceSnow}}

	for i := 0; i < 10; i++ {
		w.Step(core.NewInputFrame())
	}

	// Integrated motion is -19.5 - 19 - ... - 15 = -172.5; snow adds -30
	expected := 400 - 172.5 - 30.0
	if p.Rect.Y != expected {
		t.Errorf("Y = %v, expected %v", p.Rect.Y, expected)
	}
}

func TestIcePushesAlongMotion(t *testing.T) {
	tests := []struct {
		name      string
		vx        float64
		expectedX float64
	}{
		{"moving right", 5, 105},
		{"moving left", -5, 95},
		{"standing still", 0, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newBareWorld(t)
			p := w.Player
			p.Rect = core.NewRectF(100, 100, 50, 50)
			p.VX = tc.vx
			p.VY = 0
			ice := []*Platform{{Rect: core.NewRectF(0, 120, 400, 20), Surface: SurfaceIce}}

			p.resolvePlatforms(ice, w.cfg.Surfaces)

			if p.Rect.X != tc.expectedX {
				t.Errorf("X = %v, expected %v", p.Rect.X, tc.expectedX)
			}
		})
	}
}

func TestLandingSnapsToPlatformTop(t *testing.T) {
	w := newBareWorld(t)
	p := w.Player
	p.Rect = core.NewRectF(100, 455, 50, 50)
	p.VY = 4
	ground := []*Platform{{Rect: core.NewRectF(0, 500, 400, 20), Surface: SurfaceRegular}}

	p.resolvePlatforms(ground, w.cfg.Surfaces)

	if p.Rect.Bottom() != 500 {
		t.Errorf("bottom = %v, expected 500", p.Rect.Bottom())
	}
	if p.VY != 0 || !p.OnGround {
		t.Errorf("landing should zero VY and set OnGround, got VY=%v OnGround=%v", p.VY, p.OnGround)
	}
}

func TestRestingOnPlatformStaysGrounded(t *testing.T) {
	w := newBareWorld(t)
	p := w.Player
	w.Platforms = []*Platform{{Rect: core.NewRectF(0, 500, 400, 20), Surface: SurfaceRegular}}
	p.Rect = core.NewRectF(100, 450, 50, 50)

	for i := 0; i < 5; i++ {
		w.Step(core.NewInputFrame())
		if !p.OnGround || p.Rect.Bottom() != 500 {
			t.Fatalf("frame %d: expected to rest at 500, bottom=%v OnGround=%v", i, p.Rect.Bottom(), p.OnGround)
		}
	}
}

func TestWalkingOffLedgeClearsGround(t *testing.T) {
	w := newBareWorld(t)
	p := w.Player
	p.Rect = core.NewRectF(500, 450, 50, 50)
	p.OnGround = true

	w.Step(core.NewInputFrame())

	if p.OnGround {
		t.Error("player with nothing below should not stay grounded")
	}
}

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		name           string
		health, damage int
		expectedHealth int
		expectedDeaths int
	}{
		{"parent hit", 6, 1, 5, 0},
		{"ceo hit", 6, 2, 4, 0},
		{"exactly zero respawns", 2, 2, 6, 1},
		{"overkill respawns", 1, 2, 6, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newBareWorld(t)
			p := w.Player
			p.Health = tc.health

			p.TakeDamage(tc.damage)

			if p.Health != tc.expectedHealth {
				t.Errorf("Health = %d, expected %d", p.Health, tc.expectedHealth)
			}
			if p.Deaths != tc.expectedDeaths {
				t.Errorf("Deaths = %d, expected %d", p.Deaths, tc.expectedDeaths)
			}
		})
	}
}

func TestProjectileKillRespawnsSameFrame(t *testing.T) {
	w := newBareWorld(t)
	p := w.Player
	p.Health = 1
	w.Projectiles = []*Projectile{{Rect: core.NewRectF(190, 140, 10, 5)}}

	w.Step(core.NewInputFrame())

	if p.Health != 6 {
		t.Errorf("Health = %d, expected full health after respawn", p.Health)
	}
	if p.Rect.X != 175 || p.Rect.Y != 125 {
		t.Errorf("player should be back at spawn, got (%v, %v)", p.Rect.X, p.Rect.Y)
	}
	if p.Deaths != 1 {
		t.Errorf("Deaths = %d, expected 1", p.Deaths)
	}
	if len(w.Projectiles) != 0 {
		t.Error("projectile should be consumed by the hit")
	}
}

func TestRespawnKeepsProgress(t *testing.T) {
	w := newTestWorld(t, goalAtSpawnLevels)
	w.Step(core.NewInputFrame())
	w.Projectiles = []*Projectile{{Rect: core.NewRectF(400, 400, 10, 5)}}

	w.Player.Respawn()

	if w.Level() != 2 {
		t.Errorf("respawn must not change the level, got %d", w.Level())
	}
	if len(w.Projectiles) != 1 {
		t.Error("respawn must not touch projectiles")
	}
}

func TestFloorClamp(t *testing.T) {
	w := newBareWorld(t)
	p := w.Player
	p.Rect = core.NewRectF(400, 540, 50, 50)
	p.VY = 20
	p.Health = 4

	w.Step(core.NewInputFrame())

	if p.Rect.X != 175 || p.Rect.Y != 125 {
		t.Errorf("falling out should respawn at the start, got (%v, %v)", p.Rect.X, p.Rect.Y)
	}
	if p.VY != 0 {
		t.Errorf("VY = %v, expected 0", p.VY)
	}
	if p.Health != 6 {
		t.Errorf("Health = %d, expected 6", p.Health)
	}
}

func TestEnemyContactEachFrame(t *testing.T) {
	w := newBareWorld(t)
	p := w.Player
	w.Enemies = []Enemy{NewCEO(core.NewRectF(175, 125, 50, 50), 1000, 2)}

	w.Step(core.NewInputFrame())
	w.Step(core.NewInputFrame())

	if p.Health != 2 {
		t.Errorf("two frames of CEO contact should cost 4 health, got %d", p.Health)
	}
}
