package presents

import (
	"testing"

	"github.com/vovakirdan/presents/internal/core"
)

func TestParentPatrolStaysOnLane(t *testing.T) {
	tests := []struct {
		name string
		lane core.RectF
	}{
		{"aligned lane", core.NewRectF(550, 400, 200, 20)},
		{"lane not a multiple of speed", core.NewRectF(0, 100, 155, 20)},
		{"lane barely wider than parent", core.NewRectF(300, 100, 53, 20)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home := &Platform{Rect: tc.lane}
			parent := NewParent(core.NewRectF(tc.lane.X, tc.lane.Y-48, 50, 50), home, 2, 1)

			turns := 0
			dir := parent.Direction
			for frame := 0; frame < 1000; frame++ {
				parent.Step(nil)

				if parent.State() != Patrolling {
					t.Fatalf("frame %d: parent left its lane", frame)
				}
				if parent.Rect.Left() < tc.lane.Left() || parent.Rect.Right() > tc.lane.Right() {
					t.Fatalf("frame %d: parent [%v, %v] outside lane [%v, %v]",
						frame, parent.Rect.Left(), parent.Rect.Right(), tc.lane.Left(), tc.lane.Right())
				}
				if parent.Direction != dir {
					turns++
					dir = parent.Direction
				}
			}
			if turns < 2 {
				t.Errorf("parent should turn around at both edges, turned %d times", turns)
			}
		})
	}
}

func TestParentFlipsAtEdge(t *testing.T) {
	home := &Platform{Rect: core.NewRectF(0, 100, 200, 20)}
	parent := NewParent(core.NewRectF(148, 60, 50, 50), home, 2, 1)

	parent.Step(nil)

	if parent.Rect.Right() != 200 {
		t.Errorf("right = %v, expected 200", parent.Rect.Right())
	}
	if parent.Direction != -1 {
		t.Errorf("Direction = %v, expected -1", parent.Direction)
	}

	parent.Step(nil)
	if parent.Rect.X != 148 {
		t.Errorf("parent should walk back, x = %v", parent.Rect.X)
	}
}

func TestParentReturning(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		expectedX float64
	}{
		{"left of lane snaps to lane edge", 100, 550},
		{"right of lane stays put", 900, 900},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home := &Platform{Rect: core.NewRectF(550, 400, 200, 20)}
			parent := NewParent(core.NewRectF(tc.x, 100, 50, 50), home, 2, 1)

			if parent.State() != Returning {
				t.Fatalf("parent off its lane should be returning, got %v", parent.State())
			}

			parent.Step(nil)

			if parent.Rect.X != tc.expectedX {
				t.Errorf("X = %v, expected %v", parent.Rect.X, tc.expectedX)
			}
			if parent.Rect.Y != 100 {
				t.Error("parents ignore gravity")
			}
		})
	}
}

func TestNewParentRequiresHome(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewParent(nil home) should panic")
		}
	}()
	NewParent(core.NewRectF(0, 0, 50, 50), nil, 2, 1)
}

func TestCEOFiresAfterInterval(t *testing.T) {
	w := newBareWorld(t)
	ceo := NewCEO(core.NewRectF(400, 400, 50, 50), 60, 2)

	for i := 1; i <= 60; i++ {
		ceo.Step(w)
		if len(w.Projectiles) != 0 {
			t.Fatalf("frame %d: fired too early", i)
		}
	}

	ceo.Step(w)

	if len(w.Projectiles) != 1 {
		t.Fatalf("expected 1 projectile after 61 frames, got %d", len(w.Projectiles))
	}
	if ceo.ShootTimer != 0 {
		t.Errorf("ShootTimer = %d, expected 0", ceo.ShootTimer)
	}

	pr := w.Projectiles[0]
	if pr.Rect.X != 425 || pr.Rect.Y != 425 {
		t.Errorf("projectile should start at the CEO center, got (%v, %v)", pr.Rect.X, pr.Rect.Y)
	}
	if pr.VX != 5 || pr.Rect.W != 10 || pr.Rect.H != 5 {
		t.Errorf("unexpected projectile %+v", pr)
	}
}

func TestCEOFiresEvery61Frames(t *testing.T) {
	w := newBareWorld(t)
	w.Enemies = []Enemy{NewCEO(core.NewRectF(400, 500, 50, 50), 60, 2)}

	fired := 0
	for frame := 0; frame < 183; frame++ {
		before := len(w.Projectiles)
		w.Step(core.NewInputFrame())
		if len(w.Projectiles) > before {
			fired++
		}
	}

	if fired != 3 {
		t.Errorf("expected 3 shots in 183 frames, got %d", fired)
	}
}
