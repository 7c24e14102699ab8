package presents

import (
	"testing"

	"github.com/vovakirdan/presents/internal/config"
	"github.com/vovakirdan/presents/internal/core"
)

func TestScreenRendererSprite(t *testing.T) {
	screen := core.NewScreen(80, 24)
	r := NewScreenRenderer(screen, config.DefaultPresentsConfig())

	r.DrawSprite(Sprite{Kind: KindPlayer, Rect: core.NewRectF(175, 125, 50, 50), Color: core.ColorRed, Glyph: '█'})

	cell := screen.GetCell(17, 5)
	if cell.Rune != '█' || cell.Color != core.ColorRed {
		t.Errorf("expected red player cell, got %+v", cell)
	}
	if screen.Get(16, 5) != ' ' || screen.Get(22, 5) != ' ' {
		t.Error("sprite drawn outside its scaled rectangle")
	}
}

func TestScreenRendererHealthBar(t *testing.T) {
	tests := []struct {
		name           string
		current, max   int
		expectedFilled int
	}{
		{"full", 6, 6, 18},
		{"half", 3, 6, 9},
		{"empty", 0, 6, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			screen := core.NewScreen(80, 24)
			r := NewScreenRenderer(screen, config.DefaultPresentsConfig())

			// 200 world units wide at 0.1 cells per unit: 20 cells, 18 inside
			r.DrawHealthBar(tc.current, tc.max, 10, 10)

			if screen.Get(1, 0) != '[' || screen.Get(20, 0) != ']' {
				t.Fatalf("brackets misplaced in %q", screen.Row(0))
			}
			filled := 0
			for x := 2; x < 20; x++ {
				if screen.Get(x, 0) == HealthFull {
					filled++
				}
			}
			if filled != tc.expectedFilled {
				t.Errorf("filled = %d, expected %d", filled, tc.expectedFilled)
			}
		})
	}
}
