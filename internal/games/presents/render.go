package presents

import (
	"fmt"
	"math"

	"github.com/vovakirdan/presents/internal/config"
	"github.com/vovakirdan/presents/internal/core"
)

// Health bar glyphs
const (
	HealthFull  = '█'
	HealthEmpty = '░'
)

// ScreenRenderer draws world-unit sprites onto a terminal cell buffer,
// scaling the world to fill the screen.
type ScreenRenderer struct {
	dst    *core.Screen
	sx, sy float64
	barW   float64
}

// NewScreenRenderer creates a renderer mapping cfg's world onto dst.
func NewScreenRenderer(dst *core.Screen, cfg config.PresentsConfig) *ScreenRenderer {
	return &ScreenRenderer{
		dst:  dst,
		sx:   float64(dst.Width()) / cfg.Screen.Width,
		sy:   float64(dst.Height()) / cfg.Screen.Height,
		barW: cfg.HealthBar.Width,
	}
}

// DrawSprite fills the sprite's cells with its glyph.
func (r *ScreenRenderer) DrawSprite(s Sprite) {
	r.dst.DrawRect(s.Rect.Scale(r.sx, r.sy), s.Glyph, s.Color)
}

// DrawHealthBar draws a bracketed bar whose filled part is proportional to
// current/max, followed by the numeric value.
func (r *ScreenRenderer) DrawHealthBar(current, max int, x, y float64) {
	cx := int(x * r.sx)
	cy := int(y * r.sy)
	width := core.Max(int(r.barW*r.sx), 4)
	inner := width - 2

	filled := 0
	if max > 0 {
		filled = int(math.Round(float64(core.Clamp(current, 0, max)) / float64(max) * float64(inner)))
	}

	r.dst.SetColored(cx, cy, '[', core.ColorWhite)
	for i := range inner {
		if i < filled {
			r.dst.SetColored(cx+1+i, cy, HealthFull, core.ColorGreen)
		} else {
			r.dst.SetColored(cx+1+i, cy, HealthEmpty, core.ColorGray)
		}
	}
	r.dst.SetColored(cx+width-1, cy, ']', core.ColorWhite)

	r.dst.DrawText(cx+width+1, cy, fmt.Sprintf("HP %d/%d", current, max))
}
