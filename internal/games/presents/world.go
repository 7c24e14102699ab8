package presents

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/presents/internal/config"
	"github.com/vovakirdan/presents/internal/core"
)

// World holds all simulation state. It is owned by whoever drives the frame
// loop; players, enemies and the level loader borrow it for one call.
type World struct {
	cfg    config.PresentsConfig
	levels *LevelTable
	logger *log.Logger

	Player      *Player
	Chimney     *Chimney
	Platforms   []*Platform
	Enemies     []Enemy
	Projectiles []*Projectile

	level        int
	cleared      int
	frame        int
	complete     bool
	atChimney    bool // Player overlapped the chimney at the end of the last check
	levelChanged bool
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for level transitions.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithLevels replaces the built-in level table.
func WithLevels(t *LevelTable) Option {
	return func(w *World) {
		if t != nil {
			w.levels = t
		}
	}
}

// WithStartLevel starts the world at level n instead of level 1.
func WithStartLevel(n int) Option {
	return func(w *World) {
		if n >= 1 {
			w.level = n
		}
	}
}

// NewWorld builds a world and loads its first level.
func NewWorld(cfg config.PresentsConfig, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("presents: %w", err)
	}

	w := &World{
		cfg:    cfg,
		logger: log.New(io.Discard),
		level:  1,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.levels == nil {
		w.levels = BuiltinLevels()
	}

	w.Player = newPlayer(cfg.Player)
	w.Chimney = &Chimney{Rect: core.NewRectF(0, 0, cfg.Chimney.Width, cfg.Chimney.Height)}

	if err := w.LoadLevel(w.level); errors.Is(err, ErrNoMoreLevels) {
		w.finish()
	}
	return w, nil
}

// Config returns the gameplay constants in use.
func (w *World) Config() config.PresentsConfig { return w.cfg }

// Level returns the current level ordinal.
func (w *World) Level() int { return w.level }

// Cleared returns how many chimneys have been reached.
func (w *World) Cleared() int { return w.cleared }

// Frame returns the number of frames stepped so far.
func (w *World) Frame() int { return w.frame }

// Complete reports whether the world ran out of levels.
func (w *World) Complete() bool { return w.complete }

// Levels returns the level table in use.
func (w *World) Levels() *LevelTable { return w.levels }

// Step advances the simulation one frame: the player first, then every enemy
// in collection order, then every projectile. It reports whether a level
// transition happened. A completed world no longer changes.
func (w *World) Step(in core.InputFrame) bool {
	if w.complete {
		return false
	}
	w.frame++
	w.levelChanged = false

	w.Player.Update(in, w)

	for _, e := range w.Enemies {
		e.Step(w)
	}

	screenW := w.cfg.Screen.Width
	for _, p := range w.Projectiles {
		p.step(screenW)
	}
	w.Projectiles = compactProjectiles(w.Projectiles)

	return w.levelChanged
}

// LoadLevel discards every platform, enemy and projectile and builds level n.
// The player and chimney survive; only the chimney is moved. An index outside
// the table leaves the world empty and returns ErrNoMoreLevels.
func (w *World) LoadLevel(n int) error {
	clear(w.Platforms)
	clear(w.Enemies)
	clear(w.Projectiles)
	w.Platforms = w.Platforms[:0]
	w.Enemies = w.Enemies[:0]
	w.Projectiles = w.Projectiles[:0]
	w.level = n

	spec, ok := w.levels.Level(n)
	if !ok {
		return ErrNoMoreLevels
	}

	for _, ps := range spec.Platforms {
		w.Platforms = append(w.Platforms, &Platform{
			ID:      ps.ID,
			Rect:    core.NewRectF(ps.X, ps.Y, ps.W, ps.H),
			Surface: ps.Surface,
		})
	}

	ec := w.cfg.Enemies
	for _, es := range spec.Enemies {
		rect := core.NewRectF(es.X, es.Y, ec.Width, ec.Height)
		switch es.Kind {
		case EnemyParent:
			w.Enemies = append(w.Enemies, NewParent(rect, w.Platforms[es.Home], ec.PatrolSpeed, w.cfg.Damage.Parent))
		case EnemyCEO:
			w.Enemies = append(w.Enemies, NewCEO(rect, ec.FireInterval, w.cfg.Damage.CEO))
		}
	}

	w.Chimney.Rect.X = spec.ChimneyX
	w.Chimney.Rect.Y = spec.ChimneyY

	w.logger.Debug("level loaded", "level", n, "name", spec.Name,
		"platforms", len(w.Platforms), "enemies", len(w.Enemies))
	return nil
}

// checkChimney advances the level when the player starts touching the
// chimney. Staying in contact does not advance again.
func (w *World) checkChimney() {
	touching := w.Player.Rect.Overlaps(w.Chimney.Rect)
	entered := touching && !w.atChimney
	w.atChimney = touching
	if !entered {
		return
	}

	w.cleared++
	w.levelChanged = true
	w.Player.moveToStart()
	if err := w.LoadLevel(w.level + 1); errors.Is(err, ErrNoMoreLevels) {
		w.finish()
	}
}

func (w *World) finish() {
	w.complete = true
	w.logger.Info("all levels complete", "cleared", w.cleared, "deaths", w.Player.Deaths, "frames", w.frame)
}

// spawnProjectile adds a projectile whose top-left corner is at (x, y).
func (w *World) spawnProjectile(x, y float64) {
	pc := w.cfg.Projectile
	w.Projectiles = append(w.Projectiles, &Projectile{
		Rect: core.NewRectF(x, y, pc.Width, pc.Height),
		VX:   pc.Speed,
	})
}

// Draw hands every entity to the renderer, then the health bar on top.
func (w *World) Draw(r Renderer) {
	for _, p := range w.Platforms {
		r.DrawSprite(p.Sprite())
	}
	r.DrawSprite(w.Chimney.Sprite())
	for _, e := range w.Enemies {
		r.DrawSprite(e.Sprite())
	}
	for _, p := range w.Projectiles {
		r.DrawSprite(p.Sprite())
	}
	r.DrawSprite(w.Player.Sprite())

	hb := w.cfg.HealthBar
	r.DrawHealthBar(w.Player.Health, w.Player.MaxHealth, hb.X, hb.Y)
}
