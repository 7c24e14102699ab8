package presents

import (
	"context"
	"time"

	"github.com/vovakirdan/presents/internal/core"
)

// InputSource reports the controls held for the coming frame.
type InputSource interface {
	// Poll returns the held actions and whether the user asked to quit.
	Poll() (frame core.InputFrame, quit bool)
}

// Renderer draws entities and the health bar overlay.
type Renderer interface {
	DrawSprite(s Sprite)
	DrawHealthBar(current, max int, x, y float64)
}

// Clock paces the loop to a fixed frame rate.
type Clock interface {
	// Wait blocks until the next frame is due.
	Wait()
}

// TickerClock is a Clock backed by a time.Ticker. Late frames are not made
// up: a slow frame simply delays the next one.
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock creates a clock ticking fps times per second.
func NewTickerClock(fps int) *TickerClock {
	if fps <= 0 {
		fps = 60
	}
	return &TickerClock{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// Wait blocks until the next tick.
func (c *TickerClock) Wait() {
	<-c.ticker.C
}

// Stop releases the underlying ticker.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// Run drives the world until the input source asks to quit or ctx is done.
// Each frame polls input, steps the world, renders it and then waits on the
// clock. Cancellation is only observed between frames.
func Run(ctx context.Context, w *World, in InputSource, r Renderer, clk Clock) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frame, quit := in.Poll()
		if quit {
			return nil
		}

		w.Step(frame)
		w.Draw(r)
		clk.Wait()
	}
}

// InstantClock never waits. Headless runs use it to simulate as fast as
// possible.
type InstantClock struct{}

// Wait returns immediately.
func (InstantClock) Wait() {}

// ScriptedInput holds the same actions for a fixed number of frames and then
// asks to quit. A limit of zero or less never quits.
type ScriptedInput struct {
	frame  core.InputFrame
	limit  int
	polled int
}

// NewScriptedInput creates an input source holding actions for frames polls.
func NewScriptedInput(frames int, actions ...core.Action) *ScriptedInput {
	return &ScriptedInput{frame: core.NewInputFrame(actions...), limit: frames}
}

// Poll returns the scripted frame until the limit is reached.
func (s *ScriptedInput) Poll() (core.InputFrame, bool) {
	if s.limit > 0 && s.polled >= s.limit {
		return core.InputFrame{}, true
	}
	s.polled++
	return s.frame.Clone(), false
}

// Polled returns how many frames have been handed out.
func (s *ScriptedInput) Polled() int {
	return s.polled
}
