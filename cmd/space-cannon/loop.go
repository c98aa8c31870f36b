package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/engine"
	"github.com/lixenwraith/space-cannon/event"
	"github.com/lixenwraith/space-cannon/game"
	"github.com/lixenwraith/space-cannon/input"
	"github.com/lixenwraith/space-cannon/physics"
	"github.com/lixenwraith/space-cannon/render"
)

// loop owns the frame ticker and serializes input, simulation and drawing on one goroutine
type loop struct {
	game     *game.Game
	world    *physics.World
	renderer *render.Renderer
	router   *event.Router
	keys     *input.KeyTable
	screen   tcell.Screen
	clock    *engine.PausableClock
	log      zerolog.Logger
}

func (l *loop) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)

	// Input polling runs on its own goroutine as it blocks on the terminal
	core.Go(func() { l.poll(events, done) })

	for {
		select {
		case ev := <-events:
			intent := l.keys.Translate(ev)
			if intent == input.IntentResize {
				l.screen.Sync()
				continue
			}
			if !l.handle(intent) {
				return
			}
			l.router.DispatchAll()

		case <-ticker.C:
			l.frame()
		}
	}
}

// poll forwards terminal events until the screen is finalized or the loop has returned
func (l *loop) poll(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := l.screen.PollEvent()
		// Screen finalized
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handle applies one intent, returns false on quit
func (l *loop) handle(intent input.Intent) bool {
	switch intent {
	case input.IntentQuit:
		return false
	case input.IntentFire:
		if inMenu(l.game.Phase()) {
			l.game.NewGame()
		} else {
			l.game.Fire()
		}
	case input.IntentNewGame:
		l.game.NewGame()
	case input.IntentPause:
		if l.game.TogglePause() {
			l.clock.Pause()
		} else {
			l.clock.Resume()
		}
	case input.IntentToggleMusic:
		l.game.ToggleMusic()
	}
	if intent != input.IntentNone {
		l.log.Debug().Stringer("intent", intent).Msg("input")
	}
	return true
}

// frame runs physics, the simulation step, event delivery and drawing
func (l *loop) frame() {
	dt := l.clock.Tick()
	if !l.clock.IsPaused() {
		contacts := l.world.Step(dt.Seconds())
		l.game.Step(dt, contacts)
	}
	l.router.DispatchAll()

	l.renderer.SetCannon(l.game.Cannon())
	l.renderer.Draw()
}

func inMenu(p core.Phase) bool {
	return p == core.PhaseIdle || p == core.PhaseGameOver
}
