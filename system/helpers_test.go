package system

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/engine"
	"github.com/lixenwraith/space-cannon/event"
	"github.com/lixenwraith/space-cannon/parameter"
)

// scriptedRandom replays fixed draws, then falls back to mid-range floats and non-zero ints
type scriptedRandom struct {
	floats []float64
	ints   []int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRandom) IntN(n int) int {
	if len(r.ints) == 0 {
		return n - 1
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

type killRecorder struct {
	kills int
	gone  []core.Category
}

func (k *killRecorder) RecordKill(n int)              { k.kills += n }
func (k *killRecorder) PowerUpGone(cat core.Category) { k.gone = append(k.gone, cat) }

// newPlayingResources returns resources for a running game with every shield in play
func newPlayingResources() (*engine.Resources, *event.EventQueue) {
	q := event.NewEventQueue()
	res := engine.NewResources(event.NewEmitter(q), nil, parameter.DefaultTuning(), nil)
	res.Session.StartGame()
	res.Shields.ActivateAll()
	q.Consume()
	return res, q
}

func spawnAt(res *engine.Resources, cat core.Category, x, y float64, tag core.Tag) core.Entity {
	return res.Registry.Create(cat, core.Vec2{X: x, Y: y}, core.Vec2{}, tag)
}

func countType(events []event.GameEvent, t event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func countVisuals(events []event.GameEvent, kind core.VisualKind) int {
	n := 0
	for _, ev := range events {
		if p, ok := ev.Payload.(*event.VisualPayload); ok && p.Kind == kind {
			n++
		}
	}
	return n
}

func countSounds(events []event.GameEvent, s core.SoundType) int {
	n := 0
	for _, ev := range events {
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok && p.SoundType == s {
			n++
		}
	}
	return n
}

var quietLog = zerolog.Nop()
