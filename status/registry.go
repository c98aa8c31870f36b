package status

import "sync/atomic"

// Registry is the central metrics facade
// Systems cache pointers during construction; step loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Metric keys written by the simulation
const (
	KeyShotsFired     = "shots.fired"
	KeyTargetsSpawned = "targets.spawned"
	KeyTargetsKilled  = "targets.killed"
	KeyBombsDetonated = "bombs.detonated"
	KeyShieldsLost    = "shields.lost"
	KeyPowerUps       = "powerups.collected"
	KeyGamesPlayed    = "games.played"
	KeyScore          = "session.score"
	KeyTopScore       = "session.top_score"
	KeyLiveEntities   = "entities.live"
	KeyEventsDropped  = "events.dropped"
	KeyEventsFrame    = "events.delivered_frame"
	KeySpawnRate      = "spawn.rate"
	KeyMultishot      = "session.multishot"
	KeyMusic          = "session.music"
	KeyPhase          = "session.phase"
)
