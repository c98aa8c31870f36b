// Package game is the session core: one Step per frame resolves contacts, sweeps and spawns
package game

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/engine"
	"github.com/lixenwraith/space-cannon/event"
	"github.com/lixenwraith/space-cannon/logging"
	"github.com/lixenwraith/space-cannon/parameter"
	"github.com/lixenwraith/space-cannon/score"
	"github.com/lixenwraith/space-cannon/status"
	"github.com/lixenwraith/space-cannon/system"
)

// persistTimeout bounds a best-score load or save
const persistTimeout = 2 * time.Second

// Options configures a Game; zero values select defaults
type Options struct {
	Tuning   parameter.Tuning
	Queue    *event.EventQueue // Receives presentation events, a new queue when nil
	Bodies   core.BodySource   // Physics positions, registry positions when nil
	Scores   score.Store       // Best-score persistence, in-memory when nil
	Random   system.Random     // Spawn chance, time-seeded when nil
	Status   *status.Registry
	Logger   zerolog.Logger
	MusicOff bool // Start with music muted
}

// Game owns the session state and serializes every entry point behind one mutex
type Game struct {
	mu sync.Mutex

	res    *engine.Resources
	queue  *event.EventQueue
	scores score.Store
	log    zerolog.Logger

	cannon    *system.CannonSystem
	collision *system.CollisionSystem
	sweep     *system.SweepSystem
	spawn     *system.SpawnSystem

	lifeBar core.Entity
	edges   [2]core.Entity

	statGames   *atomic.Int64
	statScore   *atomic.Int64
	statTop     *atomic.Int64
	statLive    *atomic.Int64
	statDropped *atomic.Int64
	statFrame   *atomic.Int64
	statMulti   *atomic.Bool
	statMusic   *atomic.Bool
	statPhase   *status.AtomicString
}

// New builds an idle game, loads the best score and shows the menu
func New(opts Options) *Game {
	queue := opts.Queue
	if queue == nil {
		queue = event.NewEventQueue()
	}
	scores := opts.Scores
	if scores == nil {
		scores = score.NewMemoryStore()
	}
	rng := opts.Random
	if rng == nil {
		rng = system.NewRandom(uint64(time.Now().UnixNano()))
	}
	tuning := opts.Tuning
	if tuning == (parameter.Tuning{}) {
		tuning = parameter.DefaultTuning()
	}

	log := opts.Logger.With().Str("component", "game").Logger()
	res := engine.NewResources(event.NewEmitter(queue), opts.Bodies, tuning, opts.Status)

	g := &Game{
		res:    res,
		queue:  queue,
		scores: scores,
		log:    log,

		statGames:   res.Status.Ints.Get(status.KeyGamesPlayed),
		statScore:   res.Status.Ints.Get(status.KeyScore),
		statTop:     res.Status.Ints.Get(status.KeyTopScore),
		statLive:    res.Status.Ints.Get(status.KeyLiveEntities),
		statDropped: res.Status.Ints.Get(status.KeyEventsDropped),
		statFrame:   res.Status.Ints.Get(status.KeyEventsFrame),
		statMulti:   res.Status.Bools.Get(status.KeyMultishot),
		statMusic:   res.Status.Bools.Get(status.KeyMusic),
		statPhase:   res.Status.Strings.Get(status.KeyPhase),
	}

	g.spawn = system.NewSpawnSystem(res, rng, opts.Logger)
	g.collision = system.NewCollisionSystem(res, g.spawn, rng, logging.Sampled(opts.Logger))
	g.collision.OnLifeBarLost = g.gameOver
	g.sweep = system.NewSweepSystem(res, g.spawn, opts.Logger)
	g.cannon = system.NewCannonSystem(res, opts.Logger)

	t := res.Tuning
	g.edges[0] = res.Registry.Create(core.CategoryEdge, core.Vec2{X: 0, Y: t.Height / 2}, core.Vec2{}, core.TagNone)
	g.edges[1] = res.Registry.Create(core.CategoryEdge, core.Vec2{X: t.Width, Y: t.Height / 2}, core.Vec2{}, core.TagNone)

	if opts.MusicOff {
		res.Session.ToggleMusic()
	}
	res.Session.SetTopScore(g.loadTopScore())

	res.Emit.Emit(event.EventMenuShow, &event.MenuPayload{Score: 0, TopScore: res.Session.TopScore()})
	g.publishStatus()
	return g
}

func (g *Game) loadTopScore() int {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	top, err := g.scores.LoadTopScore(ctx)
	if err != nil {
		g.log.Error().Err(err).Msg("loading top score failed, starting from 0")
		return 0
	}
	return top
}

// Step advances one frame: contacts, sweep, spawners, queued burst shots, HUD
// Returns immediately while paused
func (g *Game) Step(dt time.Duration, contacts []core.Contact) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.res.Emit.NextFrame()
	session := g.res.Session
	if session.IsPaused() {
		return
	}

	if session.IsPlaying() {
		g.collision.Resolve(contacts)
	}
	if session.IsPlaying() {
		g.sweep.Update()
		g.spawn.Update(dt)
	}
	g.cannon.Update(dt)

	if session.TakeHudDirty() {
		hud := session.Hud()
		g.res.Emit.Emit(event.EventHudUpdate, &hud)
	}
	g.publishStatus()
}

// Fire handles the fire intent, ignored unless Playing
func (g *Game) Fire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cannon.Fire()
}

// TogglePause flips Playing and Paused, returns whether the game is now paused
func (g *Game) TogglePause() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.res.Session.TogglePause() {
		g.log.Info().Stringer("phase", g.res.Session.Phase()).Msg("pause toggled")
	}
	return g.res.Session.IsPaused()
}

// ToggleMusic flips the music switch and returns the new state
func (g *Game) ToggleMusic() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.res.Session.ToggleMusic()
}

// NewGame clears the field, re-seeds the life bar and shields and starts playing
// Allowed from Idle or GameOver only
func (g *Game) NewGame() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	res := g.res
	if !res.Session.StartGame() {
		return false
	}

	g.clearField(false)
	res.Shields.DeactivateAll()
	res.Shields.ActivateAll()

	res.Registry.Destroy(g.lifeBar)
	g.lifeBar = res.Registry.Create(core.CategoryLifeBar,
		core.Vec2{X: res.Tuning.Width / 2, Y: res.Tuning.LifeBarRow()}, core.Vec2{}, core.TagNone)

	g.spawn.Reset()
	g.cannon.Reset()

	res.Emit.Emit(event.EventMenuHide, nil)
	g.statGames.Add(1)
	g.log.Info().Int("top_score", res.Session.TopScore()).Msg("new game")
	return true
}

// gameOver runs inside Step through the collision system, the lock is already held
func (g *Game) gameOver() {
	res := g.res
	if !res.Session.EndGame() {
		return
	}

	g.clearField(true)
	res.Shields.DeactivateAll()
	res.Registry.Destroy(g.lifeBar)
	g.cannon.Reset()

	session := res.Session
	if session.PromoteTopScore() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		if err := g.scores.SaveTopScore(ctx, session.TopScore()); err != nil {
			g.log.Error().Err(err).Int("score", session.TopScore()).Msg("saving top score failed")
		}
		cancel()
	}

	res.Emit.Emit(event.EventMenuShow, &event.MenuPayload{Score: session.Score(), TopScore: session.TopScore()})
	g.log.Info().Int("score", session.Score()).Int("top_score", session.TopScore()).Msg("game over")
}

// clearField destroys every target, projectile and power-up
func (g *Game) clearField(explode bool) {
	reg := g.res.Registry
	for _, e := range reg.Entities(core.CategoryTarget) {
		if explode {
			if p, ok := g.res.PositionOf(e); ok {
				g.res.Visual(core.VisualExplosion, p)
			}
		}
		reg.Destroy(e)
	}
	for _, cat := range []core.Category{core.CategoryProjectile, core.CategoryShieldPowerUp, core.CategoryCannonPowerUp} {
		for _, e := range reg.Entities(cat) {
			reg.Destroy(e)
		}
	}
}

func (g *Game) publishStatus() {
	s := g.res.Session
	g.statScore.Store(int64(s.Score()))
	g.statTop.Store(int64(s.TopScore()))
	g.statLive.Store(int64(g.res.Registry.Len()))
	g.statDropped.Store(int64(g.queue.Dropped()))
	g.statFrame.Store(int64(g.queue.DeliveredFrame()))
	g.statMulti.Store(s.Multishot())
	g.statMusic.Store(s.MusicOn())
	g.statPhase.Store(s.Phase().String())
}

// Queue returns the presentation event queue
func (g *Game) Queue() *event.EventQueue { return g.queue }

// Cannon returns the cannon origin and current aim angle in radians
func (g *Game) Cannon() (core.Vec2, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cannon.Origin(), g.cannon.Angle()
}

// Phase returns the session phase
func (g *Game) Phase() core.Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.res.Session.Phase()
}

// Edges returns the left and right wall entities
func (g *Game) Edges() [2]core.Entity { return g.edges }

// Events drains pending presentation events
func (g *Game) Events() []event.GameEvent { return g.queue.Consume() }
