package engine

import (
	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/event"
	"github.com/lixenwraith/space-cannon/parameter"
)

// Session holds the per-game counters and lifecycle phase
// Every mutation goes through a named transition so the ammo clamp and multiplier rules live in one place
type Session struct {
	phase core.Phase

	ammo       int
	score      int
	multiplier int
	topScore   int

	bombPresent bool
	multishot   bool
	musicOn     bool

	hudDirty bool
	emit     *event.Emitter
}

func NewSession(emit *event.Emitter) *Session {
	s := &Session{
		phase:   core.PhaseIdle,
		musicOn: true,
		emit:    emit,
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.ammo = parameter.AmmoMax
	s.score = 0
	s.multiplier = 1
	s.bombPresent = false
	s.multishot = false
	s.hudDirty = true
}

func (s *Session) setPhase(to core.Phase) {
	from := s.phase
	s.phase = to
	s.emit.Emit(event.EventStateChange, &event.StateChangePayload{From: from, To: to})
}

// === Lifecycle ===

func (s *Session) Phase() core.Phase { return s.phase }

func (s *Session) IsPlaying() bool { return s.phase == core.PhasePlaying }

func (s *Session) IsPaused() bool { return s.phase == core.PhasePaused }

func (s *Session) IsGameOver() bool { return s.phase == core.PhaseGameOver }

// StartGame resets the counters and enters Playing, allowed from Idle or GameOver only
func (s *Session) StartGame() bool {
	if s.phase != core.PhaseIdle && s.phase != core.PhaseGameOver {
		return false
	}
	s.reset()
	s.setPhase(core.PhasePlaying)
	return true
}

// TogglePause flips between Playing and Paused, other phases are unaffected
func (s *Session) TogglePause() bool {
	switch s.phase {
	case core.PhasePlaying:
		s.setPhase(core.PhasePaused)
	case core.PhasePaused:
		s.setPhase(core.PhasePlaying)
	default:
		return false
	}
	return true
}

// EndGame enters the terminal GameOver phase from Playing
func (s *Session) EndGame() bool {
	if s.phase != core.PhasePlaying {
		return false
	}
	s.multishot = false
	s.bombPresent = false
	s.setPhase(core.PhaseGameOver)
	return true
}

// === Ammo ===

func (s *Session) Ammo() int { return s.ammo }

// SetAmmo stores n clamped to [0, AmmoMax]
func (s *Session) SetAmmo(n int) {
	s.ammo = min(max(n, 0), parameter.AmmoMax)
	s.hudDirty = true
}

// ConsumeAmmo spends one unit, false when empty
// Emptying the magazine in multishot mode ends the mode and refills it
func (s *Session) ConsumeAmmo() bool {
	if s.ammo <= 0 {
		return false
	}
	s.ammo--
	if s.multishot && s.ammo == 0 {
		s.multishot = false
		s.ammo = parameter.AmmoMax
	}
	s.hudDirty = true
	return true
}

// RegenAmmo adds one unit unless multishot mode freezes regeneration
func (s *Session) RegenAmmo() bool {
	if s.multishot || s.ammo >= parameter.AmmoMax {
		return false
	}
	s.ammo++
	s.hudDirty = true
	return true
}

// === Score ===

func (s *Session) Score() int { return s.score }

func (s *Session) Multiplier() int { return s.multiplier }

// AddScore credits one kill at the current multiplier and returns the points awarded
func (s *Session) AddScore() int {
	s.score += s.multiplier
	s.hudDirty = true
	return s.multiplier
}

func (s *Session) IncrementMultiplier() {
	s.multiplier++
	s.hudDirty = true
}

func (s *Session) ResetMultiplier() {
	if s.multiplier != 1 {
		s.multiplier = 1
		s.hudDirty = true
	}
}

func (s *Session) TopScore() int { return s.topScore }

func (s *Session) SetTopScore(n int) {
	s.topScore = max(n, 0)
}

// PromoteTopScore raises the top score to the session score when beaten
func (s *Session) PromoteTopScore() bool {
	if s.score <= s.topScore {
		return false
	}
	s.topScore = s.score
	return true
}

// === Flags ===

func (s *Session) BombPresent() bool { return s.bombPresent }

func (s *Session) SetBombPresent(v bool) { s.bombPresent = v }

func (s *Session) Multishot() bool { return s.multishot }

// EnterMultishot switches on multishot with a full magazine
func (s *Session) EnterMultishot() {
	s.multishot = true
	s.ammo = parameter.AmmoMax
	s.hudDirty = true
}

func (s *Session) MusicOn() bool { return s.musicOn }

// ToggleMusic flips the music switch and returns the new state
func (s *Session) ToggleMusic() bool {
	s.musicOn = !s.musicOn
	s.emit.Emit(event.EventMusicToggle, &event.MusicTogglePayload{Enabled: s.musicOn})
	return s.musicOn
}

// === HUD ===

// Hud returns the current counters for presentation
func (s *Session) Hud() event.HudPayload {
	return event.HudPayload{Score: s.score, Multiplier: s.multiplier, Ammo: s.ammo, Multishot: s.multishot}
}

// TakeHudDirty reports and clears the counters-changed flag
func (s *Session) TakeHudDirty() bool {
	d := s.hudDirty
	s.hudDirty = false
	return d
}
