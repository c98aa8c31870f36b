package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/event"
	"github.com/lixenwraith/space-cannon/parameter"
)

// drain counts samples until the streamer finishes, capped to catch endless streams
func drain(s beep.Streamer, limit int) int {
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return total
}

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, zerolog.Nop())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	if sm.Play(core.SoundLaser) {
		t.Error("Expected Play to drop without initialization")
	}
	sm.SetMusic(false)
	sm.SetPaused(true)
	sm.HandleEvent(event.GameEvent{Type: event.EventSoundRequest, Payload: &event.SoundRequestPayload{SoundType: core.SoundExplosion}})
	sm.Cleanup()
}

// TestSoundManagerDisabled verifies a disabled config never touches the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, zerolog.Nop())

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Expected no error when disabled, got %v", err)
	}
	if sm.IsInitialized() {
		t.Error("Expected disabled manager to stay uninitialized")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil, zerolog.Nop())

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.Cleanup()
}

func TestSoundManagerMusicToggle(t *testing.T) {
	sm := NewSoundManager(nil, zerolog.Nop())

	sm.HandleEvent(event.GameEvent{Type: event.EventMusicToggle, Payload: &event.MusicTogglePayload{Enabled: false}})
	if sm.MusicOn() {
		t.Error("Expected music off after toggle event")
	}
	sm.HandleEvent(event.GameEvent{Type: event.EventMusicToggle, Payload: &event.MusicTogglePayload{Enabled: true}})
	if !sm.MusicOn() {
		t.Error("Expected music on after toggle event")
	}
}

func TestSoundManagerRateLimit(t *testing.T) {
	sm := NewSoundManager(nil, zerolog.Nop())
	now := time.Unix(100, 0)
	sm.now = func() time.Time { return now }

	if !sm.allow(core.SoundExplosion) {
		t.Fatal("Expected first play allowed")
	}
	if sm.allow(core.SoundExplosion) {
		t.Error("Expected immediate repeat dropped")
	}
	if !sm.allow(core.SoundLaser) {
		t.Error("Expected a different sound allowed")
	}

	now = now.Add(parameter.MinSoundGap)
	if !sm.allow(core.SoundExplosion) {
		t.Error("Expected repeat allowed after the gap")
	}
	if sm.allow(core.SoundTypeCount) {
		t.Error("Expected unknown sound rejected")
	}
}

func TestSoundEffectsAreFinite(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		sound core.SoundType
		want  time.Duration
	}{
		{core.SoundLaser, parameter.LaserSoundDuration},
		{core.SoundBounce, parameter.BounceSoundDuration},
		{core.SoundExplosion, parameter.ExplosionSoundDuration},
		{core.SoundDeepExplosion, parameter.DeepExplosionSoundDuration},
		{core.SoundShieldUp, parameter.PickupSoundDuration},
		{core.SoundPowerUp, parameter.PickupSoundDuration},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.sound, cfg)
			if s == nil {
				t.Fatal("Expected a streamer")
			}
			if got, want := drain(s, rate.N(10*time.Second)), rate.N(tt.want); got != want {
				t.Errorf("Expected %d samples, got %d", want, got)
			}
		})
	}

	if GetSoundEffect(core.SoundTypeCount, cfg) != nil {
		t.Error("Expected nil for unknown sound")
	}
}

func TestMusicLoopsForever(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	m := NewMusic(cfg)

	limit := rate.N(3 * time.Second)
	if got := drain(m, limit); got < limit {
		t.Errorf("Expected endless music, stopped after %d samples", got)
	}
}
