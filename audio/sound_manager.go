package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/event"
	"github.com/lixenwraith/space-cannon/parameter"
)

// SoundManager manages all game audio
// Every operation is a silent no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	log         zerolog.Logger
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicOn     bool
	paused      bool
	initialized bool
	lastPlayed  [core.SoundTypeCount]time.Time
	now         func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *Config, log zerolog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:     cfg,
		log:     log.With().Str("component", "audio").Logger(),
		mixer:   &beep.Mixer{},
		musicOn: cfg.Music,
		now:     time.Now,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	sm.music = &beep.Ctrl{Streamer: NewMusic(sm.cfg), Paused: !sm.musicOn}
	sm.mixer.Add(sm.music)
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info().Int("sample_rate", sm.cfg.SampleRate).Bool("music", sm.musicOn).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.music.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker teardown, clearing the mixer silences the stream
	sm.initialized = false
}

// IsInitialized reports whether sound output is live
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// allow rate-limits repeats of one sound, bomb chains would otherwise stack dozens of explosions
func (sm *SoundManager) allow(st core.SoundType) bool {
	if st < 0 || st >= core.SoundTypeCount {
		return false
	}
	now := sm.now()
	if now.Sub(sm.lastPlayed[st]) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlayed[st] = now
	return true
}

// Play queues one sound effect, returns false when dropped
func (sm *SoundManager) Play(st core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.paused || !sm.allow(st) {
		return false
	}
	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// SetMusic switches the background loop
func (sm *SoundManager) SetMusic(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.musicOn = on
	sm.applyMusic()
}

// SetPaused silences effects and music while the game is paused
func (sm *SoundManager) SetPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.paused = paused
	sm.applyMusic()
}

func (sm *SoundManager) applyMusic() {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.music.Paused = !sm.musicOn || sm.paused
	speaker.Unlock()
}

// MusicOn reports the music switch
func (sm *SoundManager) MusicOn() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicOn
}

// HandleEvent implements event.Handler
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.SoundRequestPayload:
		sm.Play(p.SoundType)
	case *event.MusicTogglePayload:
		sm.SetMusic(p.Enabled)
	case *event.StateChangePayload:
		sm.SetPaused(p.To == core.PhasePaused)
	}
}

// EventTypes implements event.Handler
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest, event.EventMusicToggle, event.EventStateChange}
}
