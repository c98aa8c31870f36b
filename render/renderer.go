package render

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/engine"
	"github.com/lixenwraith/space-cannon/event"
	"github.com/lixenwraith/space-cannon/parameter"
)

type sprite struct {
	category core.Category
	tag      core.Tag
	pos      core.Vec2
}

type effect struct {
	kind core.VisualKind
	pos  core.Vec2
	born time.Time
}

type cell struct{ x, y int }

// trail is the recent cells of a projectile, kept briefly after it is gone
type trail struct {
	cells []cell
	gone  time.Time
}

// layer is one draw pass
type layer struct {
	priority RenderPriority
	draw     func(f *frame)
}

// frame is the per-Draw context handed to layers
type frame struct {
	vp  Viewport
	now time.Time
}

// Renderer is the terminal presentation sink: it mirrors simulation events and draws on demand
type Renderer struct {
	mu sync.Mutex

	screen tcell.Screen
	bodies core.BodySource
	clock  engine.TimeSource
	width  float64
	height float64

	shieldWidth float64

	sprites map[core.Entity]*sprite
	trails  map[core.Entity]*trail
	effects []effect

	hud   event.HudPayload
	menu  *event.MenuPayload
	phase core.Phase
	music bool

	cannonOrigin core.Vec2
	cannonAngle  float64

	layers []layer
}

// NewRenderer creates a renderer for a playfield of the given world size
// Positions come from bodies when it knows the entity, otherwise from the spawn event
func NewRenderer(screen tcell.Screen, bodies core.BodySource, width, height float64, clock engine.TimeSource) *Renderer {
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	r := &Renderer{
		screen:      screen,
		bodies:      bodies,
		clock:       clock,
		width:       width,
		height:      height,
		shieldWidth: parameter.Tuning{Width: width, Height: height}.ShieldWidth(),
		sprites:     make(map[core.Entity]*sprite),
		trails:      make(map[core.Entity]*trail),
		hud:         event.HudPayload{Ammo: parameter.AmmoMax, Multiplier: 1},
		music:       true,
	}

	r.layers = []layer{
		{PriorityUI, r.drawHud},
		{PriorityOverlay, r.drawMenu},
		{PriorityEffects, r.drawEffects},
		{PriorityLifeBar, r.drawLifeBar},
		{PriorityShield, r.drawShields},
		{PriorityTrail, r.drawTrails},
		{PriorityEntities, r.drawEntities},
		{PriorityCannon, r.drawCannon},
	}
	slices.SortFunc(r.layers, func(a, b layer) int { return int(a.priority - b.priority) })
	return r
}

// HandleEvent implements event.Handler
func (r *Renderer) HandleEvent(ev event.GameEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch p := ev.Payload.(type) {
	case *event.EntitySpawnedPayload:
		if p.Category == core.CategoryEdge || p.Category == core.CategoryShieldBlock {
			return
		}
		r.sprites[p.Entity] = &sprite{category: p.Category, tag: p.Tag, pos: p.Position}
		if p.Category == core.CategoryProjectile {
			r.trails[p.Entity] = &trail{}
		}
	case *event.EntityDestroyedPayload:
		delete(r.sprites, p.Entity)
		if t, ok := r.trails[p.Entity]; ok {
			t.gone = r.clock.Now()
		}
	case *event.ShieldPayload:
		if ev.Type == event.EventShieldActivated {
			r.sprites[p.Entity] = &sprite{category: core.CategoryShieldBlock, pos: p.Position}
		} else {
			delete(r.sprites, p.Entity)
		}
	case *event.VisualPayload:
		r.effects = append(r.effects, effect{kind: p.Kind, pos: p.Position, born: r.clock.Now()})
	case *event.HudPayload:
		r.hud = *p
	case *event.MenuPayload:
		m := *p
		r.menu = &m
	case *event.StateChangePayload:
		r.phase = p.To
	case *event.MusicTogglePayload:
		r.music = p.Enabled
	case nil:
		if ev.Type == event.EventMenuHide {
			r.menu = nil
		}
	}
}

// EventTypes implements event.Handler
func (r *Renderer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEntitySpawned,
		event.EventEntityDestroyed,
		event.EventShieldActivated,
		event.EventShieldDeactivated,
		event.EventVisualSpawn,
		event.EventHudUpdate,
		event.EventMenuShow,
		event.EventMenuHide,
		event.EventStateChange,
		event.EventMusicToggle,
	}
}

// SetCannon updates the cannon pose drawn at the bottom of the field
func (r *Renderer) SetCannon(origin core.Vec2, angle float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cannonOrigin = origin
	r.cannonAngle = angle
}

// Draw renders one frame and shows it
func (r *Renderer) Draw() {
	r.mu.Lock()
	defer r.mu.Unlock()

	cols, rows := r.screen.Size()
	f := &frame{
		vp:  Viewport{Cols: cols, Rows: rows, Width: r.width, Height: r.height},
		now: r.clock.Now(),
	}

	r.age(f)

	r.screen.SetStyle(fg(RgbHud))
	r.screen.Clear()
	for _, l := range r.layers {
		l.draw(f)
	}
	r.screen.Show()
}

// age records trail cells and drops expired effects and trails
func (r *Renderer) age(f *frame) {
	for e, t := range r.trails {
		if !t.gone.IsZero() {
			if f.now.Sub(t.gone) > parameter.TrailFade {
				delete(r.trails, e)
			}
			continue
		}
		x, y, ok := f.vp.Cell(r.position(e))
		if !ok {
			continue
		}
		c := cell{x, y}
		if n := len(t.cells); n > 0 && t.cells[n-1] == c {
			continue
		}
		t.cells = append(t.cells, c)
		if len(t.cells) > parameter.TrailLength {
			t.cells = t.cells[1:]
		}
	}

	r.effects = slices.DeleteFunc(r.effects, func(fx effect) bool {
		return f.now.Sub(fx.born) > lifetime(fx.kind)
	})
}

func lifetime(kind core.VisualKind) time.Duration {
	switch kind {
	case core.VisualDeepExplosion:
		return parameter.DeepExplosionLifetime
	case core.VisualBounceExplosion:
		return parameter.BounceFlashLifetime
	default:
		return parameter.ExplosionLifetime
	}
}

func (r *Renderer) position(e core.Entity) core.Vec2 {
	if r.bodies != nil {
		if p, ok := r.bodies.Position(e); ok {
			return p
		}
	}
	if s, ok := r.sprites[e]; ok {
		return s.pos
	}
	return core.Vec2{}
}

func (r *Renderer) put(f *frame, p core.Vec2, ch rune, style tcell.Style) {
	if x, y, ok := f.vp.Cell(p); ok {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// sorted returns sprite entities of one category in id order
func (r *Renderer) sorted(cat core.Category) []core.Entity {
	var out []core.Entity
	for e, s := range r.sprites {
		if s.category == cat {
			out = append(out, e)
		}
	}
	slices.Sort(out)
	return out
}

// === Layers ===

func (r *Renderer) drawLifeBar(f *frame) {
	for _, e := range r.sorted(core.CategoryLifeBar) {
		_, y, ok := f.vp.Cell(r.position(e))
		if !ok {
			continue
		}
		for x := 0; x < f.vp.Cols; x++ {
			r.screen.SetContent(x, y, parameter.GlyphLifeBar, nil, fg(RgbLifeBar))
		}
	}
}

func (r *Renderer) drawShields(f *frame) {
	half := r.shieldWidth / 2
	for _, e := range r.sorted(core.CategoryShieldBlock) {
		p := r.position(e)
		_, y, ok := f.vp.Cell(p)
		if !ok {
			continue
		}
		from := f.vp.Column(p.X - half)
		to := max(from, f.vp.Column(p.X+half-1))
		for x := from; x <= to; x++ {
			r.screen.SetContent(x, y, parameter.GlyphShield, nil, fg(RgbShield))
		}
	}
}

func (r *Renderer) drawTrails(f *frame) {
	for _, t := range r.trails {
		alpha := 1.0
		if !t.gone.IsZero() {
			alpha = 1 - float64(f.now.Sub(t.gone))/float64(parameter.TrailFade)
		}
		// Newest cell belongs to the projectile itself while it is alive
		cells := t.cells
		if t.gone.IsZero() && len(cells) > 0 {
			cells = cells[:len(cells)-1]
		}
		for i, c := range cells {
			age := float64(i+1) / float64(len(cells)+1)
			r.screen.SetContent(c.x, c.y, parameter.GlyphTrail, nil, fg(fade(RgbTrail, age*alpha)))
		}
	}
}

func (r *Renderer) drawEntities(f *frame) {
	for _, cat := range []core.Category{core.CategoryShieldPowerUp, core.CategoryCannonPowerUp, core.CategoryTarget, core.CategoryProjectile} {
		for _, e := range r.sorted(cat) {
			ch, style := glyph(r.sprites[e])
			r.put(f, r.position(e), ch, style)
		}
	}
}

func glyph(s *sprite) (rune, tcell.Style) {
	switch s.category {
	case core.CategoryTarget:
		switch s.tag {
		case core.TagBomb:
			return parameter.GlyphTarget, fg(RgbBomb).Bold(true)
		case core.TagScoreMultiplier:
			return parameter.GlyphTarget, fg(RgbMultiplier).Bold(true)
		}
		return parameter.GlyphTarget, fg(RgbTarget)
	case core.CategoryProjectile:
		return parameter.GlyphProjectile, fg(RgbProjectile)
	case core.CategoryShieldPowerUp:
		return parameter.GlyphShieldPowerUp, fg(RgbShieldPower).Reverse(true)
	default:
		return parameter.GlyphCannonPowerUp, fg(RgbCannonPower).Reverse(true)
	}
}

func (r *Renderer) drawCannon(f *frame) {
	if r.phase != core.PhasePlaying && r.phase != core.PhasePaused {
		return
	}
	base := core.Vec2{X: r.cannonOrigin.X, Y: r.cannonOrigin.Y + 1}
	r.put(f, base, parameter.GlyphCannon, fg(RgbCannon).Bold(true))

	bx, by, _ := f.vp.Cell(base)
	tip := base.Add(core.FromAngle(r.cannonAngle).Scale(parameter.CannonWidth))
	if x, y, ok := f.vp.Cell(tip); ok && (x != bx || y != by) {
		r.screen.SetContent(x, y, aimGlyph(r.cannonAngle), nil, fg(RgbCannon))
	}
}

func aimGlyph(angle float64) rune {
	switch {
	case angle < math.Pi/8 || angle > 7*math.Pi/8:
		return '-'
	case angle < 3*math.Pi/8:
		return '/'
	case angle <= 5*math.Pi/8:
		return '|'
	default:
		return '\\'
	}
}

func (r *Renderer) drawEffects(f *frame) {
	for _, fx := range r.effects {
		alpha := 1 - float64(f.now.Sub(fx.born))/float64(lifetime(fx.kind))
		switch fx.kind {
		case core.VisualBounceExplosion:
			r.put(f, fx.pos, parameter.GlyphBounce, fg(fade(RgbBounce, alpha)))
		case core.VisualDeepExplosion:
			x, y, ok := f.vp.Cell(fx.pos)
			if !ok {
				continue
			}
			for dx := -2; dx <= 2; dx++ {
				if x+dx >= 0 && x+dx < f.vp.Cols {
					r.screen.SetContent(x+dx, y, parameter.GlyphExplosion, nil, fg(fade(RgbDeepExplosion, alpha)).Bold(true))
				}
			}
		default:
			r.put(f, fx.pos, parameter.GlyphExplosion, fg(fade(RgbExplosion, alpha)))
		}
	}
}

func (r *Renderer) drawHud(f *frame) {
	var b strings.Builder
	fmt.Fprintf(&b, "SCORE %d  x%d  ", r.hud.Score, r.hud.Multiplier)
	b.WriteString(strings.Repeat(string(parameter.GlyphAmmo), r.hud.Ammo))
	b.WriteString(strings.Repeat(" ", parameter.AmmoMax-min(r.hud.Ammo, parameter.AmmoMax)))
	r.text(0, 0, b.String(), fg(RgbHud))
	x := b.Len()

	if r.hud.Multishot {
		r.text(x+1, 0, "MULTI", fg(RgbHudAccent).Bold(true))
		x += 6
	}
	if r.phase == core.PhasePaused {
		r.text(x+1, 0, "PAUSED", fg(RgbMenu).Bold(true))
	}
	if r.music {
		r.text(f.vp.Cols-len([]rune(parameter.AudioStr)), 0, parameter.AudioStr, fg(RgbHud))
	}
}

func (r *Renderer) drawMenu(f *frame) {
	if r.menu == nil {
		return
	}
	music := "off"
	if r.music {
		music = "on"
	}
	lines := []string{"SPACE CANNON"}
	if r.phase == core.PhaseGameOver {
		lines = append(lines, "GAME OVER", fmt.Sprintf("SCORE %d", r.menu.Score))
	}
	lines = append(lines,
		fmt.Sprintf("BEST %d", r.menu.TopScore),
		"",
		"[n] new game",
		"[m] music "+music,
		"[q] quit",
	)

	top := max(parameter.HudRows, (f.vp.Rows-len(lines))/2)
	for i, line := range lines {
		x := max(0, (f.vp.Cols-len([]rune(line)))/2)
		r.text(x, top+i, line, fg(RgbMenu))
	}
}
