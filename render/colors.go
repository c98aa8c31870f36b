package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(10, 10, 24) // Deep space

	RgbTarget      = tcell.NewRGBColor(120, 200, 255) // Plain halo
	RgbMultiplier  = tcell.NewRGBColor(80, 255, 120)  // Score multiplier halo
	RgbBomb        = tcell.NewRGBColor(255, 70, 70)   // Bomb halo
	RgbProjectile  = tcell.NewRGBColor(255, 230, 90)
	RgbTrail       = tcell.NewRGBColor(200, 200, 200) // Light gray base, dimmed with age
	RgbShield      = tcell.NewRGBColor(90, 140, 255)
	RgbLifeBar     = tcell.NewRGBColor(255, 120, 40)
	RgbShieldPower = tcell.NewRGBColor(140, 190, 255)
	RgbCannonPower = tcell.NewRGBColor(255, 140, 255)
	RgbCannon      = tcell.NewRGBColor(255, 255, 255)

	RgbExplosion     = tcell.NewRGBColor(255, 165, 0)
	RgbDeepExplosion = tcell.NewRGBColor(255, 40, 0)
	RgbBounce        = tcell.NewRGBColor(255, 255, 200)

	RgbHud       = tcell.NewRGBColor(255, 255, 255)
	RgbHudAccent = tcell.NewRGBColor(255, 192, 203) // Multishot marker
	RgbMenu      = tcell.NewRGBColor(255, 255, 0)
)

func fg(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c).Background(RgbBackground)
}

// fade blends c over the background: result = c*alpha + bg*(1-alpha)
// alpha is floored so a fading cell stays visible until it is dropped
func fade(c tcell.Color, alpha float64) tcell.Color {
	alpha = max(0.2, min(1, alpha))
	if alpha == 1 {
		return c
	}
	r, g, b := c.RGB()
	br, bg, bb := RgbBackground.RGB()
	mix := func(src, dst int32) int32 {
		return int32(float64(src)*alpha + float64(dst)*(1-alpha))
	}
	return tcell.NewRGBColor(mix(r, br), mix(g, bg), mix(b, bb))
}
