package parameter

// Layout positions are authored for the stock playfield and scale with the configured one.
// Horizontal layout scales with Width, vertical with Height; body sizes other than the shield
// block width stay fixed.

func (t Tuning) scaleX() float64 { return t.Width / PlayfieldWidth }
func (t Tuning) scaleY() float64 { return t.Height / PlayfieldHeight }

// ShieldHome returns the home centre of shield slot i
func (t Tuning) ShieldHome(i int) (x, y float64) {
	return (ShieldFirstX + float64(i)*ShieldSpacing) * t.scaleX(), ShieldRowY * t.scaleY()
}

// ShieldWidth is the shield block width, gaps between neighbours stay narrower than a target
func (t Tuning) ShieldWidth() float64 {
	return ShieldBlockWidth * t.scaleX()
}

// LifeBarRow is the life bar centre height
func (t Tuning) LifeBarRow() float64 {
	return LifeBarY * t.scaleY()
}

// PowerUpBand bounds the height at which power-ups cross the field, always inside it
func (t Tuning) PowerUpBand() (lo, hi float64) {
	return PowerUpMinY * t.scaleY(), PowerUpMaxY * t.scaleY()
}
