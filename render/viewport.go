package render

import (
	"math"

	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/parameter"
)

// Viewport maps world units (y up) onto terminal cells (y down) below the HUD rows
type Viewport struct {
	Cols, Rows    int
	Width, Height float64
}

func (v Viewport) playRows() int {
	return v.Rows - parameter.HudRows
}

// Cell returns the terminal cell for a world position, ok is false when off-screen
func (v Viewport) Cell(p core.Vec2) (x, y int, ok bool) {
	if v.Cols <= 0 || v.playRows() <= 0 {
		return 0, 0, false
	}
	x = int(math.Floor(p.X / v.Width * float64(v.Cols)))
	y = parameter.HudRows + v.playRows() - 1 - int(math.Floor(p.Y/v.Height*float64(v.playRows())))
	ok = x >= 0 && x < v.Cols && y >= parameter.HudRows && y < v.Rows
	return x, y, ok
}

// Column returns the terminal column for a world x, clamped to the screen
func (v Viewport) Column(x float64) int {
	c := int(math.Floor(x / v.Width * float64(v.Cols)))
	return max(0, min(v.Cols-1, c))
}
