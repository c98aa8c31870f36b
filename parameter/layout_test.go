package parameter

import "testing"

func TestLayout_DefaultMatchesStockPositions(t *testing.T) {
	d := DefaultTuning()

	for i := 0; i < ShieldCapacity; i++ {
		x, y := d.ShieldHome(i)
		if want := ShieldFirstX + float64(i)*ShieldSpacing; x != want || y != ShieldRowY {
			t.Errorf("slot %d: expected (%v,%v), got (%v,%v)", i, want, ShieldRowY, x, y)
		}
	}
	if d.ShieldWidth() != ShieldBlockWidth {
		t.Errorf("Expected shield width %v, got %v", ShieldBlockWidth, d.ShieldWidth())
	}
	if d.LifeBarRow() != LifeBarY {
		t.Errorf("Expected life bar at %v, got %v", LifeBarY, d.LifeBarRow())
	}
	if lo, hi := d.PowerUpBand(); lo != PowerUpMinY || hi != PowerUpMaxY {
		t.Errorf("Expected band [%v,%v], got [%v,%v]", PowerUpMinY, PowerUpMaxY, lo, hi)
	}
}

func TestLayout_ShieldLineSpansWidth(t *testing.T) {
	for _, width := range []float64{160, 320, 640, 1000} {
		tn := DefaultTuning()
		tn.Width = width
		half := tn.ShieldWidth() / 2

		first, _ := tn.ShieldHome(0)
		last, _ := tn.ShieldHome(ShieldCapacity - 1)
		if first-half < 0 || last+half > width {
			t.Errorf("width %v: shield line [%v,%v] leaves the field", width, first-half, last+half)
		}
		// Uncovered margins and gaps stay narrower than a target
		if first-half >= 2*TargetRadius*width/PlayfieldWidth || width-(last+half) >= 2*TargetRadius*width/PlayfieldWidth {
			t.Errorf("width %v: margins too wide, line [%v,%v]", width, first-half, last+half)
		}
		for i := 1; i < ShieldCapacity; i++ {
			prev, _ := tn.ShieldHome(i - 1)
			cur, _ := tn.ShieldHome(i)
			if gap := (cur - half) - (prev + half); gap >= 2*TargetRadius*width/PlayfieldWidth {
				t.Errorf("width %v: gap %v between slots %d and %d", width, gap, i-1, i)
			}
		}
	}
}

func TestLayout_RowsInsideShortField(t *testing.T) {
	tn := DefaultTuning()
	tn.Height = 200

	lo, hi := tn.PowerUpBand()
	if lo >= hi || lo <= 0 || hi >= tn.Height {
		t.Errorf("Expected ordered band inside (0,%v), got [%v,%v]", tn.Height, lo, hi)
	}
	_, shieldY := tn.ShieldHome(0)
	if bar := tn.LifeBarRow(); bar <= 0 || bar >= shieldY || shieldY >= lo {
		t.Errorf("Expected life bar < shields < power-ups, got %v, %v, %v", bar, shieldY, lo)
	}
}
