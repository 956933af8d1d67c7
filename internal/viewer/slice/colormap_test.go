package slice

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestHeatMidpointIsWhite(t *testing.T) {
	c := Heat(0.5, 0, 1)
	if c != rl.White {
		t.Errorf("Heat at midpoint = %+v, want white", c)
	}
}

func TestHeatEndpointsAreBlueAndRed(t *testing.T) {
	if c := Heat(0, 0, 1); c.R != 0 || c.B == 0 {
		t.Errorf("Heat at min = %+v, want blue-dominant", c)
	}
	if c := Heat(1, 0, 1); c != rl.Red {
		t.Errorf("Heat at max = %+v, want red", c)
	}
}

func TestHeatClampsOutOfRangeValues(t *testing.T) {
	if Heat(-10, 0, 1) != Heat(0, 0, 1) {
		t.Errorf("Heat should clamp values below min")
	}
	if Heat(10, 0, 1) != Heat(1, 0, 1) {
		t.Errorf("Heat should clamp values above max")
	}
}

func TestHeatDegenerateRangeIsWhite(t *testing.T) {
	if Heat(5, 3, 3) != rl.White {
		t.Errorf("Heat with degenerate range should be white")
	}
}
