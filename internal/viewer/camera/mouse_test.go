package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestProcessRotationInactiveWithoutButton(t *testing.T) {
	m := NewMouseHandler()
	r := m.ProcessRotation(0, 1.0)
	assert.False(t, r.Active)
	assert.True(t, r.ShouldCenter)
}

func TestProcessRotationActiveWithButton(t *testing.T) {
	m := NewMouseHandler()
	m.SetButtonDown(rl.MouseRightButton, true)
	m.SetMouseDelta(10, -5)
	r := m.ProcessRotation(0, 0.1)
	assert.True(t, r.Active)
	assert.Equal(t, float32(1.0), r.YawDelta)
	assert.Equal(t, float32(0.5), r.PitchDelta)
}

func TestProcessRotationClampsPitch(t *testing.T) {
	m := NewMouseHandler()
	m.SetButtonDown(rl.MouseRightButton, true)
	m.SetMouseDelta(0, -1000)
	r := m.ProcessRotation(1.4, 1.0)
	assert.Equal(t, float32(0.1), r.PitchDelta, "clamped to pitch limit 1.5")
}
