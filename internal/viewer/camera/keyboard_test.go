package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestProcessMovementForward(t *testing.T) {
	k := NewKeyboardHandler()
	k.SetKeyState(rl.KeyW, true)
	m := k.ProcessMovement(1.0)
	assert.Equal(t, float32(1.0), m.Forward)
	assert.Equal(t, float32(0.0), m.Right)
	assert.Equal(t, float32(0.0), m.Up)
}

func TestProcessMovementOppositeKeysCancel(t *testing.T) {
	k := NewKeyboardHandler()
	k.SetKeyState(rl.KeyW, true)
	k.SetKeyState(rl.KeyS, true)
	m := k.ProcessMovement(2.0)
	assert.Equal(t, float32(0.0), m.Forward)
}

func TestProcessActionsTogglePlay(t *testing.T) {
	k := NewKeyboardHandler()
	k.SetKeyPressed(rl.KeyP, true)
	actions := k.ProcessActions()
	assert.True(t, actions.TogglePlay)
	assert.False(t, actions.StepNext)
	assert.False(t, actions.StepPrev)
}

func TestProcessActionsStep(t *testing.T) {
	k := NewKeyboardHandler()
	k.SetKeyPressed(rl.KeyRight, true)
	assert.True(t, k.ProcessActions().StepNext)
}
