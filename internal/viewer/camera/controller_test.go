package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestControllerTogglePlayOnP(t *testing.T) {
	c := NewController()
	c.keyboard.SetKeyPressed(rl.KeyP, true)

	rlCamera := &rl.Camera3D{Position: rl.NewVector3(0, 0, 5), Target: rl.NewVector3(0, 0, 0)}
	state := &ViewerState{Playing: false}
	c.Process(rlCamera, state, Config{MoveSpeed: 1, MouseSensitivity: 1, ScreenWidth: 800, ScreenHeight: 600})

	assert.True(t, state.Playing)
}

func TestControllerMovesCameraForward(t *testing.T) {
	c := NewController()
	c.keyboard.SetKeyState(rl.KeyW, true)

	rlCamera := &rl.Camera3D{Position: rl.NewVector3(0, 0, 0), Target: rl.NewVector3(1, 0, 0)}
	state := &ViewerState{Yaw: 0}
	c.Process(rlCamera, state, Config{MoveSpeed: 1, MouseSensitivity: 1, ScreenWidth: 800, ScreenHeight: 600})

	assert.NotEqual(t, float32(0), rlCamera.Position.X, "expected camera to move forward along yaw=0 (+X)")
}
