// Package camera implements the slice viewer's fly-camera and snapshot
// navigation controls, adapted from the teacher's internal/input package
// (keyboard.go/mouse.go/controller.go): the same WASDQE-plus-mouse-look
// scheme, but with the teacher's GPU-toggle action replaced by snapshot
// stepping and playback pause.
package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Movement is the per-frame camera movement request.
type Movement struct {
	Forward float32
	Right   float32
	Up      float32
}

// Actions are the non-movement key actions the viewer responds to.
type Actions struct {
	TogglePlay bool
	StepNext   bool
	StepPrev   bool
}

// KeyboardHandler tracks key states so ProcessMovement/ProcessActions can be
// unit tested without a live raylib window.
type KeyboardHandler struct {
	keyStates  map[int32]bool
	keyPressed map[int32]bool
}

// NewKeyboardHandler creates an empty KeyboardHandler.
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		keyStates:  make(map[int32]bool),
		keyPressed: make(map[int32]bool),
	}
}

// SetKeyState sets whether a key is currently held down (for testing).
func (k *KeyboardHandler) SetKeyState(key int32, pressed bool) {
	k.keyStates[key] = pressed
}

// SetKeyPressed sets whether a key was just pressed this frame (for testing).
func (k *KeyboardHandler) SetKeyPressed(key int32, pressed bool) {
	k.keyPressed[key] = pressed
}

// IsKeyDown reports whether a key is currently held down.
func (k *KeyboardHandler) IsKeyDown(key int32) bool { return k.keyStates[key] }

// IsKeyPressed reports whether a key was just pressed this frame.
func (k *KeyboardHandler) IsKeyPressed(key int32) bool { return k.keyPressed[key] }

// ProcessMovement reads the held fly-movement keys and returns the requested
// movement for this frame.
func (k *KeyboardHandler) ProcessMovement(moveSpeed float32) *Movement {
	m := &Movement{}
	if k.IsKeyDown(rl.KeyW) {
		m.Forward += moveSpeed
	}
	if k.IsKeyDown(rl.KeyS) {
		m.Forward -= moveSpeed
	}
	if k.IsKeyDown(rl.KeyA) {
		m.Right -= moveSpeed
	}
	if k.IsKeyDown(rl.KeyD) {
		m.Right += moveSpeed
	}
	if k.IsKeyDown(rl.KeyQ) {
		m.Up -= moveSpeed
	}
	if k.IsKeyDown(rl.KeyE) {
		m.Up += moveSpeed
	}
	return m
}

// ProcessActions reads the just-pressed action keys.
func (k *KeyboardHandler) ProcessActions() *Actions {
	return &Actions{
		TogglePlay: k.IsKeyPressed(rl.KeyP),
		StepNext:   k.IsKeyPressed(rl.KeyRight),
		StepPrev:   k.IsKeyPressed(rl.KeyLeft),
	}
}

// UpdateFromRaylib refreshes key states from the live raylib input backend.
func (k *KeyboardHandler) UpdateFromRaylib() {
	k.keyPressed = make(map[int32]bool)
	k.keyPressed[rl.KeyP] = rl.IsKeyPressed(rl.KeyP)
	k.keyPressed[rl.KeyRight] = rl.IsKeyPressed(rl.KeyRight)
	k.keyPressed[rl.KeyLeft] = rl.IsKeyPressed(rl.KeyLeft)

	k.keyStates[rl.KeyW] = rl.IsKeyDown(rl.KeyW)
	k.keyStates[rl.KeyS] = rl.IsKeyDown(rl.KeyS)
	k.keyStates[rl.KeyA] = rl.IsKeyDown(rl.KeyA)
	k.keyStates[rl.KeyD] = rl.IsKeyDown(rl.KeyD)
	k.keyStates[rl.KeyQ] = rl.IsKeyDown(rl.KeyQ)
	k.keyStates[rl.KeyE] = rl.IsKeyDown(rl.KeyE)
}

// directionVectors returns the forward and right unit vectors for a yaw
// angle in the XZ plane.
func directionVectors(yaw float32) (forward, right rl.Vector3) {
	forward = rl.NewVector3(float32(math.Cos(float64(yaw))), 0, float32(math.Sin(float64(yaw))))
	right = rl.NewVector3(float32(math.Cos(float64(yaw-math.Pi/2))), 0, float32(math.Sin(float64(yaw-math.Pi/2))))
	return
}
