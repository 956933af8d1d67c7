package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rotation is the requested camera look-rotation for this frame.
type Rotation struct {
	Active       bool
	YawDelta     float32
	PitchDelta   float32
	ShouldCenter bool
}

// MouseHandler tracks mouse button/delta state for look-rotation.
type MouseHandler struct {
	buttonStates map[rl.MouseButton]bool
	deltaX       float32
	deltaY       float32
}

// NewMouseHandler creates an empty MouseHandler.
func NewMouseHandler() *MouseHandler {
	return &MouseHandler{buttonStates: make(map[rl.MouseButton]bool)}
}

// SetButtonDown sets a mouse button's state (for testing).
func (m *MouseHandler) SetButtonDown(button rl.MouseButton, down bool) {
	m.buttonStates[button] = down
}

// SetMouseDelta sets the mouse movement delta (for testing).
func (m *MouseHandler) SetMouseDelta(x, y float32) {
	m.deltaX, m.deltaY = x, y
}

// IsButtonDown reports whether a mouse button is held down.
func (m *MouseHandler) IsButtonDown(button rl.MouseButton) bool { return m.buttonStates[button] }

// ProcessRotation computes the look-rotation delta for this frame. Looking
// around requires holding the right mouse button, same as the teacher's
// orbit-camera convention; releasing it re-centers the cursor.
func (m *MouseHandler) ProcessRotation(currentPitch, sensitivity float32) *Rotation {
	if !m.IsButtonDown(rl.MouseRightButton) {
		return &Rotation{ShouldCenter: true}
	}

	r := &Rotation{Active: true}
	r.YawDelta = m.deltaX * sensitivity
	r.PitchDelta = -m.deltaY * sensitivity

	newPitch := currentPitch + r.PitchDelta
	const pitchLimit = 1.5
	if newPitch > pitchLimit {
		r.PitchDelta = pitchLimit - currentPitch
	} else if newPitch < -pitchLimit {
		r.PitchDelta = -pitchLimit - currentPitch
	}
	return r
}

// UpdateCameraTarget points camera at yaw/pitch from its current position.
func UpdateCameraTarget(camera *rl.Camera3D, yaw, pitch float32) {
	camera.Target.X = camera.Position.X + float32(math.Cos(float64(yaw))*math.Cos(float64(pitch)))
	camera.Target.Y = camera.Position.Y + float32(math.Sin(float64(pitch)))
	camera.Target.Z = camera.Position.Z + float32(math.Sin(float64(yaw))*math.Cos(float64(pitch)))
}

// UpdateFromRaylib refreshes button/delta state from the live raylib input
// backend.
func (m *MouseHandler) UpdateFromRaylib() {
	m.buttonStates[rl.MouseRightButton] = rl.IsMouseButtonDown(rl.MouseRightButton)
	delta := rl.GetMouseDelta()
	m.deltaX, m.deltaY = delta.X, delta.Y
}
