package camera

import rl "github.com/gen2brain/raylib-go/raylib"

// ViewerState is the subset of viewer state the controller mutates:
// camera look angles plus playback control, replacing the teacher's
// Pause/UseGPU pair with a pause flag and snapshot step requests.
type ViewerState struct {
	Playing  bool
	Yaw      float32
	Pitch    float32
	StepNext bool
	StepPrev bool
}

// Config holds the tunable sensitivity/speed constants for one frame of
// input processing.
type Config struct {
	MoveSpeed        float32
	MouseSensitivity float32
	ScreenWidth      int
	ScreenHeight     int
}

// Controller coordinates keyboard and mouse input for the fly camera and
// snapshot playback controls.
type Controller struct {
	keyboard *KeyboardHandler
	mouse    *MouseHandler
}

// NewController creates a Controller with fresh input handlers.
func NewController() *Controller {
	return &Controller{keyboard: NewKeyboardHandler(), mouse: NewMouseHandler()}
}

// Process reads keyboard and mouse state, moves the raylib camera, and
// updates state's playback flags in place.
func (c *Controller) Process(rlCamera *rl.Camera3D, state *ViewerState, cfg Config) {
	actions := c.keyboard.ProcessActions()
	if actions.TogglePlay {
		state.Playing = !state.Playing
	}
	state.StepNext = actions.StepNext
	state.StepPrev = actions.StepPrev

	movement := c.keyboard.ProcessMovement(cfg.MoveSpeed)
	applyMovement(rlCamera, movement, state.Yaw)

	rotation := c.mouse.ProcessRotation(state.Pitch, cfg.MouseSensitivity)
	if rotation.ShouldCenter {
		rl.SetMousePosition(cfg.ScreenWidth/2, cfg.ScreenHeight/2)
	} else if rotation.Active {
		state.Yaw += rotation.YawDelta
		state.Pitch += rotation.PitchDelta
		UpdateCameraTarget(rlCamera, state.Yaw, state.Pitch)
	}
}

// UpdateFromRaylib refreshes both handlers from the live raylib backend.
// Call this once per frame before Process.
func (c *Controller) UpdateFromRaylib() {
	c.keyboard.UpdateFromRaylib()
	c.mouse.UpdateFromRaylib()
}

func applyMovement(camera *rl.Camera3D, m *Movement, yaw float32) {
	forward, right := directionVectors(yaw)

	if m.Forward != 0 {
		camera.Position.X += forward.X * m.Forward
		camera.Position.Z += forward.Z * m.Forward
		camera.Target.X += forward.X * m.Forward
		camera.Target.Z += forward.Z * m.Forward
	}
	if m.Right != 0 {
		camera.Position.X -= right.X * m.Right
		camera.Position.Z -= right.Z * m.Right
		camera.Target.X -= right.X * m.Right
		camera.Target.Z -= right.Z * m.Right
	}
	if m.Up != 0 {
		camera.Position.Y += m.Up
		camera.Target.Y += m.Up
	}
}
