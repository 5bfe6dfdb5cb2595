package texcube

import (
	"github.com/gekko3d/texcube/cube"
)

// Per-frame steps. They are not scaled by frame time, so on-screen speed
// follows the frame rate.
const (
	DefaultMoveStep   float32 = 0.0005
	DefaultScaleStep  float32 = 0.005
	DefaultRotateStep float32 = 0.0005 // degrees
)

// CubeModule owns the cube scene and turns held keys into transform changes.
//
//	Up/Down     move along Y
//	Left/Right  move along X
//	W/S         grow/shrink (S wins if both are held)
//	X/Y/Z       rotate about that axis
type CubeModule struct {
	MoveStep   float32
	ScaleStep  float32
	RotateStep float32
}

func NewCubeModule() CubeModule {
	return CubeModule{
		MoveStep:   DefaultMoveStep,
		ScaleStep:  DefaultScaleStep,
		RotateStep: DefaultRotateStep,
	}
}

// CubeControls is the step configuration as a resource.
type CubeControls struct {
	MoveStep   float32
	ScaleStep  float32
	RotateStep float32
}

func (mod CubeModule) Install(app *App, cmd *Commands) {
	installProfiler(app)
	cmd.AddResources(
		cube.NewScene(),
		&CubeControls{
			MoveStep:   mod.MoveStep,
			ScaleStep:  mod.ScaleStep,
			RotateStep: mod.RotateStep,
		},
	)
	app.UseSystem(
		System(cubeControlSystem).
			InStage(Update).
			RunAlways(),
	)
	app.UseSystem(
		System(cubeRecomputeSystem).
			InStage(PostUpdate).
			RunAlways(),
	)
}

func cubeControlSystem(input *Input, scene *cube.Scene, controls *CubeControls, profiler *Profiler, logger Logger) {
	profiler.BeginScope("update")
	defer profiler.EndScope("update")

	controls.apply(input, &scene.Transform)
	logger.Debugf("Update up...")
}

func (c *CubeControls) apply(input *Input, tr *cube.Transform) {
	if input.IsPressed(KeyUp) {
		tr.Translation[1] += c.MoveStep
	}
	if input.IsPressed(KeyDown) {
		tr.Translation[1] -= c.MoveStep
	}
	if input.IsPressed(KeyLeft) {
		tr.Translation[0] -= c.MoveStep
	}
	if input.IsPressed(KeyRight) {
		tr.Translation[0] += c.MoveStep
	}

	if input.IsPressed(KeyS) {
		tr.Scale -= c.ScaleStep
	} else if input.IsPressed(KeyW) {
		tr.Scale += c.ScaleStep
	}

	if input.IsPressed(KeyX) {
		tr.Rotate(cube.AxisX, c.RotateStep)
	}
	if input.IsPressed(KeyY) {
		tr.Rotate(cube.AxisY, c.RotateStep)
	}
	if input.IsPressed(KeyZ) {
		tr.Rotate(cube.AxisZ, c.RotateStep)
	}
}

func cubeRecomputeSystem(scene *cube.Scene, profiler *Profiler) {
	profiler.BeginScope("recompute")
	scene.Recompute()
	profiler.EndScope("recompute")
	profiler.SetCount("vertices", len(scene.Vertices))
}
