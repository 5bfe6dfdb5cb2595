package texcube

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Key int

const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyRight
	KeyLeft
	KeyDown
	KeyUp

	keyCount
)

type InputModule struct{}

// Input is the keyboard as sampled at the start of the current frame.
// It is level triggered: a key reads pressed on every frame it is held.
type Input struct {
	Pressed [keyCount]bool
}

func (in *Input) IsPressed(key Key) bool {
	return in.Pressed[key]
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

// inputSystem runs after windowEventsSystem in PreUpdate, so key states are
// those of the events just drained.
func inputSystem(s *WindowState, input *Input) {
	input.sample(s.window)
}

func (in *Input) sample(win platformWindow) {
	for key, glfwKey := range keyToGlfw {
		in.Pressed[key] = win.GetKey(glfwKey) == glfw.Press
	}
}

var keyToGlfw = [keyCount]glfw.Key{
	KeyA:     glfw.KeyA,
	KeyB:     glfw.KeyB,
	KeyC:     glfw.KeyC,
	KeyD:     glfw.KeyD,
	KeyE:     glfw.KeyE,
	KeyF:     glfw.KeyF,
	KeyG:     glfw.KeyG,
	KeyH:     glfw.KeyH,
	KeyI:     glfw.KeyI,
	KeyJ:     glfw.KeyJ,
	KeyK:     glfw.KeyK,
	KeyL:     glfw.KeyL,
	KeyM:     glfw.KeyM,
	KeyN:     glfw.KeyN,
	KeyO:     glfw.KeyO,
	KeyP:     glfw.KeyP,
	KeyQ:     glfw.KeyQ,
	KeyR:     glfw.KeyR,
	KeyS:     glfw.KeyS,
	KeyT:     glfw.KeyT,
	KeyU:     glfw.KeyU,
	KeyV:     glfw.KeyV,
	KeyW:     glfw.KeyW,
	KeyX:     glfw.KeyX,
	KeyY:     glfw.KeyY,
	KeyZ:     glfw.KeyZ,
	KeyRight: glfw.KeyRight,
	KeyLeft:  glfw.KeyLeft,
	KeyDown:  glfw.KeyDown,
	KeyUp:    glfw.KeyUp,
}
