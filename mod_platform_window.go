package texcube

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
	defaultWindowTitle  = "OpenGL Cube Texturing"
)

// platformWindow is the part of *glfw.Window the app drives.
type platformWindow interface {
	ShouldClose() bool
	GetKey(key glfw.Key) glfw.Action
	SwapBuffers()
	Destroy()
}

// WindowState is the single shared window. It owns the OpenGL context.
type WindowState struct {
	window       platformWindow
	pollEvents   func()
	terminate    func()
	WindowWidth  int
	WindowHeight int
	windowTitle  string

	systemsInstalled bool
	closeRequested   bool
	destroyed        bool
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) *WindowState {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		panic(err)
	}
	win.MakeContextCurrent()

	return &WindowState{
		window:       win,
		pollEvents:   glfw.PollEvents,
		terminate:    glfw.Terminate,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}
}

// Present shows the frame that was just drawn.
func (s *WindowState) Present() {
	s.window.SwapBuffers()
}

func (s *WindowState) destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.window.Destroy()
	if s.terminate != nil {
		s.terminate()
	}
}

// PlatformWindowModule ensures a single shared GLFW window (WindowState) is created
// and made available as a resource for the renderer and the input module.
// Install is idempotent: if a WindowState resource already exists, it is reused.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

// NewPlatformWindow creates a module that provides a shared WindowState resource.
// Zero values fall back to an 800x600 window titled "OpenGL Cube Texturing".
func NewPlatformWindow(width, height int, title string) *PlatformWindowModule {
	if width <= 0 {
		width = defaultWindowWidth
	}
	if height <= 0 {
		height = defaultWindowHeight
	}
	if title == "" {
		title = defaultWindowTitle
	}
	return &PlatformWindowModule{
		Width:  width,
		Height: height,
		Title:  title,
	}
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	ws, ok := Resource[WindowState](app)
	if !ok {
		ws = createWindowState(m.Width, m.Height, m.Title)
		app.addResources(ws)
		app.Logger().Infof("Created window (%dx%d) '%s'", m.Width, m.Height, m.Title)
	}
	installWindowSystems(app, ws)
}

// installWindowSystems registers event polling and teardown once per window.
func installWindowSystems(app *App, ws *WindowState) {
	if ws.systemsInstalled {
		return
	}
	ws.systemsInstalled = true

	app.UseSystem(
		System(windowEventsSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
	if app.stateful {
		app.UseSystem(
			System(windowDestroySystem).
				InStage(Finale).
				InState(OnExit(Running)),
		)
	}
}

// windowEventsSystem drains the event queue. A close request is the only way
// out of Running.
func windowEventsSystem(s *WindowState, cmd *Commands, logger Logger) {
	s.pollEvents()

	if s.window.ShouldClose() && !s.closeRequested {
		s.closeRequested = true
		logger.Infof("Window '%s' closed", s.windowTitle)
		cmd.ChangeState(NotRunning)
	}
}

func windowDestroySystem(s *WindowState, logger Logger) {
	logger.Debugf("Destroying window '%s'", s.windowTitle)
	s.destroy()
}
