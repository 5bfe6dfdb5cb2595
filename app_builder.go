package texcube

import (
	"reflect"
)

type Module interface {
	Install(app *App, cmd *Commands)
}

type AppBuilder struct {
	app     *App
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{app: &App{
		resources:        make(map[reflect.Type]any),
		systems:          make(map[string]map[State]map[statePhase][]systemFn),
		systemsStateless: make(map[string][]systemFn),
		stateful:         false,
	}}
}

func (b *AppBuilder) UseStates(initialState State, finalState State) *AppBuilder {
	b.app.stateful = true
	b.app.initialState = initialState
	b.app.finalState = finalState

	return b
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

func (b *AppBuilder) Build() *App {
	app := b.app

	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.initStatefulStage(stage)
	}

	commands := &Commands{app: app}
	for _, module := range b.modules {
		module.Install(app, commands)
	}

	return app
}

// NewCubeApp wires the full cube program: logging, time, window, input,
// cube controls, the OpenGL renderer and frame stats. It starts NotRunning;
// Run enters Running and returns once the window is closed.
func NewCubeApp(debug bool) *App {
	return NewAppBuilder().
		UseStates(Running, NotRunning).
		UseModule(
			LoggingModule{Prefix: "texcube", Debug: debug},
			TimeModule{},
			NewPlatformWindow(0, 0, ""),
			InputModule{},
			NewCubeModule(),
		).
		Build().
		UseRenderer(RendererOpenGL, NewGLRendererModule("")).
		UseModules(NewStatsModule(0))
}
