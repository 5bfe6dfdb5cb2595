package texcube

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

// moduleFunc lets a test install systems inline.
type moduleFunc func(app *App, cmd *Commands)

func (f moduleFunc) Install(app *App, cmd *Commands) { f(app, cmd) }

func TestApp_changeState(t *testing.T) {
	app := NewAppBuilder().UseStates(Running, NotRunning).Build()
	app.state = Running

	app.changeState(NotRunning)
	assert.Equal(t, NotRunning, app.nextState, "The nextState should be set correctly.")
	assert.True(t, app.stateTransitioning, "The stateTransitioning flag should be true.")

	app.executeChangeState(NotRunning)
	assert.Equal(t, NotRunning, app.state, "The app state should change correctly.")
}

func TestApp_addResources(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)

	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	// Expect panic when trying to add the same type of resource again
	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)

	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")

	got, ok := Resource[MockResource2](app)
	require.True(t, ok)
	assert.Same(t, resource2, got)
}

func TestApp_StartsNotRunning(t *testing.T) {
	app := NewAppBuilder().UseStates(Running, NotRunning).Build()
	assert.Equal(t, NotRunning, app.State())
}

func TestApp_RunUntilNotRunning(t *testing.T) {
	var (
		frames   int
		seen     []State
		calls    []string
		exitSeen State = -1
	)

	app := NewAppBuilder().
		UseStates(Running, NotRunning).
		Build()

	app.resources[reflect.TypeOf(MockResource1{})] = NewMockResource1("frames")

	app.UseSystem(System(func(cmd *Commands) {
		calls = append(calls, "enter")
	}).InStage(Prelude).InState(OnEnter(Running)))

	app.UseSystem(System(func(cmd *Commands, _ *MockResource1) {
		frames++
		seen = append(seen, app.State())
		if frames == 3 {
			cmd.ChangeState(NotRunning)
		}
	}).InStage(Update).InState(OnExecute(Running)))

	app.UseSystem(System(func(cmd *Commands) {
		exitSeen = app.State()
		calls = append(calls, "exit")
	}).InStage(Finale).InState(OnExit(Running)))

	app.Run()

	assert.Equal(t, 3, frames)
	assert.Equal(t, []State{Running, Running, Running}, seen)
	assert.Equal(t, Running, exitSeen)
	assert.Equal(t, []string{"enter", "exit"}, calls)
	assert.Equal(t, NotRunning, app.State())
}

func TestApp_StagesRunInOrder(t *testing.T) {
	var order []string
	record := func(name string) func(cmd *Commands) {
		return func(cmd *Commands) {
			order = append(order, name)
			if name == "finale" {
				cmd.ChangeState(NotRunning)
			}
		}
	}

	app := NewAppBuilder().UseStates(Running, NotRunning).Build()
	app.UseSystem(System(record("finale")).InStage(Finale).RunAlways())
	app.UseSystem(System(record("render")).InStage(Render).RunAlways())
	app.UseSystem(System(record("update")).InStage(Update).RunAlways())
	app.UseSystem(System(record("preupdate")).InStage(PreUpdate).RunAlways())
	app.UseSystem(System(record("postupdate")).InStage(PostUpdate).RunAlways())

	app.Run()

	assert.Equal(t, []string{"preupdate", "update", "postupdate", "render", "finale"}, order)
}

func TestApp_InjectsLogger(t *testing.T) {
	app := NewAppBuilder().Build()

	var got Logger
	app.callSystem(func(l Logger) { got = l })
	require.NotNil(t, got)
	assert.False(t, got.DebugEnabled())

	logger := NewDefaultLogger("test", true)
	app.addResources(logger)
	app.callSystem(func(l Logger) { got = l })
	assert.Same(t, logger, got)
}

func TestApp_UnresolvedDependencyPanics(t *testing.T) {
	app := NewAppBuilder().Build()

	assert.Panics(t, func() {
		app.callSystem(func(_ *MockResource1) {})
	})
	assert.Panics(t, func() {
		app.callSystem(func(_ MockResource1) {})
	})
}

func TestApp_UseModulesAfterBuild(t *testing.T) {
	app := NewAppBuilder().Build()
	module := &MockModule{}

	app.UseModules(module)
	assert.True(t, module.installed)
}
