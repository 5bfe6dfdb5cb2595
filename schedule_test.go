package texcube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseStage_InsertsRelativeToTarget(t *testing.T) {
	app := NewAppBuilder().UseStates(Running, NotRunning).Build()

	upload := Stage{Name: "Upload"}
	present := Stage{Name: "Present"}
	app.UseStage(upload, BeforeStage(Render))
	app.UseStage(present, AfterStage(Render))

	idx := func(name string) int {
		for i, s := range app.stages {
			if s.Name == name {
				return i
			}
		}
		return -1
	}

	assert.Equal(t, idx("Render")-1, idx("Upload"))
	assert.Equal(t, idx("Render")+1, idx("Present"))

	// new stages accept both stateless and stateful systems
	app.UseSystem(System(func() {}).InStage(upload).RunAlways())
	app.UseSystem(System(func() {}).InStage(present).InState(OnExit(Running)))
	assert.Len(t, app.systemsStateless["Upload"], 1)
	assert.Len(t, app.systems["Present"][Running][exit], 1)
}

func TestUseStage_UnknownTargetPanics(t *testing.T) {
	app := NewAppBuilder().Build()

	require.PanicsWithValue(t, "Stage Nowhere not found", func() {
		app.UseStage(Stage{Name: "X"}, AfterStage(Stage{Name: "Nowhere"}))
	})
}

func TestUseSystem_Errors(t *testing.T) {
	stateless := NewAppBuilder().Build()
	require.PanicsWithValue(t, "Trying to use a stateful system in a stateless app.", func() {
		stateless.UseSystem(System(func() {}).InState(OnEnter(Running)))
	})

	require.PanicsWithValue(t, "Stage Missing doesn't exist", func() {
		stateless.UseSystem(System(func() {}).InStage(Stage{Name: "Missing"}))
	})

	stateful := NewAppBuilder().UseStates(Running, NotRunning).Build()
	require.PanicsWithValue(t, "State 7 doesn't exist", func() {
		stateful.UseSystem(System(func() {}).InState(OnExecute(7)))
	})
}

func TestSystem_DefaultsToUpdate(t *testing.T) {
	sched := System(func() {})
	assert.Equal(t, Update, sched.inStage)
	assert.False(t, sched.stateProvided)

	always := sched.InState(Always())
	assert.True(t, always.runAlways)

	app := NewAppBuilder().UseStates(Running, NotRunning).Build()
	app.UseSystem(always)
	assert.Len(t, app.systemsStateless["Update"], 1)
}
