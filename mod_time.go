package texcube

import (
	"time"
)

// Time is refreshed at the start of every frame. Cube movement does not read
// Dt; steps are applied per frame. Only the frame stats use it.
type Time struct {
	Time  time.Time
	Dt    time.Duration
	Frame uint64
}

type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{
		Time: time.Now(),
		Dt:   0,
	})
	app.UseSystem(
		System(timeSystem).
			InStage(Prelude).
			RunAlways(),
	)
}

func timeSystem(timeResource *Time) {
	timeResource.advance(time.Now())
}

func (t *Time) advance(now time.Time) {
	t.Dt = now.Sub(t.Time)
	t.Time = now
	t.Frame++
}
