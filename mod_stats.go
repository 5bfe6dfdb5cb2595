package texcube

import (
	"time"
)

const defaultStatsInterval = time.Second

// StatsModule logs the Profiler at DEBUG level once per Interval.
// Nothing is printed unless the logger has debug enabled.
type StatsModule struct {
	Interval time.Duration
}

func NewStatsModule(interval time.Duration) StatsModule {
	if interval <= 0 {
		interval = defaultStatsInterval
	}
	return StatsModule{Interval: interval}
}

type frameStats struct {
	interval time.Duration
	elapsed  time.Duration
}

func (mod StatsModule) Install(app *App, cmd *Commands) {
	installProfiler(app)
	cmd.AddResources(&frameStats{interval: NewStatsModule(mod.Interval).Interval})
	app.UseSystem(
		System(statsSystem).
			InStage(Finale).
			RunAlways(),
	)
}

// installProfiler adds the shared Profiler unless another module already did.
func installProfiler(app *App) *Profiler {
	if p, ok := Resource[Profiler](app); ok {
		return p
	}
	p := NewProfiler()
	app.addResources(p)
	return p
}

func statsSystem(t *Time, stats *frameStats, profiler *Profiler, logger Logger) {
	profiler.AddCount("frames", 1)

	stats.elapsed += t.Dt
	if stats.elapsed < stats.interval {
		return
	}
	stats.elapsed = 0

	if logger.DebugEnabled() {
		logger.Debugf("Frame %d\n%s", t.Frame, profiler.GetStatsString())
	}
	profiler.Reset()
}
