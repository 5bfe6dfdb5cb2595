package texcube

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatsModule_DefaultInterval(t *testing.T) {
	assert.Equal(t, time.Second, NewStatsModule(0).Interval)
	assert.Equal(t, time.Second, NewStatsModule(-time.Minute).Interval)
	assert.Equal(t, 250*time.Millisecond, NewStatsModule(250*time.Millisecond).Interval)
}

func TestStatsSystem_LogsOncePerInterval(t *testing.T) {
	var out bytes.Buffer
	logger := NewDefaultLoggerTo("texcube", true, &out, &out)

	tm := &Time{Dt: 400 * time.Millisecond}
	stats := &frameStats{interval: time.Second}
	profiler := NewProfiler()
	profiler.SetCount("vertices", 36)

	tm.Frame = 1
	statsSystem(tm, stats, profiler, logger)
	tm.Frame = 2
	statsSystem(tm, stats, profiler, logger)
	assert.Empty(t, out.String())
	assert.Equal(t, 2, profiler.Counts["frames"])

	tm.Frame = 3
	statsSystem(tm, stats, profiler, logger)
	assert.Contains(t, out.String(), "[texcube] DEBUG: Frame 3")
	assert.Contains(t, out.String(), "frames")
	assert.Equal(t, time.Duration(0), stats.elapsed)

	// counters start over after each report
	assert.Equal(t, 0, profiler.Counts["frames"])
	assert.Equal(t, 0, profiler.Counts["vertices"])
}

func TestStatsSystem_QuietWithoutDebug(t *testing.T) {
	var out bytes.Buffer
	logger := NewDefaultLoggerTo("texcube", false, &out, &out)

	stats := &frameStats{interval: time.Millisecond}
	profiler := NewProfiler()
	statsSystem(&Time{Dt: time.Second}, stats, profiler, logger)

	assert.Empty(t, out.String())
	assert.Equal(t, 0, profiler.Counts["frames"])
}

func TestStatsModule_SharesProfiler(t *testing.T) {
	app := NewAppBuilder().UseModule(TimeModule{}).Build()
	existing := installProfiler(app)

	app.UseModules(NewStatsModule(0))
	profiler, ok := Resource[Profiler](app)
	require.True(t, ok)
	assert.Same(t, existing, profiler)

	stats, ok := Resource[frameStats](app)
	require.True(t, ok)
	assert.Equal(t, time.Second, stats.interval)
	assert.Len(t, app.systemsStateless[Finale.Name], 1)
}
