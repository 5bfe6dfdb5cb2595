package texcube

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestProfiler_Scopes(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler()
	p.now = clock.now

	p.BeginScope("update")
	clock.advance(2 * time.Millisecond)
	p.EndScope("update")

	p.BeginScope("render")
	clock.advance(5 * time.Millisecond)
	p.EndScope("render")

	// a second run overwrites, it does not accumulate
	p.BeginScope("update")
	clock.advance(3 * time.Millisecond)
	p.EndScope("update")

	assert.Equal(t, []string{"update", "render"}, p.Order)
	assert.Equal(t, 3*time.Millisecond, p.Scopes["update"])
	assert.Equal(t, 5*time.Millisecond, p.Scopes["render"])

	p.EndScope("never-begun")
	assert.NotContains(t, p.Scopes, "never-begun")
}

func TestProfiler_CountsAndReset(t *testing.T) {
	p := NewProfiler()
	p.SetCount("vertices", 36)
	p.AddCount("frames", 1)
	p.AddCount("frames", 1)
	assert.Equal(t, 2, p.Counts["frames"])

	p.BeginScope("render")
	p.Reset()
	assert.Equal(t, 0, p.Counts["frames"])
	assert.Equal(t, 0, p.Counts["vertices"])
	assert.Equal(t, time.Duration(0), p.Scopes["render"])
	assert.Equal(t, []string{"render"}, p.Order)
}

func TestProfiler_GetStatsString(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler()
	p.now = clock.now

	p.BeginScope("recompute")
	clock.advance(1500 * time.Microsecond)
	p.EndScope("recompute")
	p.SetCount("vertices", 36)
	p.SetCount("frames", 60)

	out := p.GetStatsString()
	assert.Contains(t, out, "recompute      : 1.50 ms")
	assert.Less(t, strings.Index(out, "frames"), strings.Index(out, "vertices"))
}
