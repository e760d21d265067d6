package loop

import "time"

// Step tells the caller what is due after one loop iteration.
type Step struct {
	Update bool // Run one logic update and one render
	Flush  bool // Persist state and report diagnostics
	FPS    int  // Updates performed in the window that just closed (valid when Flush)
}

// Driver is a fixed-timestep accumulator.
//
// Each call to Step adds the elapsed wall time, in units of one frame
// interval, to an accumulator. When the accumulator reaches one frame a
// single update is due and one interval is subtracted; the surplus is kept,
// so a slow caller catches up one update per iteration instead of dropping
// frames. A separate timer fires Flush once per flush interval.
type Driver struct {
	interval   time.Duration
	flushEvery time.Duration

	started bool
	last    time.Time
	delta   float64
	timer   time.Duration
	updates int
}

// NewDriver creates a driver ticking fps times per second and flushing
// every flushEvery. Non-positive values fall back to 60 Hz and one second.
func NewDriver(fps int, flushEvery time.Duration) *Driver {
	if fps <= 0 {
		fps = 60
	}
	if flushEvery <= 0 {
		flushEvery = time.Second
	}
	return &Driver{
		interval:   time.Second / time.Duration(fps),
		flushEvery: flushEvery,
	}
}

// Interval returns the duration of one frame.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Start sets the reference time. Step calls Start implicitly the first time.
func (d *Driver) Start(now time.Time) {
	d.started = true
	d.last = now
	d.delta = 0
	d.timer = 0
	d.updates = 0
}

// Step advances the driver to now and reports what is due.
func (d *Driver) Step(now time.Time) Step {
	if !d.started {
		d.Start(now)
		return Step{}
	}

	elapsed := now.Sub(d.last)
	if elapsed < 0 {
		elapsed = 0
	}
	d.last = now
	d.delta += float64(elapsed) / float64(d.interval)
	d.timer += elapsed

	var st Step
	if d.delta >= 1 {
		st.Update = true
		d.updates++
		d.delta--
	}

	if d.timer >= d.flushEvery {
		st.Flush = true
		st.FPS = d.updates
		d.updates = 0
		d.timer = 0
	}

	return st
}

// Backlog returns the number of whole frames still owed.
func (d *Driver) Backlog() int {
	return int(d.delta)
}
