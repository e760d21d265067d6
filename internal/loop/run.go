package loop

import (
	"context"
	"time"
)

// Handler receives the work scheduled by Run.
type Handler interface {
	Update()
	Render()
	Flush(fps int)
}

// Run drives h until ctx is cancelled. It polls the clock at a fraction of
// the frame interval and performs at most one update per poll.
func (d *Driver) Run(ctx context.Context, clk Clock, h Handler) error {
	spin := d.interval / 4
	if spin <= 0 {
		spin = time.Millisecond
	}
	ticker := time.NewTicker(spin)
	defer ticker.Stop()

	d.Start(clk.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		st := d.Step(clk.Now())
		if st.Update {
			h.Update()
			h.Render()
		}
		if st.Flush {
			h.Flush(st.FPS)
		}
	}
}
