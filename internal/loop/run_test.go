package loop

import (
	"context"
	"errors"
	"testing"
	"time"
)

type countingHandler struct {
	updates, renders, flushes int
	cancel                    context.CancelFunc
	stopAfter                 int
}

func (h *countingHandler) Update() {
	h.updates++
	if h.updates >= h.stopAfter {
		h.cancel()
	}
}
func (h *countingHandler) Render()   { h.renders++ }
func (h *countingHandler) Flush(int) { h.flushes++ }

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h := &countingHandler{cancel: cancel, stopAfter: 3}
	d := NewDriver(200, time.Hour)
	err := d.Run(ctx, SystemClock{}, h)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, expected context.Canceled", err)
	}
	if h.updates != 3 {
		t.Errorf("updates = %d, expected 3", h.updates)
	}
	if h.renders != h.updates {
		t.Errorf("every update should render: updates=%d renders=%d", h.updates, h.renders)
	}
	if h.flushes != 0 {
		t.Errorf("no flush expected within an hour-long window, got %d", h.flushes)
	}
}
