package runner

import (
	"context"
	"sync"
	"time"
)

// Loop drives a Sim from a ticker. It is the scheduler used when no UI
// event loop owns the frame clock, such as a realtime headless run.
// Tick, frame callbacks and posted input all run under one mutex, so the
// Sim itself stays single-threaded.
type Loop struct {
	mu      sync.Mutex
	sim     *Sim
	onFrame func(*Sim)
	done    chan struct{}
}

// Start ticks sim tickRate times per second until ctx is done or the
// returned cancel function is called. onFrame, if non-nil, runs after each
// tick. Cancel blocks until the loop goroutine has exited.
func Start(ctx context.Context, sim *Sim, tickRate int, onFrame func(*Sim)) (*Loop, func()) {
	if tickRate <= 0 {
		tickRate = 60
	}
	ctx, stop := context.WithCancel(ctx)
	l := &Loop{
		sim:     sim,
		onFrame: onFrame,
		done:    make(chan struct{}),
	}

	interval := time.Second / time.Duration(tickRate)
	go l.run(ctx, interval)

	cancel := func() {
		stop()
		<-l.done
	}
	return l, cancel
}

func (l *Loop) run(ctx context.Context, interval time.Duration) {
	defer close(l.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.mu.Lock()
			l.sim.Tick()
			if l.onFrame != nil {
				l.onFrame(l.sim)
			}
			l.mu.Unlock()
		}
	}
}

// Post runs fn against the Sim between ticks. Use it for input and resize
// signals coming from other goroutines.
func (l *Loop) Post(fn func(*Sim)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.sim)
}

// Done is closed once the loop has stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
