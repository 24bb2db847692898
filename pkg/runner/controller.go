package runner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"lifewatch/pkg/core"
	"lifewatch/pkg/life"
)

var (
	// ErrRunning is returned by Start while a run is in progress.
	ErrRunning = errors.New("simulation already running")
	// ErrInvalidPeriod is returned by Start for a non-positive tick period.
	ErrInvalidPeriod = errors.New("invalid period")
)

// TickFunc observes the engine after every advance of a run. It is called on
// the run goroutine, so reading the field is safe for the duration of the call.
// It may call Stop but must not call Reset or Wait.
type TickFunc func(st life.Stats, field core.View)

// Option configures a Controller.
type Option func(*Controller)

// WithReporter installs the report sink.
func WithReporter(r Reporter) Option {
	return func(c *Controller) { c.reporter = r }
}

// WithLogger enables logging of run boundaries.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithTick installs a per-tick observer.
func WithTick(fn TickFunc) Option {
	return func(c *Controller) { c.tick = fn }
}

// Controller advances an engine at a fixed period on a background goroutine
// and stops on its own once the board is extinct or static.
type Controller struct {
	engine   *life.Engine
	reporter Reporter
	logger   *log.Logger
	tick     TickFunc

	running atomic.Bool

	// mu serializes Start and Reset. It is never held by the run loop or while
	// waiting for one.
	mu     sync.Mutex
	period time.Duration
	done   chan struct{}
	// snapshot is written by the run goroutine before its done channel closes
	// and read by Reset after waiting for it.
	snapshot *life.Engine

	// cancelMu guards the cancel func and id of the current run.
	cancelMu sync.Mutex
	cancel   context.CancelFunc
	runID    uint64
}

// New creates an idle controller for engine.
func New(engine *life.Engine, opts ...Option) *Controller {
	c := &Controller{engine: engine}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Engine returns the driven engine. While Running reports true only the run
// goroutine may use it.
func (c *Controller) Engine() *life.Engine { return c.engine }

// Running reports whether a run is in progress.
func (c *Controller) Running() bool { return c.running.Load() }

// Period returns the period of the most recent run.
func (c *Controller) Period() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.period
}

// Start begins advancing the engine every period and never blocks. The run
// goroutine first waits for a previous, stopping run to exit and then
// snapshots the engine for Reset. Cancelling ctx stops the run like Stop.
func (c *Controller) Start(ctx context.Context, period time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running.Load() {
		return ErrRunning
	}
	if period <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPeriod, period)
	}

	c.period = period
	runCtx, cancel := context.WithCancel(ctx)
	prev := c.done
	done := make(chan struct{})
	c.done = done
	c.cancelMu.Lock()
	c.cancel = cancel
	c.runID++
	id := c.runID
	c.running.Store(true)
	c.cancelMu.Unlock()
	c.logf("started, period %s", period)
	go c.loop(runCtx, cancel, id, period, prev, done)
	return nil
}

// Stop asks the current run to end. It never blocks and may be called any
// number of times.
func (c *Controller) Stop() {
	c.cancelMu.Lock()
	defer c.cancelMu.Unlock()
	if !c.running.CompareAndSwap(true, false) {
		return
	}
	c.cancel()
	c.logf("stop requested")
}

// Reset stops any run, waits for it to exit and restores the engine to the
// state captured by the most recent Start. Without such a snapshot it does
// nothing. The snapshot is consumed.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	// The lock is released while waiting so a reporter may still call Start;
	// such a run is stopped in turn before restoring.
	for {
		c.Stop()
		done := c.done
		if done == nil {
			break
		}
		c.mu.Unlock()
		<-done
		c.mu.Lock()
		if c.done == done && !c.running.Load() {
			break
		}
	}
	if c.snapshot == nil {
		return
	}
	c.engine.Restore(c.snapshot)
	c.snapshot = nil
	c.logf("reset to start snapshot")
}

// Wait blocks until the current run loop, if any, has exited. It does not
// hold the controller lock while blocked, so Start and Period stay responsive.
func (c *Controller) Wait() {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (c *Controller) loop(ctx context.Context, cancel context.CancelFunc, id uint64, period time.Duration, prev, done chan struct{}) {
	defer close(done)
	if prev != nil {
		<-prev
	}
	c.snapshot = c.engine.Clone()

	started := time.Now()
	defer func() {
		c.release(id)
		cancel()
		c.emit(Report{Kind: Stopped, Generations: c.engine.Generations(), Elapsed: time.Since(started)})
	}()

	timer := time.NewTimer(period)
	defer timer.Stop()
	cycleReported := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		if ctx.Err() != nil {
			return
		}
		if err := c.advance(); err != nil {
			c.finish(Report{Kind: Failed, Generations: c.engine.Generations(), Err: err})
			return
		}

		st := c.engine.Stats()
		if c.tick != nil {
			c.tick(st, c.engine.Field())
		}
		switch {
		case st.AllDead:
			c.finish(Report{Kind: Extinct, Generations: st.Generations})
			return
		case st.Static:
			c.finish(Report{Kind: Static, Generations: st.Generations})
			return
		case st.Period > 0 && !cycleReported:
			cycleReported = true
			c.emit(Report{Kind: Cyclic, Generations: st.Generations, Period: st.Period})
		}
		timer.Reset(period)
	}
}

// release marks the run idle unless a newer run has already been started,
// for example by a reporter reacting to a terminal report.
func (c *Controller) release(id uint64) {
	c.cancelMu.Lock()
	defer c.cancelMu.Unlock()
	if c.runID == id {
		c.running.Store(false)
	}
}

func (c *Controller) advance() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("advance: %v", r)
		}
	}()
	c.engine.Advance()
	return nil
}

// finish marks the run idle before reporting so reporters observe the final state.
func (c *Controller) finish(r Report) {
	c.running.Store(false)
	c.emit(r)
}

func (c *Controller) emit(r Report) {
	c.logf("%s", r)
	if c.reporter != nil {
		c.reporter.Report(r)
	}
}

func (c *Controller) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
