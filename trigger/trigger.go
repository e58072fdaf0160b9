package trigger

import (
	"context"
	"sync"
	"time"

	"feedsync/config"
	"feedsync/log"
)

// Source abstracts the platform facility that reports a sentinel
// element entering the viewport. Observe attaches to the named target
// and returns a stream of intersection events together with a teardown.
// Observe fails while the target does not exist yet.
type Source interface {
	Observe(target string) (<-chan struct{}, func(), error)
}

// Callback is invoked on intersection. Its error is swallowed at this
// layer; surfacing failures to the user is the caller's job.
type Callback func(ctx context.Context) error

// Trigger invokes its callback at most once per intersection event,
// only while it is enabled and no earlier invocation is still pending.
// It starts detached; use AttachWhenReady when the presentation layer
// exposes a mount signal, or Attach to fall back to a bounded readiness
// poll.
type Trigger struct {
	source   Source
	callback Callback
	cfg      config.Trigger
	log      log.Log

	mu       sync.Mutex
	enabled  bool
	busy     bool
	closed   bool
	gen      int
	teardown func()
}

func New(source Source, callback Callback, cfg config.Trigger, log log.Log) *Trigger {
	return &Trigger{
		source:   source,
		callback: callback,
		cfg:      cfg,
		log:      log,
		enabled:  true,
	}
}

// AttachWhenReady waits for the readiness signal and then observes the
// target. This is the preferred attach path: no guessing at when the
// target exists.
func (t *Trigger) AttachWhenReady(ctx context.Context, ready <-chan struct{}, target string) {
	go func() {
		select {
		case <-ready:
		case <-ctx.Done():
			return
		}

		events, teardown, err := t.source.Observe(target)
		if err != nil {
			t.log.Printf("Observing %s after readiness signal: %+v", target, err)
			return
		}

		t.watch(ctx, events, teardown)
	}()
}

// Attach observes the target, polling with a fixed delay while it does
// not exist yet. After the retry budget is exhausted the trigger stays
// inert; no error is surfaced and the caller must not depend on the
// attachment having succeeded.
func (t *Trigger) Attach(ctx context.Context, target string) {
	go func() {
		for attempt := 0; attempt < t.cfg.SetupRetries; attempt++ {
			if attempt > 0 {
				select {
				case <-time.After(t.cfg.Converted.SetupDelay):
				case <-ctx.Done():
					return
				}
			}

			events, teardown, err := t.source.Observe(target)
			if err == nil {
				t.watch(ctx, events, teardown)
				return
			}

			t.log.Debugf("Observing %s, attempt %d: %v", target, attempt+1, err)
		}

		t.log.Debugf("Giving up on target %s after %d attempts", target, t.cfg.SetupRetries)
	}()
}

// watch registers the new observation, replacing a previous one, and
// consumes intersection events until the stream or the context ends.
func (t *Trigger) watch(ctx context.Context, events <-chan struct{}, teardown func()) {
	t.mu.Lock()

	if t.closed {
		t.mu.Unlock()
		teardown()

		return
	}

	if t.teardown != nil {
		t.teardown()
	}
	t.teardown = teardown

	t.gen++
	gen := t.gen

	t.mu.Unlock()

	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}

			t.fire(ctx, gen)
		case <-ctx.Done():
			return
		}
	}
}

// fire runs the callback unless the trigger is disabled, superseded, or
// an invocation is still pending. Events arriving while busy are
// dropped, never queued.
func (t *Trigger) fire(ctx context.Context, gen int) {
	t.mu.Lock()

	if t.closed || t.gen != gen || !t.enabled || t.busy {
		t.mu.Unlock()
		return
	}

	t.busy = true
	t.mu.Unlock()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				t.log.Printf("Trigger callback panic: %v", r)
			}

			t.mu.Lock()
			t.busy = false
			t.mu.Unlock()
		}()

		if err := t.callback(ctx); err != nil {
			t.log.Printf("Trigger callback: %+v", err)
		}
	}()
}

// Enable allows callback invocations again.
func (t *Trigger) Enable() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.enabled = true
}

// Disable keeps the observation alive but suppresses the callback.
func (t *Trigger) Disable() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.enabled = false
}

// Close tears the observation down. The trigger cannot be reattached
// afterwards.
func (t *Trigger) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}

	t.closed = true

	if t.teardown != nil {
		t.teardown()
		t.teardown = nil
	}
}
