package notify

import (
	"context"
	"time"

	"feedsync/config"
	"feedsync/log"
)

// Type is the severity of a notification.
type Type string

const (
	Success Type = "success"
	Error   Type = "error"
	Warning Type = "warning"
	Info    Type = "info"
)

// ID identifies a notification. Ids grow monotonically for the lifetime
// of the dispatcher and are never reused.
type ID int64

// Notification is a transient user-facing message. Unless persistent,
// it removes itself once its duration elapses.
type Notification struct {
	ID         ID            `json:"id"`
	Type       Type          `json:"type"`
	Title      string        `json:"title"`
	Message    string        `json:"message,omitempty"`
	Duration   time.Duration `json:"-"`
	Persistent bool          `json:"persistent"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// Option adjusts a notification before it is enqueued.
type Option func(*Notification)

// WithDuration overrides the default auto-expiry duration.
func WithDuration(d time.Duration) Option {
	return func(n *Notification) {
		n.Duration = d
	}
}

// Persistent disables auto-expiry.
func Persistent() Option {
	return func(n *Notification) {
		n.Persistent = true
	}
}

const (
	added   = "notification-added"
	removed = "notification-removed"
)

// Event is sent to listener streams whenever the set of active
// notifications changes.
type Event struct {
	Name         string
	Notification Notification
}

// Stream receives notification events.
type Stream chan Event

type dispatcherCall func(*dispatcherPayload)

type dispatcherPayload struct {
	nextID        ID
	notifications []Notification
	timers        map[ID]*time.Timer
	listeners     []Stream
}

// Dispatcher is the single registry of active notifications. It is
// owned by the application root and passed by reference to everything
// that needs to surface messages; all state lives behind an ops channel
// serviced by one goroutine. Cancelling the construction context shuts
// the dispatcher down and stops any pending expiry timers.
type Dispatcher struct {
	ops chan dispatcherCall
	ctx context.Context
	cfg config.Notify
	log log.Log
}

func NewDispatcher(ctx context.Context, cfg config.Notify, log log.Log) *Dispatcher {
	d := &Dispatcher{
		ops: make(chan dispatcherCall),
		ctx: ctx,
		cfg: cfg,
		log: log,
	}

	go d.loop(ctx)

	return d
}

// Add enqueues a notification and returns its id. A zero id means the
// dispatcher has already been shut down.
func (d *Dispatcher) Add(typ Type, title, message string, opts ...Option) ID {
	notification := Notification{
		Type:      typ,
		Title:     title,
		Message:   message,
		Duration:  d.defaultDuration(typ),
		CreatedAt: time.Now(),
	}

	for _, o := range opts {
		o(&notification)
	}

	reply := make(chan ID, 1)

	op := func(p *dispatcherPayload) {
		p.nextID++
		notification.ID = p.nextID

		p.notifications = append(p.notifications, notification)

		if !notification.Persistent {
			id := notification.ID
			p.timers[id] = time.AfterFunc(notification.Duration, func() {
				d.Remove(id)
			})
		}

		d.log.Debugf("Added %s notification %d: %s", notification.Type, notification.ID, notification.Title)
		broadcast(p, Event{added, notification})

		reply <- notification.ID
	}

	select {
	case d.ops <- op:
		return <-reply
	case <-d.ctx.Done():
		return 0
	}
}

// Remove drops a notification. Removing an unknown or already expired
// id is a no-op.
func (d *Dispatcher) Remove(id ID) {
	op := func(p *dispatcherPayload) {
		if t, ok := p.timers[id]; ok {
			t.Stop()
			delete(p.timers, id)
		}

		for i := range p.notifications {
			if p.notifications[i].ID == id {
				notification := p.notifications[i]
				p.notifications = append(p.notifications[:i], p.notifications[i+1:]...)

				broadcast(p, Event{removed, notification})
				break
			}
		}
	}

	select {
	case d.ops <- op:
	case <-d.ctx.Done():
	}
}

// Clear drops every active notification.
func (d *Dispatcher) Clear() {
	op := func(p *dispatcherPayload) {
		for id, t := range p.timers {
			t.Stop()
			delete(p.timers, id)
		}

		for _, n := range p.notifications {
			broadcast(p, Event{removed, n})
		}

		p.notifications = nil
	}

	select {
	case d.ops <- op:
	case <-d.ctx.Done():
	}
}

// Notifications returns a snapshot of the active notifications in
// creation order.
func (d *Dispatcher) Notifications() []Notification {
	reply := make(chan []Notification, 1)

	op := func(p *dispatcherPayload) {
		snapshot := make([]Notification, len(p.notifications))
		copy(snapshot, p.notifications)

		reply <- snapshot
	}

	select {
	case d.ops <- op:
		return <-reply
	case <-d.ctx.Done():
		return nil
	}
}

// Listener registers a stream of notification change events.
func (d *Dispatcher) Listener() Stream {
	ret := make(Stream, 10)

	op := func(p *dispatcherPayload) {
		p.listeners = append(p.listeners, ret)
	}

	select {
	case d.ops <- op:
	case <-d.ctx.Done():
	}

	return ret
}

func (d *Dispatcher) defaultDuration(typ Type) time.Duration {
	if typ == Error {
		return d.cfg.Converted.ErrorDuration
	}

	return d.cfg.Converted.Duration
}

func broadcast(p *dispatcherPayload, event Event) {
	for _, l := range p.listeners {
		select {
		case l <- event:
		default:
			// A slow listener does not get to block the registry.
		}
	}
}

func (d *Dispatcher) loop(ctx context.Context) {
	payload := dispatcherPayload{
		timers: map[ID]*time.Timer{},
	}

	for {
		select {
		case op := <-d.ops:
			op(&payload)
		case <-ctx.Done():
			for _, t := range payload.timers {
				t.Stop()
			}

			return
		}
	}
}
