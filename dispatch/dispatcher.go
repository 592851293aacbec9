// Package dispatch implements the type-keyed multi-subscriber registry
// the Runner fans decoded messages through (spec 4.5). Subscriber
// channels are buffered the way the teacher buffers a session's outbound
// queue (state/session.go's msgCh), so a slow subscriber applies
// backpressure instead of dropping frames silently.
package dispatch

import (
	"sync"

	"github.com/trovochat/trovochat/message"
)

// subscriberBufferSize is the per-subscriber channel depth.
const subscriberBufferSize = 32

type entry struct {
	id      uint64
	private bool
	done    chan struct{}
	cancel  func()
	deliver func(message.Message) bool
}

// Dispatcher fans out dispatched messages to subscribers keyed by
// message.Kind, plus an AllCommands catch-all that receives every
// dispatch regardless of its concrete variant. It is safe for concurrent
// use; the Runner is expected to be its only writer, but subscribers may
// come and go from any goroutine.
type Dispatcher struct {
	mu     sync.Mutex
	subs   map[message.Kind][]*entry
	all    []*entry
	cache  map[message.Kind]message.Message
	nextID uint64
}

// New returns an empty Dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		subs:  make(map[message.Kind][]*entry),
		cache: make(map[message.Kind]message.Message),
	}
}

// Dispatch fans msg out to every subscriber of its Kind, to Raw
// subscribers (wrapping msg's underlying frame when msg is not already a
// Raw), and to every AllCommands subscriber. It also refreshes the
// single-slot WaitFor cache for msg's Kind. Dead subscribers (those whose
// cancel func has run) are pruned lazily as they're encountered here,
// rather than eagerly swept on every unsubscribe.
func (d *Dispatcher) Dispatch(msg message.Message) {
	kind := msg.Kind()

	d.mu.Lock()
	d.cache[kind] = msg
	d.mu.Unlock()

	d.fanout(kind, msg)

	if kind != message.KindRaw {
		raw := message.NewRaw(msg.Raw())
		d.fanout(message.KindRaw, raw)
	}

	d.fanoutAll(msg)
}

func (d *Dispatcher) fanout(kind message.Kind, msg message.Message) {
	d.mu.Lock()
	list := d.subs[kind]
	d.mu.Unlock()

	var dead []uint64
	for _, e := range list {
		if !e.deliver(msg) {
			dead = append(dead, e.id)
		}
	}
	if len(dead) > 0 {
		d.pruneSubs(kind, dead)
	}
}

func (d *Dispatcher) fanoutAll(msg message.Message) {
	d.mu.Lock()
	list := d.all
	d.mu.Unlock()

	var dead []uint64
	for _, e := range list {
		if !e.deliver(msg) {
			dead = append(dead, e.id)
		}
	}
	if len(dead) > 0 {
		d.pruneAll(dead)
	}
}

func (d *Dispatcher) pruneSubs(kind message.Kind, dead []uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subs[kind] = filterOut(d.subs[kind], dead)
}

func (d *Dispatcher) pruneAll(dead []uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.all = filterOut(d.all, dead)
}

func filterOut(list []*entry, dead []uint64) []*entry {
	if len(dead) == 0 {
		return list
	}
	deadSet := make(map[uint64]bool, len(dead))
	for _, id := range dead {
		deadSet[id] = true
	}
	out := list[:0]
	for _, e := range list {
		if !deadSet[e.id] {
			out = append(out, e)
		}
	}
	return out
}

// ClearSubscriptions removes every public subscriber of kind, leaving
// private (internal) subscriptions — such as a pending WaitFor —
// untouched.
func (d *Dispatcher) ClearSubscriptions(kind message.Kind) {
	d.mu.Lock()
	defer d.mu.Unlock()
	kept := d.subs[kind][:0]
	for _, e := range d.subs[kind] {
		if e.private {
			kept = append(kept, e)
		}
	}
	d.subs[kind] = kept
}

// ClearAll removes every public subscriber across every Kind and the
// AllCommands registry, leaving private subscriptions untouched.
func (d *Dispatcher) ClearAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for kind, list := range d.subs {
		kept := list[:0]
		for _, e := range list {
			if e.private {
				kept = append(kept, e)
			}
		}
		d.subs[kind] = kept
	}
	keptAll := d.all[:0]
	for _, e := range d.all {
		if e.private {
			keptAll = append(keptAll, e)
		}
	}
	d.all = keptAll
}

// ClearAllIncludingPrivate closes every subscriber, including private
// (internal) ones, and empties the registry. The Runner calls this once
// on shutdown, per spec 4.5's "the runner shuts down" termination
// condition for every subscription stream and spec 4.7's quit path
// ("clear all (including private) subscriptions").
func (d *Dispatcher) ClearAllIncludingPrivate() {
	d.mu.Lock()
	subs := d.subs
	all := d.all
	d.subs = make(map[message.Kind][]*entry)
	d.all = nil
	d.mu.Unlock()

	for _, list := range subs {
		for _, e := range list {
			e.cancel()
		}
	}
	for _, e := range all {
		e.cancel()
	}
}
