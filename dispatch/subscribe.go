package dispatch

import (
	"sync"

	"github.com/trovochat/trovochat/message"
)

// Subscribe registers a new public subscriber for kind, returning a
// receive-only channel of the concrete type T (e.g. message.Privmsg, or
// message.AllCommands for the catch-all via kind -1 passed as
// KindAllCommands) and a cancel func. Cancel is idempotent and closes the
// returned channel. The
// subscription is pruned from the registry lazily, the next time
// Dispatch walks past a cancelled entry.
//
// T must match kind's concrete type (message.KindOf's mapping), or
// Subscribe's own registry reverses it (AllCommands's kind sentinel); a
// mismatched T simply never receives anything, since Dispatch only ever
// hands entries registered for a given kind values matching the actual
// dispatched type.
func Subscribe[T message.Message](d *Dispatcher, kind message.Kind) (<-chan T, func()) {
	return subscribe[T](d, kind, false)
}

// subscribePrivate registers an internal subscriber that survives
// ClearSubscriptions/ClearAll. WaitFor uses it for its one-shot wait.
func subscribePrivate[T message.Message](d *Dispatcher, kind message.Kind) (<-chan T, func()) {
	return subscribe[T](d, kind, true)
}

func subscribe[T message.Message](d *Dispatcher, kind message.Kind, private bool) (<-chan T, func()) {
	ch := make(chan T, subscriberBufferSize)
	done := make(chan struct{})

	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.mu.Unlock()

	// sendMu keeps cancel from closing ch while deliver is sending on it.
	var sendMu sync.Mutex
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			sendMu.Lock()
			close(ch)
			sendMu.Unlock()
		})
	}

	e := &entry{
		id:      id,
		private: private,
		done:    done,
		cancel:  cancel,
		deliver: func(msg message.Message) bool {
			sendMu.Lock()
			defer sendMu.Unlock()
			select {
			case <-done:
				return false
			default:
			}
			v, ok := msg.(T)
			if !ok {
				return true
			}
			select {
			case ch <- v:
				return true
			case <-done:
				return false
			}
		},
	}

	d.mu.Lock()
	if kind == KindAllCommands {
		d.all = append(d.all, e)
	} else {
		d.subs[kind] = append(d.subs[kind], e)
	}
	d.mu.Unlock()

	return ch, cancel
}

// KindAllCommands is the sentinel passed to Subscribe to register for the
// AllCommands catch-all rather than a single message.Kind. It is chosen
// outside message.Kind's valid range (which starts at 0) so it can never
// collide with a real variant.
const KindAllCommands message.Kind = -1
