// Package engine defines the interface boundary of the adaptive streaming playback engine.
package engine

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Named events emitted by the playback engine.
const (
	EventAudioMetadataLoaded = "audio-metadata-loaded"
	EventVideoMetadataLoaded = "video-metadata-loaded"
	EventTextMetadataLoaded  = "text-metadata-loaded"
	EventError               = "error"
	EventTimeUpdated         = "playback-time-updated"
	EventStreamTeardown      = "stream-teardown-complete"
)

// MetadataLoadedEvent returns the metadata-loaded event name for the given media type.
func MetadataLoadedEvent(t MediaType) string {
	switch t {
	case Audio:
		return EventAudioMetadataLoaded
	case Video:
		return EventVideoMetadataLoaded
	default:
		return EventTextMetadataLoaded
	}
}

// Listener is the function signature for engine event notifications.
type Listener func(payload interface{})

// Handle identifies one registered listener so it can be detached later.
type Handle struct {
	event string
	id    string
}

// Zero reports whether the handle refers to no registration.
func (h Handle) Zero() bool {
	return h.id == ""
}

type entry struct {
	id string
	fn Listener
}

// Bus is a named-event listener registry with synchronous, in-order dispatch.
//
// Dispatch is cooperative: all listeners run on the emitting call's goroutine.
// Defer schedules work to run after the currently dispatching emission has fully
// returned, which is the only suspension point the application relies on.
type Bus struct {
	mu        sync.Mutex
	listeners map[string][]entry
	depth     int
	draining  bool
	deferred  []func()
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[string][]entry)}
}

// On registers a listener for the named event and returns its detachment handle.
func (b *Bus) On(event string, fn Listener) Handle {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	b.listeners[event] = append(b.listeners[event], entry{id: id, fn: fn})
	return Handle{event: event, id: id}
}

// Off detaches the listener identified by the handle. Unknown handles are ignored,
// so detaching twice is harmless.
func (b *Bus) Off(h Handle) {
	if h.Zero() {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[h.event] = slices.DeleteFunc(b.listeners[h.event], func(e entry) bool {
		return e.id == h.id
	})
}

// ListenerCount returns the total number of registered listeners across all events.
func (b *Bus) ListenerCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	var n int
	for _, entries := range b.listeners {
		n += len(entries)
	}
	return n
}

// Emit dispatches the payload to every listener registered for the event, in
// registration order. Listeners registered or detached during dispatch take effect
// on the next emission. After the outermost emission returns, deferred tasks run.
func (b *Bus) Emit(event string, payload interface{}) {
	b.mu.Lock()
	b.depth++
	snapshot := slices.Clone(b.listeners[event])
	b.mu.Unlock()

	for _, e := range snapshot {
		e.fn(payload)
	}

	b.mu.Lock()
	b.depth--
	drain := b.depth == 0 && !b.draining
	b.mu.Unlock()

	if drain {
		b.drain()
	}
}

// Defer schedules fn to run once the currently dispatching emission has fully
// returned, so the caller's stack unwinds first. Outside of a dispatch the
// function runs immediately.
func (b *Bus) Defer(fn func()) {
	b.mu.Lock()
	if b.depth > 0 || b.draining {
		b.deferred = append(b.deferred, fn)
		b.mu.Unlock()
		return
	}
	b.mu.Unlock()

	fn()
}

// drain runs deferred tasks in FIFO order until none remain. Tasks may enqueue
// further tasks; those run within the same drain.
func (b *Bus) drain() {
	b.mu.Lock()
	b.draining = true
	for len(b.deferred) > 0 {
		fn := b.deferred[0]
		b.deferred = b.deferred[1:]
		b.mu.Unlock()
		fn()
		b.mu.Lock()
	}
	b.draining = false
	b.mu.Unlock()
}
