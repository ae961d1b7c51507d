// Package host defines the interface boundary of the media-player framework the bridge targets.
//
// The host owns rendering, UI and user interaction; this package models its track
// lists, error reporting and readiness signals.
package host

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Track is one entry in a host track list. Selected is the only field that
// mutates after creation.
type Track struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Label    string `json:"label"`
	Language string `json:"language"`
	Selected bool   `json:"selected"`
}

// ChangeListener is the function signature for track-list selection change notifications.
type ChangeListener func()

// ChangeHandle identifies one registered change listener.
type ChangeHandle string

type changeEntry struct {
	id ChangeHandle
	fn ChangeListener
}

// TrackList is the host's track-list container for one media type: an ordered
// collection of tracks with a "selection changed" signal.
type TrackList struct {
	mu        sync.Mutex
	tracks    []*Track
	listeners []changeEntry
}

// NewTrackList creates an empty track list.
func NewTrackList() *TrackList {
	return &TrackList{}
}

// Add appends a track to the end of the list.
func (l *TrackList) Add(t *Track) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tracks = append(l.tracks, t)
}

// Remove deletes the track with the given id, if present.
func (l *TrackList) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tracks = slices.DeleteFunc(l.tracks, func(t *Track) bool {
		return t.ID == id
	})
}

// Clear removes every track from the list without firing the change signal.
func (l *TrackList) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tracks = nil
}

// Len returns the number of tracks in the list.
func (l *TrackList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tracks)
}

// Get returns the track at position i, or nil when out of range.
func (l *TrackList) Get(i int) *Track {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.tracks) {
		return nil
	}
	return l.tracks[i]
}

// Tracks returns a snapshot of the list in order.
func (l *TrackList) Tracks() []*Track {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.tracks)
}

// OnChange registers a listener for the selection change signal and returns its
// detachment handle.
func (l *TrackList) OnChange(fn ChangeListener) ChangeHandle {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := ChangeHandle(uuid.NewString())
	l.listeners = append(l.listeners, changeEntry{id: id, fn: fn})
	return id
}

// RemoveChange detaches the listener identified by the handle. Unknown handles
// are ignored.
func (l *TrackList) RemoveChange(h ChangeHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = slices.DeleteFunc(l.listeners, func(e changeEntry) bool {
		return e.id == h
	})
}

// Change fires the selection change signal, invoking listeners in registration order.
func (l *TrackList) Change() {
	l.mu.Lock()
	snapshot := slices.Clone(l.listeners)
	l.mu.Unlock()

	for _, e := range snapshot {
		e.fn()
	}
}

// Select marks the track with the given id as selected, deselects the others and
// fires the change signal. It is the programmatic equivalent of a user selection.
func (l *TrackList) Select(id string) {
	l.mu.Lock()
	for _, t := range l.tracks {
		t.Selected = t.ID == id
	}
	l.mu.Unlock()

	l.Change()
}
