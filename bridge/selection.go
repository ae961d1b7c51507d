// Package bridge implements the track reconciliation and event-translation layer
// between the playback engine and the host media-player framework.
package bridge

import (
	"github.com/dashbridge/dashbridge/engine"
	"github.com/dashbridge/dashbridge/host"
	"github.com/dashbridge/dashbridge/log"
	"github.com/dashbridge/dashbridge/prefs"
	"github.com/dashbridge/dashbridge/util"
)

// binding owns the paired engine track set and host track list for one media
// type, together with the listener handles keeping them synchronized. The two
// lists keep a 1:1 index correspondence established at mirror time and never
// re-derived.
type binding struct {
	mediaType engine.MediaType
	eng       engine.Engine
	list      *host.TrackList

	changeHandle   host.ChangeHandle
	teardownHandle engine.Handle
	detached       bool
}

// bind mirrors the engine tracks into the host list and attaches the selection
// listeners. The binding detaches itself when the engine signals stream teardown,
// so a manifest reload never reacts to a stale track list.
func bind(eng engine.Engine, mediaType engine.MediaType, list *host.TrackList, uiLanguage string) *binding {
	mirror(eng, mediaType, list, uiLanguage)

	b := &binding{
		mediaType: mediaType,
		eng:       eng,
		list:      list,
	}

	b.changeHandle = list.OnChange(b.onHostSelectionChanged)
	b.teardownHandle = eng.Bus().On(engine.EventStreamTeardown, func(interface{}) {
		b.detach()
	})

	return b
}

// onHostSelectionChanged propagates a host-side selection to the engine.
//
// The scan walks the whole list without an early exit, matching the host's own
// iteration semantics; when several tracks report selected, the first in list
// order wins. This direction is deliberately the only one: engine-initiated
// switches are not pushed back into host selected state, which breaks any
// host-engine feedback cycle.
func (b *binding) onHostSelectionChanged() {
	applied := false
	for _, t := range b.list.Tracks() {
		if !t.Selected || applied {
			continue
		}

		mediaType, index, ok := ParseTrackID(t.ID)
		if !ok || mediaType != b.mediaType {
			continue
		}

		if err := b.eng.SetCurrentTrack(b.mediaType, index); err != nil {
			log.Warnf("switch %s track to %d: %v", b.mediaType, index, err)
			continue
		}
		applied = true

		if err := prefs.Remember(b.mediaType, t.Language); err != nil {
			log.Debugf("remember %s language: %v", b.mediaType, err)
		}
	}
}

// applyPreferredLanguage re-selects the remembered language after mirroring,
// preserving user intent across loads. A track already active stays untouched.
func (b *binding) applyPreferredLanguage() {
	preferred, ok := prefs.PreferredLanguage(b.mediaType).Get()
	if !ok {
		return
	}

	for _, t := range b.list.Tracks() {
		if t.Language != preferred {
			continue
		}
		if t.Selected {
			return
		}
		b.list.Select(t.ID)
		return
	}
}

// detach renders the binding's listeners inert. Safe to invoke repeatedly.
func (b *binding) detach() {
	if b.detached {
		return
	}
	b.detached = true

	b.list.RemoveChange(b.changeHandle)
	b.eng.Bus().Off(b.teardownHandle)
}

// detachAll detaches bindings in reverse order of creation.
func detachAll(bindings *util.Stack[*binding]) {
	for bindings.Len() > 0 {
		bindings.Pop().detach()
	}
}
