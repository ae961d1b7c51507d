// Package bridge implements the track reconciliation and event-translation layer
// between the playback engine and the host media-player framework.
package bridge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dashbridge/dashbridge/engine"
	"github.com/dashbridge/dashbridge/hooks"
	"github.com/dashbridge/dashbridge/host"
	"github.com/dashbridge/dashbridge/key"
	"github.com/dashbridge/dashbridge/log"
	"github.com/dashbridge/dashbridge/util"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// State enumerates the coordinator's lifecycle phases.
type State int

const (
	// Uninitialized means no source was provided; nothing ever attaches.
	Uninitialized State = iota
	// Initializing means a source is pending attachment.
	Initializing
	// Attached means listeners are registered and the host was signaled ready.
	Attached
	// TornDown means every listener was detached and the engine was reset.
	TornDown
)

// String returns the lifecycle phase identifier.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Attached:
		return "attached"
	default:
		return "torndown"
	}
}

// Options configures a Bridge instance.
type Options struct {
	// Hooks is the lifecycle hook registry consulted at the updatesource and
	// beforeinitialize extension points. When nil, a registry is populated from
	// the hook scripts directory if hooks.load_scripts is enabled.
	Hooks *hooks.Registry

	// EngineOptions holds named options forwarded to the engine before
	// attachment, validated against the enumerated engine option schema.
	// When nil, the set is derived from the engine.* configuration keys.
	EngineOptions map[string][]interface{}

	// UILanguage overrides the host's UI language for label derivation.
	UILanguage string

	// ApplyPreferredLanguage re-selects the remembered track language after
	// mirroring.
	ApplyPreferredLanguage bool
}

// Bridge is the lifecycle coordinator: it owns every listener handle the track
// mirroring, selection synchronization and error translation require, and
// guarantees they are attached and detached cleanly exactly once per load.
type Bridge struct {
	eng  engine.Engine
	hst  host.Host
	src  host.Source
	opts Options

	state    State
	handles  util.Stack[engine.Handle]
	bindings util.Stack[*binding]
}

// New constructs a coordinator for one source load. An empty source leaves the
// bridge permanently uninitialized; that is a no-op load, not an error.
func New(eng engine.Engine, hst host.Host, src host.Source, opts Options) *Bridge {
	b := &Bridge{
		eng:   eng,
		hst:   hst,
		src:   src,
		opts:  opts,
		state: Uninitialized,
	}

	if !src.Empty() {
		b.state = Initializing
	}
	return b
}

// State returns the coordinator's current lifecycle phase.
func (b *Bridge) State() State {
	return b.state
}

// Initialize runs the updatesource hooks, forwards the configured engine
// options, runs the beforeinitialize hooks, attaches the source and registers
// every listener, then signals the host ready. On an uninitialized bridge it is
// a no-op.
func (b *Bridge) Initialize() error {
	if b.state != Initializing {
		return nil
	}

	if b.opts.Hooks == nil && viper.GetBool(key.HooksLoadScripts) {
		b.opts.Hooks = hooks.New()
		if err := hooks.LoadScripts(b.opts.Hooks); err != nil {
			log.Warnf("load hook scripts: %v", err)
		}
	}
	if b.opts.EngineOptions == nil {
		b.opts.EngineOptions = optionsFromConfig()
	}

	src, _ := b.opts.Hooks.Run(hooks.UpdateSource, b.src).(host.Source)
	if src.Empty() {
		src = b.src
	}
	b.src = src

	b.applyEngineOptions()
	b.opts.Hooks.Run(hooks.BeforeInitialize, b.eng)

	if err := b.eng.Attach(src.URL); err != nil {
		return fmt.Errorf("attach source: %w", err)
	}

	b.attachListeners()
	b.state = Attached
	b.hst.Ready()

	log.Infof("bridge attached: %s", src.URL)
	return nil
}

// attachListeners registers the metadata-loaded, error and time-updated
// listeners, tracking every handle for reverse-order detachment.
func (b *Bridge) attachListeners() {
	bus := b.eng.Bus()

	for _, mediaType := range engine.MediaTypes {
		mt := mediaType
		b.handles.Push(bus.On(engine.MetadataLoadedEvent(mt), func(interface{}) {
			b.onMetadataLoaded(mt)
		}))
	}

	b.handles.Push(bus.On(engine.EventError, b.onEngineError))
	b.handles.Push(bus.On(engine.EventTimeUpdated, func(payload interface{}) {
		if seconds, ok := payload.(float64); ok {
			b.hst.TimeUpdated(seconds)
		}
	}))
}

// onMetadataLoaded mirrors one media type into its host track list and binds
// the selection synchronizer for it.
func (b *Bridge) onMetadataLoaded(mediaType engine.MediaType) {
	if b.state != Attached {
		return
	}

	bd := bind(b.eng, mediaType, b.trackList(mediaType), b.uiLanguage())
	b.bindings.Push(bd)

	if b.opts.ApplyPreferredLanguage {
		bd.applyPreferredLanguage()
	}

	log.Debugf("mirrored %s tracks: %d", mediaType, bd.list.Len())
}

// onEngineError classifies one engine error signal. Fatal classifications
// report exactly one host error and schedule exactly one engine reset for after
// the emitting call returns; everything else is discarded.
func (b *Bridge) onEngineError(payload interface{}) {
	ev, ok := payload.(engine.ErrorEvent)
	if !ok {
		log.Warnf("engine error with unexpected payload %T", payload)
		return
	}

	herr, fatal := classify(ev)
	if !fatal {
		log.Debugf("discarding non-fatal engine error: %s", ev.Category)
		return
	}

	b.hst.Fatal(herr)
	b.eng.Bus().Defer(func() {
		util.Ignore(b.eng.Reset)
	})
}

// Dispose detaches every previously registered listener in reverse order of
// registration and resets the engine player. Safe to invoke in any state;
// disposing twice is a no-op.
func (b *Bridge) Dispose() {
	if b.state != Attached {
		if b.state == Initializing {
			b.state = TornDown
		}
		return
	}

	detachAll(&b.bindings)
	for b.handles.Len() > 0 {
		b.eng.Bus().Off(b.handles.Pop())
	}

	util.Ignore(b.eng.Reset)
	b.state = TornDown

	log.Infof("bridge torn down")
}

// trackList resolves the host track list for a media type.
func (b *Bridge) trackList(t engine.MediaType) *host.TrackList {
	switch t {
	case engine.Audio:
		return b.hst.AudioTracks()
	case engine.Video:
		return b.hst.VideoTracks()
	default:
		return b.hst.TextTracks()
	}
}

// uiLanguage resolves the language tag used for label derivation.
func (b *Bridge) uiLanguage() string {
	if b.opts.UILanguage != "" {
		return b.opts.UILanguage
	}
	return b.hst.UILanguage()
}

// optionsFromConfig builds the engine option set from the configuration keys.
// Only values diverging from the engine's own defaults are forwarded; raw
// "name=value" entries from engine.streaming pass through for schema validation.
func optionsFromConfig() map[string][]interface{} {
	opts := make(map[string][]interface{})

	if viper.GetBool(key.EngineLimitBitrateByPortal) {
		opts["limitBitrateByPortal"] = []interface{}{true}
	}
	if viper.GetBool(key.EngineFastSwitch) {
		opts["fastSwitchEnabled"] = []interface{}{true}
	}
	if kbps := viper.GetInt(key.EngineInitialBitrate); kbps > 0 {
		opts["initialBitrateFor"] = []interface{}{string(engine.Video), kbps}
	}
	if seconds := viper.GetInt(key.EngineBufferTime); seconds > 0 {
		opts["stableBufferTime"] = []interface{}{seconds}
	}

	for _, raw := range viper.GetStringSlice(key.EngineStreaming) {
		name, value, found := strings.Cut(raw, "=")
		if !found || name == "" {
			log.Warnf("malformed engine.streaming entry %q, expected name=value", raw)
			continue
		}
		opts[name] = []interface{}{value}
	}

	return opts
}

// applyEngineOptions validates the configured option names against the
// enumerated schema and forwards the valid ones. Unknown names produce a
// reported, non-fatal diagnostic with a nearest-name suggestion.
func (b *Bridge) applyEngineOptions() {
	names := lo.Keys(b.opts.EngineOptions)
	sort.Strings(names)

	for _, name := range names {
		args := b.opts.EngineOptions[name]

		spec, known := engine.Options[name]
		if !known {
			closest := lo.MinBy(engine.OptionNames(), func(a string, b string) bool {
				return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
			})
			log.Warnf("unknown engine option %q, did you mean %q? dropping it", name, closest)
			continue
		}
		if !spec.Settable {
			log.Warnf("engine option %q has no setter, dropping it", name)
			continue
		}
		if !spec.AcceptsArgs && len(args) > 1 {
			log.Warnf("engine option %q takes a single value, got %d; using the first", name, len(args))
			args = args[:1]
		}

		if err := b.eng.Configure(name, args...); err != nil {
			log.Warnf("configure engine option %q: %v", name, err)
		}
	}
}
