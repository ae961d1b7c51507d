package bridge

import (
	"errors"
	"testing"

	"github.com/dashbridge/dashbridge/engine"
	"github.com/dashbridge/dashbridge/hooks"
	"github.com/dashbridge/dashbridge/host"
	"github.com/dashbridge/dashbridge/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestBridgeLifecycle(t *testing.T) {
	Convey("Bridge lifecycle", t, func() {
		eng := newFakeEngine()
		hst := newFakeHost()
		src := host.Source{URL: "https://cdn.example/stream.mpd"}

		Convey("An empty source never initializes", func() {
			b := New(eng, hst, host.Source{}, Options{})

			So(b.State(), ShouldEqual, Uninitialized)
			So(b.Initialize(), ShouldBeNil)
			So(b.State(), ShouldEqual, Uninitialized)
			So(eng.attached, ShouldBeEmpty)
			So(hst.ready, ShouldEqual, 0)

			b.Dispose()
			So(eng.resets, ShouldEqual, 0)
		})

		Convey("Initialize attaches the source and signals ready once", func() {
			b := New(eng, hst, src, Options{})

			So(b.State(), ShouldEqual, Initializing)
			So(b.Initialize(), ShouldBeNil)
			So(b.State(), ShouldEqual, Attached)
			So(eng.attached, ShouldResemble, []string{src.URL})
			So(hst.ready, ShouldEqual, 1)

			Convey("and a second Initialize is a no-op", func() {
				So(b.Initialize(), ShouldBeNil)
				So(eng.attached, ShouldHaveLength, 1)
				So(hst.ready, ShouldEqual, 1)
			})
		})

		Convey("An attach failure is surfaced and leaves no listeners behind", func() {
			eng.attachErr = errors.New("gateway timeout")
			b := New(eng, hst, src, Options{})

			So(b.Initialize(), ShouldNotBeNil)
			So(b.State(), ShouldEqual, Initializing)
			So(hst.ready, ShouldEqual, 0)
			So(eng.bus.ListenerCount(), ShouldEqual, 0)
		})

		Convey("Disposing before attachment tears down without touching the engine", func() {
			b := New(eng, hst, src, Options{})
			b.Dispose()

			So(b.State(), ShouldEqual, TornDown)
			So(eng.resets, ShouldEqual, 0)
			So(b.Initialize(), ShouldBeNil)
			So(eng.attached, ShouldBeEmpty)
		})
	})
}

func TestBridgeHooks(t *testing.T) {
	Convey("Bridge hook points", t, func() {
		eng := newFakeEngine()
		hst := newFakeHost()

		Convey("updatesource hooks rewrite the source before attachment", func() {
			registry := hooks.New()
			registry.Register(hooks.UpdateSource, func(v interface{}) interface{} {
				src := v.(host.Source)
				src.URL = "https://proxy.example/stream.mpd"
				return src
			})

			b := New(eng, hst, host.Source{URL: "https://cdn.example/stream.mpd"}, Options{Hooks: registry})
			So(b.Initialize(), ShouldBeNil)
			So(eng.attached, ShouldResemble, []string{"https://proxy.example/stream.mpd"})
		})

		Convey("A hook that empties the source is ignored", func() {
			registry := hooks.New()
			registry.Register(hooks.UpdateSource, func(interface{}) interface{} {
				return host.Source{}
			})

			b := New(eng, hst, host.Source{URL: "https://cdn.example/stream.mpd"}, Options{Hooks: registry})
			So(b.Initialize(), ShouldBeNil)
			So(eng.attached, ShouldResemble, []string{"https://cdn.example/stream.mpd"})
		})

		Convey("beforeinitialize hooks observe the engine prior to attachment", func() {
			registry := hooks.New()

			var sawEngine bool
			registry.Register(hooks.BeforeInitialize, func(v interface{}) interface{} {
				_, sawEngine = v.(engine.Engine)
				So(eng.attached, ShouldBeEmpty)
				return v
			})

			b := New(eng, hst, host.Source{URL: "https://cdn.example/stream.mpd"}, Options{Hooks: registry})
			So(b.Initialize(), ShouldBeNil)
			So(sawEngine, ShouldBeTrue)
		})
	})
}

func TestBridgeEngineOptions(t *testing.T) {
	Convey("Engine option forwarding", t, func() {
		eng := newFakeEngine()
		hst := newFakeHost()
		src := host.Source{URL: "https://cdn.example/stream.mpd"}

		Convey("Valid options are forwarded in name order", func() {
			b := New(eng, hst, src, Options{
				EngineOptions: map[string][]interface{}{
					"stableBufferTime":  {12.0},
					"fastSwitchEnabled": {true},
					"initialBitrateFor": {"video", 3000},
				},
			})
			So(b.Initialize(), ShouldBeNil)

			So(eng.configured, ShouldResemble, []configureCall{
				{option: "fastSwitchEnabled", args: []interface{}{true}},
				{option: "initialBitrateFor", args: []interface{}{"video", 3000}},
				{option: "stableBufferTime", args: []interface{}{12.0}},
			})
		})

		Convey("Unknown and getter-only options are dropped", func() {
			b := New(eng, hst, src, Options{
				EngineOptions: map[string][]interface{}{
					"stableBufferTyme":  {12.0},
					"averageThroughput": {9000},
				},
			})
			So(b.Initialize(), ShouldBeNil)
			So(eng.configured, ShouldBeEmpty)
		})

		Convey("A nil option set derives from the configuration keys", func() {
			viper.Set(key.EngineFastSwitch, true)
			viper.Set(key.EngineBufferTime, 20)
			viper.Set(key.EngineStreaming, []string{"limitBitrateByPortal=true", "malformed"})
			defer viper.Reset()

			b := New(eng, hst, src, Options{})
			So(b.Initialize(), ShouldBeNil)

			So(eng.configured, ShouldResemble, []configureCall{
				{option: "fastSwitchEnabled", args: []interface{}{true}},
				{option: "limitBitrateByPortal", args: []interface{}{"true"}},
				{option: "stableBufferTime", args: []interface{}{20}},
			})
		})

		Convey("Single-value options are truncated to their first argument", func() {
			b := New(eng, hst, src, Options{
				EngineOptions: map[string][]interface{}{
					"limitBitrateByPortal": {true, false, true},
				},
			})
			So(b.Initialize(), ShouldBeNil)
			So(eng.configured, ShouldResemble, []configureCall{
				{option: "limitBitrateByPortal", args: []interface{}{true}},
			})
		})
	})
}

func TestBridgeDispatch(t *testing.T) {
	Convey("Attached bridge dispatch", t, func() {
		eng := newFakeEngine()
		eng.tracks[engine.Audio] = []engine.Track{
			{Index: 0, Type: engine.Audio, Language: "en", Roles: []string{"main"}},
			{Index: 1, Type: engine.Audio, Language: "fr", Roles: []string{"main"}},
		}
		eng.current[engine.Audio] = 0

		hst := newFakeHost()
		b := New(eng, hst, host.Source{URL: "https://cdn.example/stream.mpd"}, Options{})
		So(b.Initialize(), ShouldBeNil)

		Convey("Metadata arrival mirrors audio tracks into the host list", func() {
			eng.bus.Emit(engine.EventAudioMetadataLoaded, nil)

			So(hst.audio.Len(), ShouldEqual, 2)
			track := hst.audio.Get(0)
			So(track, ShouldNotBeNil)
			So(track.ID, ShouldEqual, "dash-audio-0")
			So(track.Selected, ShouldBeTrue)
		})

		Convey("Time updates reach the host", func() {
			eng.bus.Emit(engine.EventTimeUpdated, 42.5)
			eng.bus.Emit(engine.EventTimeUpdated, "not a clock")

			So(hst.times, ShouldResemble, []float64{42.5})
		})

		Convey("Dispose detaches everything and resets the engine", func() {
			eng.bus.Emit(engine.EventAudioMetadataLoaded, nil)
			b.Dispose()

			So(b.State(), ShouldEqual, TornDown)
			So(eng.resets, ShouldEqual, 1)
			So(eng.bus.ListenerCount(), ShouldEqual, 0)

			Convey("and later engine events are inert", func() {
				eng.bus.Emit(engine.EventTimeUpdated, 99.0)
				eng.bus.Emit(engine.EventError, engine.ErrorEvent{
					Category: engine.CategoryDownload,
					Detail:   "late failure",
				})
				hst.audio.Select("dash-audio-1")

				So(hst.times, ShouldBeEmpty)
				So(hst.fatals, ShouldBeEmpty)
				So(eng.setCalls, ShouldBeEmpty)
				So(eng.resets, ShouldEqual, 1)
			})

			Convey("and disposing again changes nothing", func() {
				b.Dispose()
				So(eng.resets, ShouldEqual, 1)
			})
		})
	})
}
