package bridge

import (
	"errors"

	"github.com/dashbridge/dashbridge/engine"
	"github.com/dashbridge/dashbridge/host"
	"github.com/samber/mo"
)

// setCall records one SetCurrentTrack invocation on the fake engine.
type setCall struct {
	mediaType engine.MediaType
	index     int
}

// configureCall records one Configure invocation on the fake engine.
type configureCall struct {
	option string
	args   []interface{}
}

// fakeEngine is an in-memory playback engine for exercising the bridge.
type fakeEngine struct {
	bus     *engine.Bus
	tracks  map[engine.MediaType][]engine.Track
	current map[engine.MediaType]int

	attached   []string
	attachErr  error
	setCalls   []setCall
	setErr     error
	configured []configureCall
	resets     int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		bus:     engine.NewBus(),
		tracks:  make(map[engine.MediaType][]engine.Track),
		current: make(map[engine.MediaType]int),
	}
}

func (f *fakeEngine) Attach(source string) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	f.attached = append(f.attached, source)
	return nil
}

func (f *fakeEngine) Bus() *engine.Bus {
	return f.bus
}

func (f *fakeEngine) TracksFor(t engine.MediaType) []engine.Track {
	return f.tracks[t]
}

func (f *fakeEngine) CurrentTrack(t engine.MediaType) mo.Option[engine.Track] {
	index, ok := f.current[t]
	if !ok {
		return mo.None[engine.Track]()
	}
	for _, track := range f.tracks[t] {
		if track.Index == index {
			return mo.Some(track)
		}
	}
	return mo.None[engine.Track]()
}

func (f *fakeEngine) SetCurrentTrack(t engine.MediaType, index int) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.setCalls = append(f.setCalls, setCall{mediaType: t, index: index})
	f.current[t] = index
	return nil
}

func (f *fakeEngine) Configure(option string, args ...interface{}) error {
	f.configured = append(f.configured, configureCall{option: option, args: args})
	return nil
}

func (f *fakeEngine) Duration() float64    { return 0 }
func (f *fakeEngine) CurrentTime() float64 { return 0 }

func (f *fakeEngine) Seek(float64) error { return errors.New("not seekable") }

func (f *fakeEngine) Reset() error {
	f.resets++
	return nil
}

// fakeHost is an in-memory host framework for exercising the bridge.
type fakeHost struct {
	uiLanguage string
	caps       host.Capabilities

	audio *host.TrackList
	video *host.TrackList
	text  *host.TrackList

	ready  int
	fatals []host.Error
	times  []float64
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		uiLanguage: "en-US",
		caps:       host.Capabilities{MediaSource: true, EncryptedMedia: true},
		audio:      host.NewTrackList(),
		video:      host.NewTrackList(),
		text:       host.NewTrackList(),
	}
}

func (f *fakeHost) UILanguage() string              { return f.uiLanguage }
func (f *fakeHost) Capabilities() host.Capabilities { return f.caps }
func (f *fakeHost) AudioTracks() *host.TrackList    { return f.audio }
func (f *fakeHost) VideoTracks() *host.TrackList    { return f.video }
func (f *fakeHost) TextTracks() *host.TrackList     { return f.text }
func (f *fakeHost) Ready()                          { f.ready++ }
func (f *fakeHost) Fatal(err host.Error)            { f.fatals = append(f.fatals, err) }
func (f *fakeHost) TimeUpdated(seconds float64)     { f.times = append(f.times, seconds) }
