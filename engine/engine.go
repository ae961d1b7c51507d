// Package engine defines the interface boundary of the adaptive streaming playback engine.
package engine

import "github.com/samber/mo"

// Engine encapsulates the required capabilities of an adaptive streaming playback backend.
//
// Implementations own manifest fetching, adaptive bitrate logic and media-source
// buffering; callers only observe and drive this surface.
type Engine interface {
	// Attach initializes the engine's internal player with the given source descriptor.
	Attach(source string) error

	// Bus returns the engine's event registry. All named events defined in this
	// package are delivered through it.
	Bus() *Bus

	// TracksFor enumerates the engine's current track set for one media type,
	// in manifest order.
	TracksFor(t MediaType) []Track

	// CurrentTrack retrieves the active track for one media type, if any.
	CurrentTrack(t MediaType) mo.Option[Track]

	// SetCurrentTrack switches the active track for the media type to the track
	// at the given manifest index.
	SetCurrentTrack(t MediaType, index int) error

	// Configure forwards one named option to the engine. Option names are
	// validated against the Options schema before the call.
	Configure(option string, args ...interface{}) error

	// Duration retrieves the total temporal length of the active stream in seconds.
	Duration() float64

	// CurrentTime retrieves the current absolute playback position in seconds.
	CurrentTime() float64

	// Seek transitions the playback position to a specific absolute timestamp in seconds.
	Seek(seconds float64) error

	// Reset tears the internal player down and releases all media resources.
	Reset() error
}
