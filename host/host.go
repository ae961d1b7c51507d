// Package host defines the interface boundary of the media-player framework the bridge targets.
package host

// Capabilities describes the playback features the host runtime supports.
type Capabilities struct {
	// MediaSource reports media-source buffering support.
	MediaSource bool
	// EncryptedMedia reports encrypted-media (key system) support.
	EncryptedMedia bool
}

// Host encapsulates the required capabilities of a media-player framework.
type Host interface {
	// UILanguage returns the host's current UI language tag (e.g. "en-US").
	UILanguage() string

	// Capabilities returns the playback features the host runtime supports.
	Capabilities() Capabilities

	// AudioTracks returns the host's audio track list.
	AudioTracks() *TrackList

	// VideoTracks returns the host's video track list.
	VideoTracks() *TrackList

	// TextTracks returns the host's text track list.
	TextTracks() *TrackList

	// Ready signals that the source is attached and playback can begin.
	Ready()

	// Fatal reports a standardized error and terminates playback through the
	// host's error UI.
	Fatal(err Error)

	// TimeUpdated notifies the host of playback progress in seconds.
	TimeUpdated(seconds float64)
}
