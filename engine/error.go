// Package engine defines the interface boundary of the adaptive streaming playback engine.
package engine

// Coarse error categories emitted by the playback engine. These never reach the
// host framework directly; the bridge translates the fatal ones into host codes.
const (
	CategoryCapability  = "capability"
	CategoryManifest    = "manifest"
	CategoryMediaSource = "mediasource"
	CategoryKeySession  = "key-session"
	CategoryDownload    = "download"

	// Informational categories, never fatal.
	CategoryTextTrack  = "text-track"
	CategoryKeyMessage = "key-message"
)

// Capability feature identifiers carried in the detail of capability errors.
const (
	FeatureMediaSource    = "mediasource"
	FeatureEncryptedMedia = "encryptedmedia"
)

// Manifest error sub-kinds the engine reports through ErrorDetail.ID.
const (
	ManifestParserMissing     = "parser-missing"
	ManifestCodecUnsupported  = "codec-unsupported"
	ManifestNoStreams         = "no-streams"
	ManifestCompositionFailed = "stream-composition-failed"
	ManifestParseSyntaxError  = "parse-syntax-error"
	ManifestMultiplexed       = "multiplexed-representation"
)

// ErrorDetail is the structured form of an error payload: an identifier plus a
// human-readable message.
type ErrorDetail struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ErrorEvent is the engine-internal error signal. Detail is free-form: either a
// plain string message or an ErrorDetail. Events are consumed and translated
// immediately, never stored.
type ErrorEvent struct {
	Category string
	Detail   interface{}
}

// Message extracts the human-readable text from the detail payload.
func (e ErrorEvent) Message() string {
	switch d := e.Detail.(type) {
	case string:
		return d
	case ErrorDetail:
		return d.Message
	case *ErrorDetail:
		if d != nil {
			return d.Message
		}
	}
	return ""
}

// DetailID extracts the sub-kind identifier from a structured detail payload.
func (e ErrorEvent) DetailID() string {
	switch d := e.Detail.(type) {
	case ErrorDetail:
		return d.ID
	case *ErrorDetail:
		if d != nil {
			return d.ID
		}
	}
	return ""
}
