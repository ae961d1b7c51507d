// Package host defines the interface boundary of the media-player framework the bridge targets.
package host

// KeySystemOption names one requested key system and its configuration.
// The license acquisition protocol itself is owned by the engine.
type KeySystemOption struct {
	Name    string                 `json:"name"`
	Options map[string]interface{} `json:"options,omitempty"`
}

// Source is the descriptor the host framework hands to a source handler.
type Source struct {
	URL              string            `json:"url"`
	MimeType         string            `json:"mimeType"`
	KeySystemOptions []KeySystemOption `json:"keySystemOptions,omitempty"`
}

// Empty reports whether the descriptor carries no playable location.
func (s Source) Empty() bool {
	return s.URL == ""
}
