// Package engine defines the interface boundary of the adaptive streaming playback engine.
//
// The engine owns manifest parsing, representation management and buffering; this package
// only models the track, event and error surface the rest of the application consumes.
package engine

import "slices"

// MediaType identifies one of the engine's media track categories.
type MediaType string

const (
	Audio MediaType = "audio"
	Video MediaType = "video"
	Text  MediaType = "text"
)

// MediaTypes lists every track category the engine exposes, in mirroring order.
var MediaTypes = []MediaType{Audio, Video, Text}

// Label is one localized display name attached to a track by the manifest.
type Label struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}

// Track represents one track as exposed by the playback engine.
// Tracks are created when the engine parses the manifest, replaced wholesale on re-load
// and never mutated in place.
type Track struct {
	// Index is the stable position of the track within the current manifest.
	Index int `json:"index"`
	// Type is the media category of the track.
	Type MediaType `json:"type"`
	// Language is the track's language tag (e.g. "en", "pt-BR").
	Language string `json:"language"`
	// Roles holds the manifest role annotations (e.g. "main", "caption", "commentary").
	Roles []string `json:"roles"`
	// Labels holds the ordered localized display names, zero or more.
	Labels []Label `json:"labels"`
}

// HasRole reports whether the track carries the given role annotation.
func (t Track) HasRole(role string) bool {
	return slices.Contains(t.Roles, role)
}
